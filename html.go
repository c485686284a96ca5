package mdtype

import (
	"html"
	"io"
)

// WriteHTML writes the tree as HTML elements named after the node kinds.
// Nodes without a kind contribute their text only. Text is written verbatim
// apart from escaping, matching what a DOM would hold.
func (t *Tree) WriteHTML(w io.Writer) error {
	for _, h := range t.roots {
		if err := t.writeHTML(w, h); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) writeHTML(w io.Writer, h Handle) error {
	n := t.nodes[h]
	if n.Kind != KindCurrent {
		if _, err := io.WriteString(w, "<"+n.Kind+">"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, html.EscapeString(n.Text)); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := t.writeHTML(w, c); err != nil {
			return err
		}
	}
	if n.Kind != KindCurrent {
		if _, err := io.WriteString(w, "</"+n.Kind+">"); err != nil {
			return err
		}
	}
	return nil
}
