package mdtype

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"

	"pkt.systems/mdtype/internal/palette"
)

const (
	codeIndent  = 2
	fenceMarker = "```"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []SessionOption
}

// Render parses all of Reader into a Tree and writes a word-wrapped ANSI
// snapshot of it. Use a LiveRenderer to draw while the input arrives.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	tree := NewTree()
	sess := NewSession(tree, req.Options...)
	if _, err := io.Copy(sess, req.Reader); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := sess.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return RenderTree(req.Writer, tree, req.Width, req.Theme)
}

// RenderTree writes an ANSI snapshot of tree. Blocks are separated by a blank
// line, empty paragraphs are skipped and code blocks are indented and padded
// to width. The fence line a block ends with is not drawn.
func RenderTree(w io.Writer, tree *Tree, width int, theme Theme) error {
	if theme == nil {
		theme = DefaultTheme()
	}
	styles := theme.Styles()
	first := true
	for _, h := range tree.Roots() {
		node := tree.Node(h)
		block, ok := renderBlock(tree, node, width)
		if !ok {
			continue
		}
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		prefix := styles.ForKind(node.Kind).Prefix
		for _, line := range strings.Split(block, "\n") {
			if prefix != "" {
				line = prefix + line + palette.Reset
			}
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderBlock(tree *Tree, node Node, width int) (string, bool) {
	text := subtreeText(tree, node)
	if level := headingLevel(node.Kind); level > 0 {
		return wrap(hashStringsWithSpace[level]+strings.TrimSpace(text), width), true
	}
	if node.Kind == KindPre || node.Kind == KindCode {
		code := strings.TrimPrefix(text, "\n")
		code = trimFenceLine(code)
		code = strings.TrimSuffix(code, "\n")
		code = indent.String(code, codeIndent)
		if width > 0 {
			code = padding.String(code, uint(width))
		}
		return code, true
	}
	text = strings.Trim(trimFenceLine(text), "\n")
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return wrap(text, width), true
}

// trimFenceLine drops a trailing "```" line. Fence backticks are written into
// the node that precedes the code block and into the code node it closes.
func trimFenceLine(text string) string {
	if text == fenceMarker {
		return ""
	}
	return strings.TrimSuffix(text, "\n"+fenceMarker)
}

func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

func subtreeText(tree *Tree, node Node) string {
	if len(node.Children) == 0 {
		return node.Text
	}
	var b strings.Builder
	b.WriteString(node.Text)
	for _, c := range node.Children {
		b.WriteString(subtreeText(tree, tree.Node(c)))
	}
	return b.String()
}
