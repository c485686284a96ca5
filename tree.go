package mdtype

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Node is a rendered element of a Tree.
type Node struct {
	Kind     string
	Text     string
	Children []Handle
	Parent   Handle
}

// Tree is an in-memory Target. Nodes are only ever added and appended to.
type Tree struct {
	nodes []Node
	roots []Handle
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Create implements Target.
func (t *Tree) Create(kind string) Handle {
	t.nodes = append(t.nodes, Node{Kind: kind, Parent: NoHandle})
	return Handle(len(t.nodes) - 1)
}

// Nest implements Target.
func (t *Tree) Nest(parent, child Handle) {
	t.nodes[parent].Children = append(t.nodes[parent].Children, child)
	t.nodes[child].Parent = parent
}

// AppendRoot implements Target.
func (t *Tree) AppendRoot(node Handle) {
	t.roots = append(t.roots, node)
}

// AppendText implements Target.
func (t *Tree) AppendText(node Handle, text string) {
	t.nodes[node].Text += text
}

// Len returns the number of nodes, attached or not.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Roots returns the top-level nodes in document order.
func (t *Tree) Roots() []Handle {
	return t.roots
}

// Node returns the node for h.
func (t *Tree) Node(h Handle) Node {
	return t.nodes[h]
}

// Block is a detached, comparable copy of a subtree.
type Block struct {
	Kind     string
	Text     string
	Children []Block
}

// Blocks returns a copy of the attached tree.
func (t *Tree) Blocks() []Block {
	out := make([]Block, 0, len(t.roots))
	for _, h := range t.roots {
		out = append(out, t.block(h))
	}
	return out
}

func (t *Tree) block(h Handle) Block {
	n := t.nodes[h]
	b := Block{Kind: n.Kind, Text: n.Text}
	for _, c := range n.Children {
		b.Children = append(b.Children, t.block(c))
	}
	return b
}

// Dump writes one line per node: depth indentation, kind and quoted text.
func (t *Tree) Dump(w io.Writer) error {
	for _, h := range t.roots {
		if err := t.dump(w, h, 0); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) dump(w io.Writer, h Handle, depth int) error {
	n := t.nodes[h]
	if _, err := fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", depth), n.Kind, strconv.Quote(n.Text)); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := t.dump(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// String returns the Dump output.
func (t *Tree) String() string {
	var b strings.Builder
	_ = t.Dump(&b)
	return b.String()
}
