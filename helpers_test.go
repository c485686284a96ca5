package mdtype

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func readBlogpost(t testing.TB) string {
	t.Helper()
	data, err := os.ReadFile("testdata/blogpost.md")
	require.NoError(t, err)
	return string(data)
}

// parseChunks feeds chunks through a fresh session over a Tree and closes it.
func parseChunks(t testing.TB, chunks []string, opts ...SessionOption) *Tree {
	t.Helper()
	tree := NewTree()
	sess := NewSession(tree, opts...)
	for _, chunk := range chunks {
		_, err := sess.WriteString(chunk)
		require.NoError(t, err)
	}
	require.NoError(t, sess.Close())
	return tree
}

func parseString(t testing.TB, src string, opts ...SessionOption) *Tree {
	t.Helper()
	return parseChunks(t, []string{src}, opts...)
}

func classifyAll(p *Parser, src string) []Instruction {
	out := make([]Instruction, 0, len(src))
	for _, r := range src {
		out = append(out, p.Classify(r))
	}
	return out
}

func kindsOf(insts []Instruction) []InstructionKind {
	out := make([]InstructionKind, len(insts))
	for i, inst := range insts {
		out[i] = inst.Kind
	}
	return out
}

func rootKinds(tree *Tree) []string {
	var out []string
	for _, h := range tree.Roots() {
		out = append(out, tree.Node(h).Kind)
	}
	return out
}
