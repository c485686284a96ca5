package mdtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridgeFailsWithoutTarget(t *testing.T) {
	b := NewBridge(nil)
	err := b.Apply(Instruction{Kind: OpenChain, Chain: chainParagraph}, 'x')
	assert.ErrorIs(t, err, ErrNoTarget)
	assert.ErrorIs(t, b.Prime(KindParagraph), ErrNoTarget)
}

func TestBridgeFailsWithoutLeaf(t *testing.T) {
	tree := NewTree()
	b := NewBridge(tree)

	require.NoError(t, b.Apply(Instruction{Kind: Continue, Chain: chainCurrent}, '#'))
	err := b.Apply(Instruction{Kind: AppendToLast, Chain: chainCurrent}, 'x')
	assert.ErrorIs(t, err, ErrNoLeaf)
	assert.Zero(t, tree.Len())
	assert.Equal(t, NoHandle, b.Leaf())
}

func TestBridgeOpenChainNestsAndWritesTrigger(t *testing.T) {
	tree := NewTree()
	b := NewBridge(tree)

	require.NoError(t, b.Apply(Instruction{Kind: OpenChain, Chain: chainCode}, '\n'))
	require.NoError(t, b.Apply(Instruction{Kind: AppendToLast, Chain: chainCurrent}, 'x'))
	require.NoError(t, b.Apply(Instruction{Kind: AppendToLast, Chain: chainCurrent}, 'é'))

	want := []Block{{
		Kind: KindPre,
		Children: []Block{{
			Kind: KindCode,
			Text: "\nxé",
		}},
	}}
	assert.Equal(t, want, tree.Blocks())
	assert.Equal(t, KindCode, tree.Node(b.Leaf()).Kind)
	assert.Equal(t, tree.Roots()[0], tree.Node(b.Leaf()).Parent)
}

func TestBridgeLeafMovesToNewestChain(t *testing.T) {
	tree := NewTree()
	b := NewBridge(tree)

	require.NoError(t, b.Apply(Instruction{Kind: OpenChain, Chain: chainHeading[1]}, ' '))
	require.NoError(t, b.Apply(Instruction{Kind: OpenChain, Chain: chainParagraph}, '\n'))
	require.NoError(t, b.Apply(Instruction{Kind: AppendToLast, Chain: chainCurrent}, 'a'))

	assert.Equal(t, []Block{
		{Kind: "h1", Text: " "},
		{Kind: KindParagraph, Text: "\na"},
	}, tree.Blocks())
}

func TestBridgePrime(t *testing.T) {
	tree := NewTree()
	b := NewBridge(tree)
	require.NoError(t, b.Prime(KindCurrent))
	require.NoError(t, b.Apply(Instruction{Kind: AppendToLast, Chain: chainCurrent}, 'a'))

	assert.Equal(t, []Block{{Kind: KindParagraph, Text: "a"}}, tree.Blocks())
}

func TestBridgeRejectsEmptyChain(t *testing.T) {
	b := NewBridge(NewTree())
	assert.Error(t, b.Apply(Instruction{Kind: OpenChain}, 'a'))
}
