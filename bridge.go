package mdtype

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrNoTarget reports an instruction applied without a render target.
	ErrNoTarget = errors.New("no render target attached")
	// ErrNoLeaf reports an append before any node has been opened.
	ErrNoLeaf = errors.New("no current leaf node")
)

var asciiRuneStrings = func() [128]string {
	var out [128]string
	for i := range out {
		out[i] = string(rune(i))
	}
	return out
}()

// Bridge applies parser instructions to a Target and tracks the current leaf.
type Bridge struct {
	target Target
	leaf   Handle
	text   []byte
}

// NewBridge returns a bridge rendering into target.
func NewBridge(target Target) *Bridge {
	b := &Bridge{}
	b.Reset(target)
	return b
}

// Reset attaches a new target and forgets the current leaf.
func (b *Bridge) Reset(target Target) {
	b.target = target
	b.leaf = NoHandle
	b.text = b.text[:0]
}

// Target returns the attached target.
func (b *Bridge) Target() Target {
	return b.target
}

// Leaf returns the current leaf, or NoHandle before the first OpenChain.
func (b *Bridge) Leaf() Handle {
	return b.leaf
}

// Prime opens an empty leaf of the given kind so that text arriving before
// the first block marker has somewhere to go.
func (b *Bridge) Prime(kind string) error {
	if b.target == nil {
		return ErrNoTarget
	}
	if kind == KindCurrent {
		kind = KindParagraph
	}
	b.leaf = b.target.Create(kind)
	b.target.AppendRoot(b.leaf)
	return nil
}

// Apply renders r according to inst.
func (b *Bridge) Apply(inst Instruction, r rune) error {
	if b.target == nil {
		return ErrNoTarget
	}
	switch inst.Kind {
	case Continue:
		return nil
	case OpenChain:
		if len(inst.Chain) == 0 {
			return fmt.Errorf("open chain: empty chain")
		}
		root := NoHandle
		inner := NoHandle
		for _, kind := range inst.Chain {
			h := b.target.Create(kind)
			if root == NoHandle {
				root = h
			} else {
				b.target.Nest(inner, h)
			}
			inner = h
		}
		b.target.AppendRoot(root)
		b.leaf = inner
		b.target.AppendText(b.leaf, b.runeText(r))
		return nil
	case AppendToLast:
		if b.leaf == NoHandle {
			return ErrNoLeaf
		}
		b.target.AppendText(b.leaf, b.runeText(r))
		return nil
	default:
		return fmt.Errorf("apply: unknown instruction %v", inst.Kind)
	}
}

func (b *Bridge) runeText(r rune) string {
	if r >= 0 && r < 128 {
		return asciiRuneStrings[r]
	}
	b.text = utf8.AppendRune(b.text[:0], r)
	return string(b.text)
}
