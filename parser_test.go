package mdtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserHeadingInstructions(t *testing.T) {
	p := NewParser()
	insts := classifyAll(p, "## Hi\n")

	assert.Equal(t, []InstructionKind{Continue, Continue, OpenChain, AppendToLast, AppendToLast, OpenChain}, kindsOf(insts))
	assert.Equal(t, []string{"h2"}, insts[2].Chain)
	assert.Equal(t, []string{KindParagraph}, insts[5].Chain)
	assert.Equal(t, []string{KindCurrent}, insts[3].Chain)
	assert.Equal(t, ParserState{Lookback: "\n"}, p.State())
}

func TestParserLoneHashNeverFlushes(t *testing.T) {
	p := NewParser()
	inst := p.Classify('#')

	assert.Equal(t, Continue, inst.Kind)
	st := p.State()
	assert.Equal(t, 1, st.HeadingLevel)
	assert.False(t, st.OpenBlock)
}

func TestParserHeadingLevelClamped(t *testing.T) {
	p := NewParser()
	insts := classifyAll(p, "######## deep")

	assert.Equal(t, 8, p.State().HeadingLevel)
	assert.Equal(t, OpenChain, insts[8].Kind)
	assert.Equal(t, []string{"h6"}, insts[8].Chain)
}

func TestParserHashInsideHeadingTitleIsCounted(t *testing.T) {
	p := NewParser()
	insts := classifyAll(p, "# C# x")

	assert.Equal(t, []InstructionKind{Continue, OpenChain, AppendToLast, Continue, AppendToLast, AppendToLast}, kindsOf(insts))
	assert.Equal(t, []string{"h1"}, insts[1].Chain)
	st := p.State()
	assert.Equal(t, 2, st.HeadingLevel)
	assert.True(t, st.OpenBlock)
	assert.Equal(t, "\n", st.Lookback)
}

func TestParserHashAfterHeadingTextIsCounted(t *testing.T) {
	p := NewParser()
	insts := classifyAll(p, "#a#b")

	assert.Equal(t, []InstructionKind{Continue, AppendToLast, Continue, AppendToLast}, kindsOf(insts))
	assert.Equal(t, 2, p.State().HeadingLevel)
	assert.False(t, p.State().OpenBlock)
}

func TestParserHashMidLineIsText(t *testing.T) {
	p := NewParser()
	insts := classifyAll(p, "a # b")

	for _, inst := range insts {
		assert.Equal(t, AppendToLast, inst.Kind)
	}
	assert.Zero(t, p.State().HeadingLevel)
}

func TestParserFenceLifecycle(t *testing.T) {
	p := NewParser()

	insts := classifyAll(p, "```js")
	// The backticks are text of the current leaf; the info string is syntax.
	assert.Equal(t, []InstructionKind{AppendToLast, AppendToLast, AppendToLast, Continue, Continue}, kindsOf(insts))
	st := p.State()
	assert.Equal(t, "js", st.CodeLanguage)
	assert.Equal(t, "\n```", st.Lookback)
	assert.False(t, st.InsideCodeBlock)

	inst := p.Classify('\n')
	assert.Equal(t, OpenChain, inst.Kind)
	assert.Equal(t, []string{KindPre, KindCode}, inst.Chain)
	assert.True(t, p.State().InsideCodeBlock)
	assert.Equal(t, "js", p.CodeLanguage())

	insts = classifyAll(p, "# x\n```")
	require.Len(t, insts, 7)
	for _, inst := range insts {
		assert.Equal(t, AppendToLast, inst.Kind)
	}
	assert.Zero(t, p.State().HeadingLevel)

	inst = p.Classify('\n')
	assert.Equal(t, OpenChain, inst.Kind)
	assert.Equal(t, []string{KindParagraph}, inst.Chain)
	assert.Equal(t, ParserState{Lookback: "\n"}, p.State())
}

func TestParserPartialFenceIsText(t *testing.T) {
	p := NewParser()
	insts := classifyAll(p, "``x")

	assert.Equal(t, []InstructionKind{AppendToLast, AppendToLast, AppendToLast}, kindsOf(insts))
	assert.Equal(t, "\n``x", p.State().Lookback)
}

func TestParserFenceLookalikeInsideCodeIsText(t *testing.T) {
	p := NewParser()
	classifyAll(p, "```\n")
	insts := classifyAll(p, "```py")

	assert.Equal(t, []InstructionKind{AppendToLast, AppendToLast, AppendToLast, AppendToLast, AppendToLast}, kindsOf(insts))
	assert.True(t, p.State().InsideCodeBlock)
	assert.Empty(t, p.CodeLanguage())
}

func TestParserInlineBackticksAreText(t *testing.T) {
	p := NewParser()
	insts := classifyAll(p, "a ```b```")

	for _, inst := range insts {
		assert.Equal(t, AppendToLast, inst.Kind)
	}
	assert.False(t, p.State().InsideCodeBlock)
}

func TestParserLookbackIsBounded(t *testing.T) {
	p := NewParser()
	classifyAll(p, "abcdef")
	assert.Equal(t, "cdef", p.State().Lookback)

	p.Classify('\n')
	assert.Equal(t, "\n", p.State().Lookback)
}

func TestParserReset(t *testing.T) {
	p := NewParser()
	classifyAll(p, "```go\n## x")
	require.True(t, p.State().InsideCodeBlock)

	p.Reset()
	assert.Equal(t, ParserState{Lookback: "\n"}, p.State())
	assert.Equal(t, Continue, p.Classify('#').Kind)
}

func TestParserClassifyIsTotal(t *testing.T) {
	prefixes := []string{"", "#", "## t", "`", "``", "```", "```go", "```\n", "```\nx", "text"}
	runes := []rune{0, '\t', '\n', '\r', ' ', '#', '`', 'a', '~', 0x7F, 'é', '→', '世', 0x1F600, 0x10FFFF}
	for r := rune(0); r < 0x300; r++ {
		runes = append(runes, r)
	}
	for _, prefix := range prefixes {
		for _, r := range runes {
			p := NewParser()
			classifyAll(p, prefix)
			inst := p.Classify(r)
			switch inst.Kind {
			case Continue, AppendToLast:
			case OpenChain:
				require.NotEmpty(t, inst.Chain, "prefix %q rune %U", prefix, r)
			default:
				t.Fatalf("prefix %q rune %U: unexpected kind %v", prefix, r, inst.Kind)
			}
		}
	}
}

func TestParserClassifyDoesNotAllocate(t *testing.T) {
	src := readBlogpost(t)
	p := NewParser()
	allocs := testing.AllocsPerRun(20, func() {
		p.Reset()
		for _, r := range src {
			_ = p.Classify(r)
		}
	})
	assert.Zero(t, allocs)
}
