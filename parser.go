package mdtype

import "strconv"

// InstructionKind tells the bridge what to do with the current character.
type InstructionKind uint8

const (
	// Continue consumes the character as syntax; nothing is rendered.
	Continue InstructionKind = iota
	// OpenChain creates a new node chain and writes the character into its leaf.
	OpenChain
	// AppendToLast appends the character to the current leaf.
	AppendToLast
)

func (k InstructionKind) String() string {
	switch k {
	case Continue:
		return "continue"
	case OpenChain:
		return "open"
	case AppendToLast:
		return "append"
	default:
		return "InstructionKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Instruction is the parser's verdict for a single character.
type Instruction struct {
	Kind  InstructionKind
	Chain []string
}

// Node kind labels emitted by the parser.
const (
	KindParagraph = "p"
	KindPre       = "pre"
	KindCode      = "code"
	// KindCurrent addresses the current leaf, whatever kind it is.
	KindCurrent = ""
)

const maxHeadingLevel = 6

var headingKinds = [maxHeadingLevel + 1]string{"", "h1", "h2", "h3", "h4", "h5", "h6"}

// Chains are shared and must not be modified by callers.
var (
	chainCurrent   = []string{KindCurrent}
	chainParagraph = []string{KindParagraph}
	chainCode      = []string{KindPre, KindCode}
	chainHeading   = func() [maxHeadingLevel + 1][]string {
		var out [maxHeadingLevel + 1][]string
		for i := 1; i <= maxHeadingLevel; i++ {
			out[i] = []string{headingKinds[i]}
		}
		return out
	}()
)

const (
	fenceRune  = '`'
	fenceWidth = 3
	// lookbackCap is the longest lookback that can still match a marker.
	lookbackCap = 1 + fenceWidth
)

// ParserState is a snapshot of the incremental parser's state.
type ParserState struct {
	OpenBlock       bool
	Lookback        string
	HeadingLevel    int
	InsideCodeBlock bool
	CodeLanguage    string
}

// Parser is the incremental Markdown state machine. It consumes one rune per
// Classify call and never looks ahead or back beyond its lookback buffer.
// The zero value is not ready for use; call NewParser or Reset.
type Parser struct {
	openBlock    bool
	headingLevel int
	insideCode   bool
	codeLang     []rune

	// lookback holds the runes seen since the last line start, starting with
	// the line's '\n'. Only the last lookbackCap runes are kept.
	lookback []rune

	lookbackArr [lookbackCap]rune
	codeLangArr [32]rune
}

// NewParser returns a parser positioned at the start of a line.
func NewParser() *Parser {
	p := &Parser{}
	p.Reset()
	return p
}

// Reset returns the parser to its initial state.
func (p *Parser) Reset() {
	p.openBlock = false
	p.headingLevel = 0
	p.insideCode = false
	p.codeLang = p.codeLangArr[:0]
	p.resetLookback()
}

// State returns a snapshot of the parser state.
func (p *Parser) State() ParserState {
	return ParserState{
		OpenBlock:       p.openBlock,
		Lookback:        string(p.lookback),
		HeadingLevel:    p.headingLevel,
		InsideCodeBlock: p.insideCode,
		CodeLanguage:    string(p.codeLang),
	}
}

// CodeLanguage returns the info string of the current (or last opened) fence.
func (p *Parser) CodeLanguage() string {
	return string(p.codeLang)
}

// Classify consumes r and returns the instruction describing how to render it.
func (p *Parser) Classify(r rune) Instruction {
	if !p.insideCode {
		if inst, ok := p.classifyHeading(r); ok {
			return inst
		}
	}
	return p.classifyText(r)
}

func (p *Parser) classifyHeading(r rune) (Instruction, bool) {
	switch {
	case r == '#' && p.lastLookback() == '\n':
		// Heading runes never advance the lookback, so a '#' anywhere on a
		// heading line counts toward the level.
		p.headingLevel++
		return Instruction{Kind: Continue, Chain: chainCurrent}, true
	case r == ' ' && p.headingLevel > 0 && !p.openBlock:
		p.openBlock = true
		level := p.headingLevel
		if level > maxHeadingLevel {
			level = maxHeadingLevel
		}
		return Instruction{Kind: OpenChain, Chain: chainHeading[level]}, true
	case r != '\n' && p.headingLevel > 0:
		return Instruction{Kind: AppendToLast, Chain: chainCurrent}, true
	case r == '\n' && p.headingLevel > 0:
		p.openBlock = false
		p.headingLevel = 0
		p.resetLookback()
		return Instruction{Kind: OpenChain, Chain: chainParagraph}, true
	}
	return Instruction{}, false
}

func (p *Parser) classifyText(r rune) Instruction {
	if p.atFence() {
		switch {
		case !p.insideCode && r != '\n':
			p.codeLang = append(p.codeLang, r)
			return Instruction{Kind: Continue, Chain: chainCurrent}
		case !p.insideCode:
			p.insideCode = true
			p.resetLookback()
			return Instruction{Kind: OpenChain, Chain: chainCode}
		case r == '\n':
			p.insideCode = false
			p.codeLang = p.codeLang[:0]
			p.resetLookback()
			return Instruction{Kind: OpenChain, Chain: chainParagraph}
		}
	}
	if r == '\n' {
		p.resetLookback()
	} else {
		p.pushLookback(r)
	}
	return Instruction{Kind: AppendToLast, Chain: chainCurrent}
}

// atFence reports whether the lookback is a line start followed by exactly
// three backticks.
func (p *Parser) atFence() bool {
	if len(p.lookback) != lookbackCap || p.lookback[0] != '\n' {
		return false
	}
	for _, r := range p.lookback[1:] {
		if r != fenceRune {
			return false
		}
	}
	return true
}

func (p *Parser) lastLookback() rune {
	if len(p.lookback) == 0 {
		return 0
	}
	return p.lookback[len(p.lookback)-1]
}

func (p *Parser) pushLookback(r rune) {
	if len(p.lookback) == lookbackCap {
		copy(p.lookback, p.lookback[1:])
		p.lookback = p.lookback[:lookbackCap-1]
	}
	p.lookback = append(p.lookback, r)
}

func (p *Parser) resetLookback() {
	p.lookback = append(p.lookbackArr[:0], '\n')
}
