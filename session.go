package mdtype

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tliron/commonlog"
)

// ErrClosed reports a write to a closed session.
var ErrClosed = errors.New("session closed")

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	prime string
	log   commonlog.Logger
}

// WithPrimedLeaf opens an empty leaf of the given kind before the first
// character, so plain text at the start of the stream has a node to land in.
func WithPrimedLeaf(kind string) SessionOption {
	return func(cfg *sessionConfig) {
		if kind == KindCurrent {
			kind = KindParagraph
		}
		cfg.prime = kind
	}
}

// WithLogger sets the logger used for tracing instructions.
func WithLogger(log commonlog.Logger) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.log = log
	}
}

// Flusher is implemented by targets that buffer output.
type Flusher interface {
	Flush() error
}

// Session feeds a chunked character stream through a Parser and a Bridge.
// A Session serves exactly one stream and is not safe for concurrent use.
type Session struct {
	parser Parser
	bridge Bridge
	log    commonlog.Logger
	err    error
	runes  int

	pendingCR bool
	tail      [utf8.UTFMax]byte
	tailLen   int
	carry     []byte
}

// NewSession returns a session rendering into target. A nil target is
// accepted; the first character then fails with ErrNoTarget.
func NewSession(target Target, opts ...SessionOption) *Session {
	cfg := sessionConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.log == nil {
		cfg.log = commonlog.GetLogger("mdtype.session")
	}
	s := &Session{log: cfg.log}
	s.parser.Reset()
	s.bridge.Reset(target)
	if cfg.prime != "" {
		if err := s.bridge.Prime(cfg.prime); err != nil {
			s.fail(fmt.Errorf("session: prime %q: %w", cfg.prime, err))
		}
	}
	return s
}

// State returns a snapshot of the parser state.
func (s *Session) State() ParserState {
	return s.parser.State()
}

// Err returns the error that stopped the session, if any.
func (s *Session) Err() error {
	return s.err
}

// Write feeds a chunk of UTF-8 text. Chunks may split runes and CRLF pairs
// anywhere; the result does not depend on chunk boundaries. Invalid bytes are
// classified as U+FFFD, one per byte. On error n is the number of bytes of p
// consumed before the failing character.
func (s *Session) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	data := p
	carried := 0
	if s.tailLen > 0 {
		carried = s.tailLen
		s.carry = append(s.carry[:0], s.tail[:s.tailLen]...)
		s.carry = append(s.carry, p...)
		data = s.carry
		s.tailLen = 0
	}
	off := 0
	for off < len(data) {
		rest := data[off:]
		if !utf8.FullRune(rest) {
			s.tailLen = copy(s.tail[:], rest)
			break
		}
		r, size := utf8.DecodeRune(rest)
		if err := s.feed(r); err != nil {
			return max(off-carried, 0), err
		}
		off += size
	}
	return len(p), nil
}

// WriteString is like Write for string chunks.
func (s *Session) WriteString(chunk string) (int, error) {
	return s.Write([]byte(chunk))
}

func (s *Session) feed(r rune) error {
	if s.pendingCR {
		s.pendingCR = false
		if r == '\n' {
			return s.Feed(r)
		}
		if err := s.Feed('\r'); err != nil {
			return err
		}
	}
	if r == '\r' {
		s.pendingCR = true
		return nil
	}
	return s.Feed(r)
}

// Feed classifies a single character and applies the resulting instruction.
// It bypasses the UTF-8 decoding and CRLF folding done by Write.
func (s *Session) Feed(r rune) error {
	if s.err != nil {
		return s.err
	}
	inst := s.parser.Classify(r)
	if inst.Kind == OpenChain && s.log.AllowLevel(commonlog.Debug) {
		s.log.Debugf("open %s at rune %d", strings.Join(inst.Chain, ">"), s.runes)
	}
	if err := s.bridge.Apply(inst, r); err != nil {
		return s.fail(fmt.Errorf("session: rune %d %q: %w", s.runes, r, err))
	}
	s.runes++
	return nil
}

// Close classifies a truncated trailing rune as U+FFFD per byte and any
// pending CR, then flushes the target if it buffers. Unterminated headings
// and code blocks stay open.
func (s *Session) Close() error {
	if s.err != nil {
		if errors.Is(s.err, ErrClosed) {
			return nil
		}
		return s.err
	}
	tail := s.tail[:s.tailLen]
	s.tailLen = 0
	for len(tail) > 0 {
		r, size := utf8.DecodeRune(tail)
		if err := s.feed(r); err != nil {
			return err
		}
		tail = tail[size:]
	}
	if s.pendingCR {
		s.pendingCR = false
		if err := s.Feed('\r'); err != nil {
			return err
		}
	}
	if f, ok := s.bridge.Target().(Flusher); ok {
		if err := f.Flush(); err != nil {
			return s.fail(fmt.Errorf("session: flush: %w", err))
		}
	}
	s.log.Debugf("closed after %d runes", s.runes)
	s.err = ErrClosed
	return nil
}

func (s *Session) fail(err error) error {
	s.err = err
	s.log.Errorf("%s", err.Error())
	return err
}
