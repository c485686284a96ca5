package mdtype

import (
	"io"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"pkt.systems/mdtype/internal/palette"
)

var hashStringsWithSpace = [...]string{
	"",
	"# ",
	"## ",
	"### ",
	"#### ",
	"##### ",
	"###### ",
}

// LiveRenderer is a Target that writes to a terminal as nodes open and grow.
// Text is hard wrapped at the configured width; code blocks are not wrapped.
// Write errors are sticky and reported by Flush.
type LiveRenderer struct {
	w      io.Writer
	width  int
	styles Styles

	kinds     []string
	col       int
	style     string
	noWrap    bool
	skipSpace bool
	err       error

	buf    []byte
	bufArr [64]byte
}

// NewLiveRenderer returns a renderer writing to w. A width <= 0 disables
// wrapping; a nil theme renders without styles.
func NewLiveRenderer(w io.Writer, width int, theme Theme) *LiveRenderer {
	l := &LiveRenderer{w: w, width: width}
	if theme != nil {
		l.styles = theme.Styles()
	}
	l.buf = l.bufArr[:0]
	return l
}

// Create implements Target.
func (l *LiveRenderer) Create(kind string) Handle {
	l.kinds = append(l.kinds, kind)
	return Handle(len(l.kinds) - 1)
}

// Nest implements Target. Terminal output is flat; the chain root decides the
// block's style.
func (l *LiveRenderer) Nest(parent, child Handle) {}

// AppendRoot implements Target.
func (l *LiveRenderer) AppendRoot(node Handle) {
	kind := l.kinds[node]
	l.endStyle()
	level := headingLevel(kind)
	if level > 0 && l.col > 0 {
		l.newline()
	}
	l.style = l.styles.ForKind(kind).Prefix
	l.noWrap = kind == KindPre || kind == KindCode
	l.startStyle()
	l.skipSpace = false
	if level > 0 {
		l.writeString(hashStringsWithSpace[level])
		l.col += len(hashStringsWithSpace[level])
		l.skipSpace = true
	}
}

// AppendText implements Target.
func (l *LiveRenderer) AppendText(node Handle, text string) {
	for _, r := range text {
		if l.skipSpace {
			l.skipSpace = false
			if r == ' ' {
				continue
			}
		}
		if r == '\n' {
			l.endStyle()
			l.newline()
			l.startStyle()
			continue
		}
		w := runewidth.RuneWidth(r)
		if !l.noWrap && l.width > 0 && l.col > 0 && l.col+w > l.width {
			l.endStyle()
			l.newline()
			l.startStyle()
		}
		l.buf = utf8.AppendRune(l.buf[:0], r)
		l.write(l.buf)
		l.col += w
	}
}

// Flush resets styling and terminates the last line.
func (l *LiveRenderer) Flush() error {
	l.endStyle()
	l.style = ""
	if l.col > 0 {
		l.newline()
	}
	return l.err
}

func (l *LiveRenderer) startStyle() {
	if l.style != "" {
		l.writeString(l.style)
	}
}

func (l *LiveRenderer) endStyle() {
	if l.style != "" {
		l.writeString(palette.Reset)
	}
}

func (l *LiveRenderer) newline() {
	l.writeString("\n")
	l.col = 0
}

func (l *LiveRenderer) writeString(s string) {
	if l.err != nil {
		return
	}
	_, l.err = io.WriteString(l.w, s)
}

func (l *LiveRenderer) write(b []byte) {
	if l.err != nil {
		return
	}
	_, l.err = l.w.Write(b)
}
