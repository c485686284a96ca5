package mdtype

import (
	"sort"
	"strings"

	"pkt.systems/mdtype/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the styles used for each node kind.
type Styles struct {
	Text      Style
	Heading   [6]Style
	CodeBlock Style
}

// ForKind returns the style for a node kind. Unknown kinds use Text.
func (s Styles) ForKind(kind string) Style {
	if level := headingLevel(kind); level > 0 {
		return s.Heading[level-1]
	}
	switch kind {
	case KindPre, KindCode:
		return s.CodeBlock
	default:
		return s.Text
	}
}

// Theme provides named styles for rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

// BoringTheme returns a theme without any ANSI styling.
func BoringTheme() Theme {
	return theme{name: "boring"}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:      Style{Prefix: p.Text},
		Heading:   [6]Style{{p.H1}, {p.H2}, {p.H3}, {p.H4}, {p.H5}, {p.H6}},
		CodeBlock: Style{Prefix: p.CodeBlock},
	}
}

var builtinThemes = map[string]Theme{
	"default":         theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"dracula":         theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"gruvbox":         theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"nord":            theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"tokyo-night":     theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"solarized-light": theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
	"solarized-dark":  theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"github-light":    theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
	"github-dark":     theme{name: "github-dark", styles: stylesFromPalette(palette.PaletteGithubDark)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "boring" {
		return BoringTheme(), true
	}
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// headingLevel returns 1-6 for "h1".."h6" and 0 otherwise.
func headingLevel(kind string) int {
	if len(kind) != 2 || kind[0] != 'h' || kind[1] < '1' || kind[1] > '6' {
		return 0
	}
	return int(kind[1] - '0')
}
