// Package palette holds the ANSI color sets behind the built-in themes.
package palette

import "strconv"

// SGR attributes.
const (
	Reset = "\x1b[0m"
	Bold  = "\x1b[1m"
)

// Palette is a set of ANSI prefixes, one per rendered element.
type Palette struct {
	Text      string
	H1        string
	H2        string
	H3        string
	H4        string
	H5        string
	H6        string
	CodeBlock string
}

// FG returns a 24-bit foreground color sequence.
func FG(r, g, b uint8) string {
	return "\x1b[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

// BG returns a 24-bit background color sequence.
func BG(r, g, b uint8) string {
	return "\x1b[48;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

var (
	PaletteDefault = Palette{
		Text:      "\x1b[39m",
		H1:        Bold + "\x1b[95m",
		H2:        Bold + "\x1b[94m",
		H3:        Bold + "\x1b[96m",
		H4:        Bold + "\x1b[92m",
		H5:        Bold + "\x1b[93m",
		H6:        Bold + "\x1b[37m",
		CodeBlock: "\x1b[33m",
	}
	PaletteDracula = Palette{
		Text:      FG(248, 248, 242),
		H1:        Bold + FG(255, 121, 198),
		H2:        Bold + FG(189, 147, 249),
		H3:        Bold + FG(139, 233, 253),
		H4:        Bold + FG(80, 250, 123),
		H5:        Bold + FG(241, 250, 140),
		H6:        Bold + FG(98, 114, 164),
		CodeBlock: FG(255, 184, 108) + BG(40, 42, 54),
	}
	PaletteGruvbox = Palette{
		Text:      FG(235, 219, 178),
		H1:        Bold + FG(251, 73, 52),
		H2:        Bold + FG(250, 189, 47),
		H3:        Bold + FG(184, 187, 38),
		H4:        Bold + FG(131, 165, 152),
		H5:        Bold + FG(211, 134, 155),
		H6:        Bold + FG(146, 131, 116),
		CodeBlock: FG(254, 128, 25) + BG(50, 48, 47),
	}
	PaletteNord = Palette{
		Text:      FG(216, 222, 233),
		H1:        Bold + FG(136, 192, 208),
		H2:        Bold + FG(129, 161, 193),
		H3:        Bold + FG(94, 129, 172),
		H4:        Bold + FG(163, 190, 140),
		H5:        Bold + FG(235, 203, 139),
		H6:        Bold + FG(76, 86, 106),
		CodeBlock: FG(208, 135, 112) + BG(59, 66, 82),
	}
	PaletteTokyoNight = Palette{
		Text:      FG(192, 202, 245),
		H1:        Bold + FG(247, 118, 142),
		H2:        Bold + FG(122, 162, 247),
		H3:        Bold + FG(125, 207, 255),
		H4:        Bold + FG(158, 206, 106),
		H5:        Bold + FG(224, 175, 104),
		H6:        Bold + FG(86, 95, 137),
		CodeBlock: FG(255, 158, 100) + BG(36, 40, 59),
	}
	PaletteSolarizedLight = Palette{
		Text:      FG(101, 123, 131),
		H1:        Bold + FG(203, 75, 22),
		H2:        Bold + FG(38, 139, 210),
		H3:        Bold + FG(42, 161, 152),
		H4:        Bold + FG(133, 153, 0),
		H5:        Bold + FG(181, 137, 0),
		H6:        Bold + FG(147, 161, 161),
		CodeBlock: FG(211, 54, 130) + BG(238, 232, 213),
	}
	PaletteSolarizedDark = Palette{
		Text:      FG(131, 148, 150),
		H1:        Bold + FG(203, 75, 22),
		H2:        Bold + FG(38, 139, 210),
		H3:        Bold + FG(42, 161, 152),
		H4:        Bold + FG(133, 153, 0),
		H5:        Bold + FG(181, 137, 0),
		H6:        Bold + FG(88, 110, 117),
		CodeBlock: FG(211, 54, 130) + BG(7, 54, 66),
	}
	PaletteGithubLight = Palette{
		Text:      FG(36, 41, 47),
		H1:        Bold + FG(9, 105, 218),
		H2:        Bold + FG(9, 105, 218),
		H3:        Bold + FG(130, 80, 223),
		H4:        Bold + FG(26, 127, 55),
		H5:        Bold + FG(154, 103, 0),
		H6:        Bold + FG(87, 96, 106),
		CodeBlock: FG(207, 34, 46) + BG(246, 248, 250),
	}
	PaletteGithubDark = Palette{
		Text:      FG(201, 209, 217),
		H1:        Bold + FG(88, 166, 255),
		H2:        Bold + FG(88, 166, 255),
		H3:        Bold + FG(210, 168, 255),
		H4:        Bold + FG(126, 231, 135),
		H5:        Bold + FG(227, 179, 65),
		H6:        Bold + FG(139, 148, 158),
		CodeBlock: FG(255, 123, 114) + BG(22, 27, 34),
	}
)
