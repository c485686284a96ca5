package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdtype"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

const (
	formatLive = "live"
	formatANSI = "ansi"
	formatHTML = "html"
	formatTree = "tree"
)

type outputFlags struct {
	themeName string
	width     int
	format    string
	outPath   string
	boring    bool
	prime     string
	strict    bool
}

func (o *outputFlags) bind(flags *pflag.FlagSet) {
	flags.StringVarP(&o.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&o.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&o.format, "format", "f", formatLive, "Output format: live|ansi|html|tree")
	flags.StringVarP(&o.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&o.boring, "boring", "b", false, "Generate non-ANSI output")
	flags.StringVar(&o.prime, "prime", mdtype.KindParagraph, "Node kind opened before the first character (empty to disable)")
	flags.BoolVar(&o.strict, "strict", false, "Reject input files that are not valid UTF-8 text")
}

func (o *outputFlags) sessionOptions() []mdtype.SessionOption {
	opts := []mdtype.SessionOption{mdtype.WithLogger(log)}
	if o.prime != "" {
		opts = append(opts, mdtype.WithPrimedLeaf(o.prime))
	}
	return opts
}

func (o *outputFlags) theme() (mdtype.Theme, error) {
	if o.boring {
		return mdtype.BoringTheme(), nil
	}
	theme, ok := mdtype.ThemeByName(o.themeName)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (see mdtype themes)", o.themeName)
	}
	return theme, nil
}

// run opens the output, builds the target for the selected format and hands
// it to feed. Snapshot formats are written once feed returns.
func (o *outputFlags) run(feed func(mdtype.Target) error) error {
	theme, err := o.theme()
	if err != nil {
		return err
	}
	writer, closeOut, err := resolveOutput(o.outPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	width := resolveWidth(o.width)
	switch strings.ToLower(strings.TrimSpace(o.format)) {
	case formatLive, "":
		return feed(mdtype.NewLiveRenderer(writer, width, theme))
	case formatANSI:
		tree := mdtype.NewTree()
		if err := feed(tree); err != nil {
			return err
		}
		return mdtype.RenderTree(writer, tree, width, theme)
	case formatHTML:
		tree := mdtype.NewTree()
		if err := feed(tree); err != nil {
			return err
		}
		if err := tree.WriteHTML(writer); err != nil {
			return err
		}
		_, err := io.WriteString(writer, "\n")
		return err
	case formatTree:
		tree := mdtype.NewTree()
		if err := feed(tree); err != nil {
			return err
		}
		return tree.Dump(writer)
	default:
		return fmt.Errorf("invalid --format %q: expected live|ansi|html|tree", o.format)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
