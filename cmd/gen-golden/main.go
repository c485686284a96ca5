package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mdtype"
)

// Golden files are written next to each testdata/*.md file:
// <name>.tree.golden holds the tree dump and <name>.html.golden the HTML.
func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		if err := mdtype.ValidateInput(src); err != nil {
			fatalf("validate %s: %v", path, err)
		}
		tree := mdtype.NewTree()
		sess := mdtype.NewSession(tree, mdtype.WithPrimedLeaf(mdtype.KindParagraph))
		if _, err := sess.Write(src); err != nil {
			fatalf("parse %s: %v", path, err)
		}
		if err := sess.Close(); err != nil {
			fatalf("close %s: %v", path, err)
		}
		base := strings.TrimSuffix(path, ".md")
		writeGolden(base+".tree.golden", func(out *bytes.Buffer) error { return tree.Dump(out) })
		writeGolden(base+".html.golden", func(out *bytes.Buffer) error { return tree.WriteHTML(out) })
	}
}

func writeGolden(path string, render func(*bytes.Buffer) error) {
	var out bytes.Buffer
	if err := render(&out); err != nil {
		fatalf("render %s: %v", path, err)
	}
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		fatalf("write %s: %v", path, err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", path)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
