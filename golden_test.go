package mdtype

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Golden files are regenerated with: go run ./cmd/gen-golden
func TestGoldenTrees(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.md")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no markdown samples under testdata")
	}
	for _, path := range paths {
		base := strings.TrimSuffix(path, ".md")
		t.Run(filepath.Base(base), func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			if err := ValidateInput(src); err != nil {
				t.Fatalf("validate %s: %v", path, err)
			}
			tree := parseString(t, string(src), WithPrimedLeaf(KindParagraph))

			var dump bytes.Buffer
			if err := tree.Dump(&dump); err != nil {
				t.Fatalf("dump: %v", err)
			}
			compareGolden(t, base+".tree.golden", dump.String())

			var html bytes.Buffer
			if err := tree.WriteHTML(&html); err != nil {
				t.Fatalf("html: %v", err)
			}
			compareGolden(t, base+".html.golden", html.String())
		})
	}
}

func compareGolden(t *testing.T, path string, got string) {
	t.Helper()
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	if got != string(want) {
		t.Fatalf("golden mismatch for %s\n---want---\n%s\n---got---\n%s", path, want, got)
	}
}
