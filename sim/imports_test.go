package sim

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/automoto/doomerang-arena"

// TestHeadlessImports walks the packages reachable from the simulation and the
// headless binary and fails if any of them pulls in ebitengine.
func TestHeadlessImports(t *testing.T) {
	root := ".."
	queue := []string{modulePath + "/sim", modulePath + "/cmd/arenasim"}
	seen := map[string]bool{}

	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]
		if seen[pkg] {
			continue
		}
		seen[pkg] = true

		dir := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(pkg, modulePath)))
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read %s: %v", dir, err)
		}
		fset := token.NewFileSet()
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", name, err)
			}
			for _, imp := range f.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				switch {
				case strings.HasPrefix(path, "github.com/hajimehoshi/ebiten"):
					t.Errorf("%s/%s imports %s", pkg, name, path)
				case strings.HasPrefix(path, modulePath+"/"):
					queue = append(queue, path)
				}
			}
		}
	}
}
