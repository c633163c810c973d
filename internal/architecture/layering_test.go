package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

const modulePrefix = "folio/internal/modules/showcase/"

// showcaseLayers lists, for each layer of the showcase module, the layers
// it may import. Anything outside the module under internal/ui sees only
// the dto layer; platform packages see none.
var showcaseLayers = map[string][]string{
	"domain":      nil,
	"dto":         nil,
	"port/in":     {"dto"},
	"port/out":    {"domain"},
	"service":     {"domain", "port/out"},
	"usecase":     {"domain", "dto", "port/in", "port/out", "service"},
	"adapter/in":  {"dto", "port/in"},
	"adapter/out": {"domain", "port/out"},
}

func TestShowcaseLayerImports(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "modules", "showcase"), func(file, importPath string) {
		from := layerOf(filepath.ToSlash(file))
		if from == "" {
			t.Fatalf("%s is outside every showcase layer", file)
		}
		to := layerOf(importPath + "/")
		if !slices.Contains(showcaseLayers[from], to) {
			t.Fatalf("forbidden import in %s (%s): %s", file, from, importPath)
		}
	})
}

func TestOuterPackagesSeeOnlyDTOs(t *testing.T) {
	t.Parallel()
	for _, dir := range []string{"ui", "platform"} {
		allowed := []string{"dto"}
		if dir == "platform" {
			allowed = nil
		}
		walkImports(t, filepath.Join("..", dir), func(file, importPath string) {
			if !slices.Contains(allowed, layerOf(importPath+"/")) {
				t.Fatalf("forbidden import in %s: %s", file, importPath)
			}
		})
	}
}

// walkImports calls check for every showcase import of the non-test Go
// files under root.
func walkImports(t *testing.T, root string, check func(file, importPath string)) {
	t.Helper()
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if strings.HasPrefix(importPath, modulePrefix) {
				check(path, importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
}

func layerOf(path string) string {
	for layer := range showcaseLayers {
		if strings.Contains(path, "/showcase/"+layer+"/") {
			return layer
		}
	}
	return ""
}
