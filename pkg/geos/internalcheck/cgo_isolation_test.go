package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestCgoConfinedToBackend asserts that no package outside internal/backend
// imports "C", and that the subpackages of pkg/geos also avoid unsafe.
// pkg/geos itself holds raw handles as unsafe.Pointer, so unsafe is allowed
// there; the cgo boundary is not.
func TestCgoConfinedToBackend(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg,
		"github.com/geoforge/go-geos/pkg/geos",
		"github.com/geoforge/go-geos/pkg/geos/geomconv",
		"github.com/geoforge/go-geos/pkg/geos/logging",
	)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		handleLayer := pkg.PkgPath == "github.com/geoforge/go-geos/pkg/geos"
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path := strings.Trim(imp.Path.Value, `"`)
				if path == "C" || (path == "unsafe" && !handleLayer) {
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings, fmt.Sprintf("%s: import %q belongs in internal/backend", pos, path))
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo isolation violation:\n%s", strings.Join(findings, "\n"))
	}
}

// TestBackendImportedOnlyByGeos asserts that internal/backend is reachable
// only through pkg/geos, keeping a single choke point for native calls.
func TestBackendImportedOnlyByGeos(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg,
		"github.com/geoforge/go-geos/pkg/...",
		"github.com/geoforge/go-geos/cmd/...",
	)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		if pkg.PkgPath == "github.com/geoforge/go-geos/pkg/geos" {
			continue
		}
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				imp, ok := n.(*ast.ImportSpec)
				if !ok {
					return true
				}
				if strings.Trim(imp.Path.Value, `"`) == "github.com/geoforge/go-geos/internal/backend" {
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings, fmt.Sprintf("%s: only pkg/geos may import internal/backend", pos))
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("backend import violation:\n%s", strings.Join(findings, "\n"))
	}
}
