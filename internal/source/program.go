package source

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	gotypes "go/types"
	"os"
)

// Program is the shared semantic context for a set of files: their
// parsed views plus whole-program type information. It is optional;
// without it only syntactic rules run their semantic entry points.
type Program struct {
	fset  *token.FileSet
	views map[string]*View
	order []string
	info  *gotypes.Info
	pkg   *gotypes.Package
}

// NewProgram reads, parses and type-checks the given files as one
// package. Type errors are tolerated: rules that consult type
// information see whatever the checker could resolve.
func NewProgram(paths []string) (*Program, error) {
	p := &Program{
		fset:  token.NewFileSet(),
		views: make(map[string]*View),
	}

	var files []*ast.File
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		text := string(data)
		file, err := parser.ParseFile(p.fset, path, text, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		p.views[path] = &View{Path: path, Text: text, File: file, Fset: p.fset}
		p.order = append(p.order, path)
		files = append(files, file)
	}

	p.info = &gotypes.Info{
		Types: make(map[ast.Expr]gotypes.TypeAndValue),
		Defs:  make(map[*ast.Ident]gotypes.Object),
		Uses:  make(map[*ast.Ident]gotypes.Object),
	}

	conf := gotypes.Config{
		Importer: importer.Default(),
		// Collect as much type information as possible from
		// partially broken packages instead of aborting.
		Error: func(error) {},
	}
	pkgName := "main"
	if len(files) > 0 {
		pkgName = files[0].Name.Name
	}
	pkg, _ := conf.Check(pkgName, p.fset, files, p.info)
	p.pkg = pkg

	return p, nil
}

// View returns the parsed view for the given path. Requesting a file
// that is not part of the program is fatal to the invocation.
func (p *Program) View(path string) (*View, error) {
	view, ok := p.views[path]
	if !ok {
		return nil, fmt.Errorf("invalid source file: %s. Ensure the file is included in the program", path)
	}
	return view, nil
}

// Paths returns the program's file paths in load order
func (p *Program) Paths() []string {
	paths := make([]string, len(p.order))
	copy(paths, p.order)
	return paths
}

// TypesInfo returns the collected type information
func (p *Program) TypesInfo() *gotypes.Info {
	return p.info
}

// Package returns the checked package, which may be nil or partial
// when the sources do not type-check cleanly
func (p *Program) Package() *gotypes.Package {
	return p.pkg
}
