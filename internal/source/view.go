// Package source provides parsed views of Go files and the optional
// type-checked program context consumed by type-aware rules.
package source

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/danielsogl/relint/internal/types"
)

// View is an immutable parsed representation of one file's text at a
// point in time. A new View is derived whenever the text changes; a
// View is never mutated in place.
type View struct {
	// Path is the file path the view was parsed from
	Path string

	// Text is the full source text the view was parsed from
	Text string

	// File is the parsed syntax tree
	File *ast.File

	// Fset is the file set File positions resolve against
	Fset *token.FileSet
}

// Parse parses the given text into a View. Comments are retained so
// that suppression directives can be resolved.
func Parse(path, text string) (*View, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, text, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &View{Path: path, Text: text, File: file, Fset: fset}, nil
}

// Position converts a token.Pos into a types.Position within this view
func (v *View) Position(pos token.Pos) types.Position {
	p := v.Fset.Position(pos)
	return types.Position{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// PositionAt converts a byte offset into a types.Position within this view
func (v *View) PositionAt(offset int) types.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(v.Text) {
		offset = len(v.Text)
	}
	line := 1 + strings.Count(v.Text[:offset], "\n")
	column := offset + 1
	if idx := strings.LastIndexByte(v.Text[:offset], '\n'); idx >= 0 {
		column = offset - idx
	}
	return types.Position{Offset: offset, Line: line, Column: column}
}

// Span returns the start and end positions covering the given node
func (v *View) Span(node ast.Node) (types.Position, types.Position) {
	return v.Position(node.Pos()), v.Position(node.End())
}

// NodeText returns the source text covered by the given node
func (v *View) NodeText(node ast.Node) string {
	start := v.Fset.Position(node.Pos()).Offset
	end := v.Fset.Position(node.End()).Offset
	if start < 0 || end > len(v.Text) || start > end {
		return ""
	}
	return v.Text[start:end]
}

// Lines splits the view's text into lines without trailing newlines
func (v *View) Lines() []string {
	return strings.Split(v.Text, "\n")
}

// IsTestFile reports whether the path names a Go test file. Test files
// are linted with the alternate rule list.
func IsTestFile(path string) bool {
	return strings.HasSuffix(path, "_test.go")
}
