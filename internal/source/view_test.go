package source

import (
	"go/ast"
	"testing"
)

const sample = `package main

var greeting = "hello"
`

func TestParse(t *testing.T) {
	view, err := Parse("main.go", sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Path != "main.go" {
		t.Errorf("Path = %q, want %q", view.Path, "main.go")
	}
	if view.Text != sample {
		t.Errorf("Text not preserved")
	}
	if view.File.Name.Name != "main" {
		t.Errorf("package name = %q, want %q", view.File.Name.Name, "main")
	}
}

func TestParse_InvalidSource(t *testing.T) {
	if _, err := Parse("broken.go", "func main() {"); err == nil {
		t.Error("expected error for invalid source, got nil")
	}
}

func TestPositionAt(t *testing.T) {
	view, err := Parse("main.go", sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		offset     int
		wantLine   int
		wantColumn int
	}{
		{0, 1, 1},
		{8, 1, 9},
		{13, 2, 1},
		{14, 3, 1},
	}

	for _, tt := range tests {
		pos := view.PositionAt(tt.offset)
		if pos.Line != tt.wantLine || pos.Column != tt.wantColumn {
			t.Errorf("PositionAt(%d) = %d:%d, want %d:%d",
				tt.offset, pos.Line, pos.Column, tt.wantLine, tt.wantColumn)
		}
	}
}

func TestPositionAt_ClampsOutOfRange(t *testing.T) {
	view, err := Parse("main.go", sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pos := view.PositionAt(-5); pos.Offset != 0 {
		t.Errorf("negative offset clamped to %d, want 0", pos.Offset)
	}
	if pos := view.PositionAt(9999); pos.Offset != len(sample) {
		t.Errorf("oversized offset clamped to %d, want %d", pos.Offset, len(sample))
	}
}

func TestNodeText(t *testing.T) {
	view, err := Parse("main.go", sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var lit ast.Expr
	ast.Inspect(view.File, func(n ast.Node) bool {
		if bl, ok := n.(*ast.BasicLit); ok {
			lit = bl
			return false
		}
		return true
	})
	if lit == nil {
		t.Fatal("no literal found")
	}

	if got := view.NodeText(lit); got != `"hello"` {
		t.Errorf("NodeText = %q, want %q", got, `"hello"`)
	}
}

func TestIsTestFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"foo_test.go", true},
		{"pkg/foo_test.go", true},
		{"foo.go", false},
		{"test_foo.go", false},
	}

	for _, tt := range tests {
		if got := IsTestFile(tt.path); got != tt.want {
			t.Errorf("IsTestFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
