package rules

import (
	"fmt"
	"go/ast"

	"github.com/danielsogl/relint/internal/source"
	"github.com/danielsogl/relint/internal/types"
)

// DebugPrint flags calls to the fmt print family, which are usually
// leftover debugging output in library code
type DebugPrint struct{}

func init() {
	Register(&DebugPrint{})
}

var debugPrintFuncs = map[string]bool{
	"Print":   true,
	"Println": true,
	"Printf":  true,
}

func (r *DebugPrint) Name() string {
	return "no-debug-print"
}

func (r *DebugPrint) Description() string {
	return "Calls to fmt.Print, fmt.Println and fmt.Printf should not be committed"
}

func (r *DebugPrint) DefaultSeverity() types.Severity {
	return types.SeverityWarning
}

func (r *DebugPrint) Check(view *source.View, opts Options) ([]*types.Failure, error) {
	var failures []*types.Failure

	ast.Inspect(view.File, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || !debugPrintFuncs[sel.Sel.Name] {
			return true
		}
		pkg, ok := sel.X.(*ast.Ident)
		if !ok || pkg.Name != "fmt" {
			return true
		}

		start, end := view.Span(call)
		failures = append(failures, types.NewFailure(
			r.Name(),
			view.Path,
			start,
			end,
			fmt.Sprintf("debug print call fmt.%s", sel.Sel.Name),
		))
		return true
	})

	return failures, nil
}
