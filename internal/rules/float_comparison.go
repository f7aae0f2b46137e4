package rules

import (
	"go/ast"
	"go/token"
	gotypes "go/types"

	"github.com/danielsogl/relint/internal/source"
	"github.com/danielsogl/relint/internal/types"
)

// FloatComparison flags equality comparisons between floating point
// operands. It needs whole-program type information to resolve operand
// types, so without a semantic context it reports nothing.
type FloatComparison struct{}

func init() {
	Register(&FloatComparison{})
}

func (r *FloatComparison) Name() string {
	return "no-float-equality"
}

func (r *FloatComparison) Description() string {
	return "Floating point values must not be compared with == or !="
}

func (r *FloatComparison) DefaultSeverity() types.Severity {
	return types.SeverityError
}

// Check is the syntactic entry point; operand types are unknown here
func (r *FloatComparison) Check(view *source.View, opts Options) ([]*types.Failure, error) {
	return nil, nil
}

// CheckTyped resolves operand types through the program's type
// information and reports float equality comparisons
func (r *FloatComparison) CheckTyped(view *source.View, program *source.Program, opts Options) ([]*types.Failure, error) {
	info := program.TypesInfo()
	if info == nil {
		return nil, nil
	}

	var failures []*types.Failure

	ast.Inspect(view.File, func(n ast.Node) bool {
		expr, ok := n.(*ast.BinaryExpr)
		if !ok || (expr.Op != token.EQL && expr.Op != token.NEQ) {
			return true
		}
		if !isFloat(info, expr.X) && !isFloat(info, expr.Y) {
			return true
		}

		start, end := view.Span(expr)
		failures = append(failures, types.NewFailure(
			r.Name(),
			view.Path,
			start,
			end,
			"floating point comparison with "+expr.Op.String(),
		))
		return true
	})

	return failures, nil
}

func isFloat(info *gotypes.Info, expr ast.Expr) bool {
	tv, ok := info.Types[expr]
	if !ok || tv.Type == nil {
		return false
	}
	basic, ok := tv.Type.Underlying().(*gotypes.Basic)
	if !ok {
		return false
	}
	return basic.Info()&gotypes.IsFloat != 0
}
