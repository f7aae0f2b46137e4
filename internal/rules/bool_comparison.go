package rules

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/danielsogl/relint/internal/source"
	"github.com/danielsogl/relint/internal/types"
)

// BoolComparison flags comparisons against the boolean literals true
// and false, which can always be simplified
type BoolComparison struct{}

func init() {
	Register(&BoolComparison{})
}

func (r *BoolComparison) Name() string {
	return "bool-comparison"
}

func (r *BoolComparison) Description() string {
	return "Comparisons to boolean literals are redundant"
}

func (r *BoolComparison) DefaultSeverity() types.Severity {
	return types.SeverityWarning
}

func (r *BoolComparison) Check(view *source.View, opts Options) ([]*types.Failure, error) {
	var failures []*types.Failure

	ast.Inspect(view.File, func(n ast.Node) bool {
		expr, ok := n.(*ast.BinaryExpr)
		if !ok || (expr.Op != token.EQL && expr.Op != token.NEQ) {
			return true
		}

		other, literal := splitBoolComparison(expr)
		if other == nil {
			return true
		}

		// x == true and x != false keep x; the other two negate it.
		keep := (literal && expr.Op == token.EQL) || (!literal && expr.Op == token.NEQ)
		replacement := view.NodeText(other)
		if !keep {
			replacement = negate(other, replacement)
		}

		start, end := view.Span(expr)
		failure := types.NewFailure(
			r.Name(),
			view.Path,
			start,
			end,
			fmt.Sprintf("redundant comparison with %t", literal),
		).WithFix(&types.Fix{
			RuleName: r.Name(),
			Replacements: []types.Replacement{
				{Path: view.Path, Start: start.Offset, End: end.Offset, Text: replacement},
			},
		})
		failures = append(failures, failure)
		return true
	})

	return failures, nil
}

// splitBoolComparison returns the non-literal operand and the literal's
// value, or nil when neither operand is a boolean literal
func splitBoolComparison(expr *ast.BinaryExpr) (ast.Expr, bool) {
	if lit, ok := boolLiteral(expr.Y); ok {
		return expr.X, lit
	}
	if lit, ok := boolLiteral(expr.X); ok {
		return expr.Y, lit
	}
	return nil, false
}

func boolLiteral(expr ast.Expr) (bool, bool) {
	ident, ok := expr.(*ast.Ident)
	if !ok {
		return false, false
	}
	switch ident.Name {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// negate wraps the operand text in a logical negation, parenthesizing
// operands whose precedence would otherwise change meaning
func negate(expr ast.Expr, text string) string {
	switch expr.(type) {
	case *ast.Ident, *ast.SelectorExpr, *ast.CallExpr, *ast.ParenExpr, *ast.IndexExpr:
		return "!" + text
	default:
		return "!(" + text + ")"
	}
}
