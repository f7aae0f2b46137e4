package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/danielsogl/relint/internal/rules"
)

// evalOptions evaluates a rule block's options expression into plain Go
// values. Options must be an object, e.g. options = { limit = 100 }.
func evalOptions(expr hcl.Expression) (rules.Options, error) {
	if expr == nil {
		return nil, nil
	}

	value, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s", formatDiagnostics(diags))
	}
	if value.IsNull() {
		return nil, nil
	}
	if !value.Type().IsObjectType() && !value.Type().IsMapType() {
		return nil, fmt.Errorf("options must be an object, got %s", value.Type().FriendlyName())
	}

	opts := make(rules.Options)
	for name, v := range value.AsValueMap() {
		converted, err := ctyToGo(v)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", name, err)
		}
		opts[name] = converted
	}
	return opts, nil
}

// ctyToGo converts a cty value into the Go value rules consume
func ctyToGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return int(i), nil
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var out []any
		for _, elem := range v.AsValueSlice() {
			converted, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		for name, elem := range v.AsValueMap() {
			converted, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}
			out[name] = converted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported option type %s", ty.FriendlyName())
	}
}
