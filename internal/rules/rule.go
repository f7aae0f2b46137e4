// Package rules defines the rule interfaces, the registry of built-in
// rules, and resolution of configured rule sets.
package rules

import (
	"fmt"

	"github.com/danielsogl/relint/internal/source"
	"github.com/danielsogl/relint/internal/types"
)

// Rule is a pluggable analysis unit producing failures for a source
// view. Rule identity is its name, unique within one configuration.
type Rule interface {
	// Name returns the unique rule name (e.g. "no-trailing-whitespace")
	Name() string

	// Description returns a description of what this rule detects
	Description() string

	// DefaultSeverity returns the severity used when the configuration
	// does not override it
	DefaultSeverity() types.Severity

	// Check runs the rule against a syntax-only view of one file
	Check(view *source.View, opts Options) ([]*types.Failure, error)
}

// TypeAwareRule is a rule that additionally consumes the shared
// semantic context. The dispatcher invokes CheckTyped instead of Check
// when a program is available.
type TypeAwareRule interface {
	Rule

	// CheckTyped runs the rule with whole-program type information
	CheckTyped(view *source.View, program *source.Program, opts Options) ([]*types.Failure, error)
}

// Options holds the configured options for one rule
type Options map[string]any

// Int returns the named option as an int, or fallback when absent.
// Numeric option values may arrive as int, int64 or float64 depending
// on the configuration source.
func (o Options) Int(name string, fallback int) int {
	switch v := o[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// String returns the named option as a string, or fallback when absent
func (o Options) String(name, fallback string) string {
	if v, ok := o[name].(string); ok {
		return v
	}
	return fallback
}

// Bool returns the named option as a bool, or fallback when absent
func (o Options) Bool(name string, fallback bool) bool {
	if v, ok := o[name].(bool); ok {
		return v
	}
	return fallback
}

// ResolvedRule pairs a rule with its resolved configuration
type ResolvedRule struct {
	// Rule is the underlying rule implementation
	Rule Rule

	// Severity is the configured severity for failures from this rule
	Severity types.Severity

	// Options is the rule-specific configuration
	Options Options
}

// Setting is one configured rule entry: a name plus overrides. The
// order of settings is the dispatch order and must be stable.
type Setting struct {
	Name     string
	Severity *types.Severity
	Options  Options
}

// Resolve maps configured settings onto registered rules, preserving
// the configured order. Rules resolved to severity "off" are excluded.
// An unknown rule name is a configuration error.
func Resolve(settings []Setting) ([]ResolvedRule, error) {
	resolved := make([]ResolvedRule, 0, len(settings))

	for _, s := range settings {
		rule, ok := DefaultRegistry.Get(s.Name)
		if !ok {
			return nil, fmt.Errorf("unknown rule: %q", s.Name)
		}

		severity := rule.DefaultSeverity()
		if s.Severity != nil {
			severity = *s.Severity
		}
		if severity == types.SeverityOff {
			continue
		}

		opts := s.Options
		if opts == nil {
			opts = make(Options)
		}

		resolved = append(resolved, ResolvedRule{
			Rule:     rule,
			Severity: severity,
			Options:  opts,
		})
	}

	return resolved, nil
}
