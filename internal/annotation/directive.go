// Package annotation resolves inline relint suppression directives.
//
// Directives live in ordinary Go comments:
//
//	//relint:disable [rule, ...]            suppress from this line on
//	//relint:enable [rule, ...]             stop suppressing
//	//relint:disable-line [rule, ...]       suppress on this line only
//	//relint:disable-next-line [rule, ...]  suppress on the following line
//
// An empty rule list applies to all rules. Rule names are separated by
// commas or spaces.
package annotation

import (
	"slices"
	"strings"

	"github.com/danielsogl/relint/internal/source"
)

const directivePrefix = "relint:"

// Scope identifies the kind of a directive
type Scope int

const (
	// ScopeDisable suppresses matching rules until re-enabled
	ScopeDisable Scope = iota
	// ScopeEnable ends an earlier ScopeDisable
	ScopeEnable
	// ScopeLine suppresses matching rules on the directive's line
	ScopeLine
	// ScopeNextLine suppresses matching rules on the following line
	ScopeNextLine
)

// Directive is a parsed suppression directive
type Directive struct {
	// Scope determines which lines the directive covers
	Scope Scope

	// Rules lists the rule names the directive applies to (empty = all)
	Rules []string

	// Line is the 1-based line the directive comment starts on
	Line int
}

// Matches reports whether the directive applies to the given rule name
func (d *Directive) Matches(ruleName string) bool {
	// Empty list means all rules
	if len(d.Rules) == 0 {
		return true
	}
	return slices.Contains(d.Rules, ruleName)
}

// ParseDirectives extracts all suppression directives from the view's
// comments, in line order. Comments that are not relint directives and
// directives with an unknown keyword are ignored.
func ParseDirectives(view *source.View) []Directive {
	var directives []Directive

	for _, group := range view.File.Comments {
		for _, comment := range group.List {
			text := strings.TrimPrefix(comment.Text, "//")
			text = strings.TrimPrefix(text, "/*")
			text = strings.TrimSuffix(text, "*/")
			text = strings.TrimSpace(text)

			if !strings.HasPrefix(text, directivePrefix) {
				continue
			}
			text = strings.TrimPrefix(text, directivePrefix)

			keyword, rest, _ := strings.Cut(text, " ")
			var scope Scope
			switch keyword {
			case "disable":
				scope = ScopeDisable
			case "enable":
				scope = ScopeEnable
			case "disable-line":
				scope = ScopeLine
			case "disable-next-line":
				scope = ScopeNextLine
			default:
				continue
			}

			directives = append(directives, Directive{
				Scope: scope,
				Rules: parseRuleList(rest),
				Line:  view.Position(comment.Pos()).Line,
			})
		}
	}

	slices.SortStableFunc(directives, func(a, b Directive) int {
		return a.Line - b.Line
	})
	return directives
}

// parseRuleList splits a comma or space separated list of rule names
func parseRuleList(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	var rules []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			rules = append(rules, f)
		}
	}
	return rules
}
