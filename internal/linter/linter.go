// Package linter implements the lint session: rule dispatch with
// failure isolation, suppression-aware collection, conflict-safe fix
// application, severity resolution and result aggregation.
package linter

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/danielsogl/relint/internal/annotation"
	"github.com/danielsogl/relint/internal/config"
	"github.com/danielsogl/relint/internal/output"
	"github.com/danielsogl/relint/internal/rules"
	"github.com/danielsogl/relint/internal/source"
	"github.com/danielsogl/relint/internal/types"
)

// Options configures a lint session
type Options struct {
	// Fix enables automatic fixing of fixable failures
	Fix bool

	// Formatter selects the output formatter by name
	Formatter string

	// Logger receives engine warnings and debug output
	Logger hclog.Logger
}

// Linter is one lint session. It accumulates failures and applied
// fixes across repeated Lint calls until the instance is discarded.
// A Linter is not safe for concurrent use: fix commits read and write
// files without locking.
type Linter struct {
	opts    Options
	program *source.Program
	logger  hclog.Logger

	failures []*types.Failure
	fixes    []*types.Fix

	// warned deduplicates rule execution warnings for the lifetime of
	// the session, so a rule that fails on every file warns once
	warned map[string]struct{}
}

// New creates a lint session. The program is the optional shared
// semantic context; when nil, type-aware rules run syntax-only.
func New(opts Options, program *source.Program) *Linter {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.Formatter == "" {
		opts.Formatter = "stylish"
	}
	return &Linter{
		opts:    opts,
		program: program,
		logger:  logger,
		warned:  make(map[string]struct{}),
	}
}

// Lint analyzes one file and accumulates its failures in the session.
// When fixing is enabled and the file has fixable failures, the file
// (and any other files targeted by fixes) are rewritten on disk.
func (l *Linter) Lint(path, text string, cfg *config.Config) error {
	view, err := l.sourceView(path, text)
	if err != nil {
		return err
	}

	enabled, err := rules.Resolve(cfg.Settings(source.IsTestFile(path)))
	if err != nil {
		return err
	}

	failures := l.collect(view, enabled)

	if l.opts.Fix && anyFixable(failures) {
		view, failures, err = l.applyFixes(view, enabled, failures)
		if err != nil {
			return err
		}
	}

	if err := stampSeverities(failures, enabled); err != nil {
		return err
	}

	l.failures = append(l.failures, failures...)
	return nil
}

// Result summarizes the session: counts, accumulated failures and
// fixes, and the formatted report. An unknown formatter name is a
// configuration error.
func (l *Linter) Result() (*types.LintResult, error) {
	result := types.NewLintResult(l.failures, l.fixes)

	formatter, ok := output.Lookup(l.opts.Formatter)
	if !ok {
		return nil, fmt.Errorf("formatter %q not found (available: %s)",
			l.opts.Formatter, strings.Join(output.Names(), ", "))
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, result); err != nil {
		return nil, err
	}
	result.Output = buf.String()

	return result, nil
}

// sourceView derives the view for a file: from the shared program when
// one is present, otherwise by parsing the given text
func (l *Linter) sourceView(path, text string) (*source.View, error) {
	if l.program != nil {
		return l.program.View(path)
	}
	return source.Parse(path, text)
}

// collect dispatches every enabled rule against the view and filters
// the full batch through the suppression directives
func (l *Linter) collect(view *source.View, enabled []rules.ResolvedRule) []*types.Failure {
	var all []*types.Failure
	for _, rr := range enabled {
		all = append(all, l.execute(rr, view)...)
	}
	return annotation.Filter(view, all)
}

// execute runs one rule against one view. Errors and panics raised by
// the rule are caught here, reported once per distinct message, and
// degrade to an empty failure list so one defective rule cannot abort
// the run. Type-aware rules get the semantic entry point only when a
// program is available.
func (l *Linter) execute(rr rules.ResolvedRule, view *source.View) (failures []*types.Failure) {
	name := rr.Rule.Name()
	defer func() {
		if r := recover(); r != nil {
			l.warnOnce(fmt.Sprintf("rule %q panicked: %v", name, r))
			failures = nil
		}
	}()

	var err error
	if typed, ok := rr.Rule.(rules.TypeAwareRule); ok && l.program != nil {
		failures, err = typed.CheckTyped(view, l.program, rr.Options)
	} else {
		failures, err = rr.Rule.Check(view, rr.Options)
	}
	if err != nil {
		l.warnOnce(fmt.Sprintf("rule %q failed: %v", name, err))
		return nil
	}
	return failures
}

// warnOnce logs a warning unless the same message was already emitted
// in this session
func (l *Linter) warnOnce(msg string) {
	if _, seen := l.warned[msg]; seen {
		return
	}
	l.warned[msg] = struct{}{}
	l.logger.Warn(msg)
}

// stampSeverities annotates failures with their rule's configured
// severity. A failure whose rule has no severity entry means the rule
// was never part of the executed set, which is an internal defect, not
// a user error.
func stampSeverities(failures []*types.Failure, enabled []rules.ResolvedRule) error {
	severities := make(map[string]types.Severity, len(enabled))
	for _, rr := range enabled {
		severities[rr.Rule.Name()] = rr.Severity
	}

	for _, f := range failures {
		severity, ok := severities[f.RuleName]
		if !ok {
			return fmt.Errorf("internal error: no severity configured for rule %q", f.RuleName)
		}
		f.Severity = severity
	}
	return nil
}

func anyFixable(failures []*types.Failure) bool {
	for _, f := range failures {
		if f.HasFix() {
			return true
		}
	}
	return false
}
