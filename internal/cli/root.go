package cli

import (
	"github.com/spf13/cobra"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "relint",
	Short: "Pluggable Go linter with automatic fixing",
	Long: `relint analyzes Go source files against a configurable set of rules
and reports violations. With --fix, rules that carry automatic repairs
rewrite the affected files in place.

Rules are configured in .relint.hcl; additional rules can be loaded as
plugins from the configured rule directories.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
