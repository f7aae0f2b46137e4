package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielsogl/relint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List registered rules",
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	for _, rule := range rules.DefaultRegistry.All() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-8s %s\n",
			rule.Name(),
			rule.DefaultSeverity(),
			rule.Description(),
		)
	}
	return nil
}
