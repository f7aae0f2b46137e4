package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/danielsogl/relint/internal/config"
	"github.com/danielsogl/relint/internal/linter"
	"github.com/danielsogl/relint/internal/output"
	"github.com/danielsogl/relint/internal/pathfilter"
	"github.com/danielsogl/relint/internal/rules"
	"github.com/danielsogl/relint/internal/source"
)

var (
	fixFlag     bool
	typedFlag   bool
	formatFlag  string
	configFlag  string
	colorFlag   string
	ruleDirFlag []string
	quietFlag   bool
	verboseFlag bool
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint Go source files",
	Long: `Lint the given files or directories. Directories are searched for Go
files using the default include patterns. With no arguments the current
directory is linted.`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().BoolVar(&fixFlag, "fix", false, "Apply automatic fixes and rewrite files in place")
	lintCmd.Flags().BoolVar(&typedFlag, "typed", false, "Type-check sources so type-aware rules can run")
	lintCmd.Flags().StringVar(&formatFlag, "format", "", "Output format (overrides config)")
	lintCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to config file")
	lintCmd.Flags().StringVar(&colorFlag, "color", "auto", "Color mode: auto, always, never")
	lintCmd.Flags().StringArrayVar(&ruleDirFlag, "rules-dir", nil, "Additional rule plugin directory (repeatable)")
	lintCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress output when there are no errors")
	lintCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose logging")
}

func runLint(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Go files found")
	}

	// External rules must be registered before rule resolution.
	ruleDirs := append(append([]string{}, cfg.RuleDirs...), ruleDirFlag...)
	manager, err := rules.LoadExternal(ruleDirs, logger)
	if err != nil {
		return err
	}
	defer manager.Close()

	// The default rule list is a snapshot of the registry, so it must
	// be rebuilt after external rules register.
	cfg = effectiveConfig(cfg)

	var program *source.Program
	if typedFlag {
		program, err = source.NewProgram(files)
		if err != nil {
			return err
		}
	}

	format := cfg.Output.Format
	if formatFlag != "" {
		format = formatFlag
	}
	configureColor(cfg)

	session := linter.New(linter.Options{
		Fix:       fixFlag,
		Formatter: format,
		Logger:    logger,
	}, program)

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := session.Lint(path, string(data), cfg); err != nil {
			return err
		}
	}

	result, err := session.Result()
	if err != nil {
		return err
	}

	if !quietFlag || result.HasErrors() {
		fmt.Fprint(cmd.OutOrStdout(), result.Output)
	}

	if result.HasErrors() {
		// os.Exit skips deferred calls; kill the plugin processes first.
		manager.Close()
		os.Exit(1)
	}
	return nil
}

// collectFiles expands the given arguments into Go file paths. A
// directory argument is searched with the default filter; file
// arguments are taken as-is.
func collectFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	filter := pathfilter.DefaultFilter()
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to access %s: %w", arg, err)
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		matches, err := filter.FilterFiles(arg)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			files = append(files, filepath.Join(arg, match))
		}
	}

	return files, nil
}

// effectiveConfig returns the configuration rule resolution should see.
// A default configuration enables every registered rule, so it is
// re-derived once external rules have registered; a file-backed
// configuration names its rules explicitly and is used as loaded.
func effectiveConfig(cfg *config.Config) *config.Config {
	if cfg.ConfigPath() == "" {
		return config.Default()
	}
	return cfg
}

func newLogger() hclog.Logger {
	level := hclog.Warn
	if verboseFlag {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "relint",
		Level:  level,
		Output: os.Stderr,
	})
}

// configureColor applies the color mode from flag or config to the
// stylish formatter
func configureColor(cfg *config.Config) {
	mode := colorFlag
	if mode == "auto" && cfg.Output != nil && cfg.Output.Color != "" {
		mode = cfg.Output.Color
	}

	enabled := true
	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	default: // auto
		stat, err := os.Stdout.Stat()
		enabled = err == nil && (stat.Mode()&os.ModeCharDevice) != 0
	}

	output.Register("stylish", &output.StylishFormatter{ColorEnabled: enabled})
}
