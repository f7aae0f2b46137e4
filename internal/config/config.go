// Package config handles loading and validating relint configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/danielsogl/relint/internal/rules"
	"github.com/danielsogl/relint/internal/types"
)

// Config represents the relint configuration
type Config struct {
	Version int `hcl:"version,optional"`

	// RuleDirs lists directories searched for rule plugins
	RuleDirs []string `hcl:"rule_dirs,optional"`

	Output *OutputConfig `hcl:"output,block"`

	// Rules configures the rule list for regular sources. Block order
	// is dispatch order.
	Rules []*RuleConfig `hcl:"rule,block"`

	// TestRules configures the rule list for _test.go sources
	TestRules []*RuleConfig `hcl:"test_rule,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// RuleConfig defines per-rule configuration
type RuleConfig struct {
	Name     string         `hcl:"name,label"`
	Enabled  *bool          `hcl:"enabled,optional"`
	Severity *string        `hcl:"severity,optional"`
	Options  hcl.Expression `hcl:"options,optional"`

	// decoded form of Options, filled during load
	options rules.Options
}

// ConfigPath returns the path to the loaded config file, or empty if
// using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Settings converts the configured rule list into resolver settings,
// preserving block order. Disabled rules are dropped here so the
// resolver only ever sees the enabled set.
func (c *Config) Settings(forTests bool) []rules.Setting {
	list := c.Rules
	if forTests {
		list = c.TestRules
	}

	settings := make([]rules.Setting, 0, len(list))
	for _, rc := range list {
		if rc.Enabled != nil && !*rc.Enabled {
			continue
		}

		s := rules.Setting{Name: rc.Name, Options: rc.options}
		if rc.Severity != nil {
			sev, err := types.ParseSeverity(*rc.Severity)
			if err == nil {
				s.Severity = &sev
			}
		}
		settings = append(settings, s)
	}
	return settings
}

// Load loads configuration from the specified path or searches for it.
// Search order: configPath (if provided), .relint.hcl in cwd.
func Load(configPath string) (*Config, error) {
	var path string

	if configPath != "" {
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile()
	}

	if path == "" {
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile searches for .relint.hcl in the working directory
func findConfigFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	path := filepath.Join(cwd, ".relint.hcl")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	if err := decodeRuleOptions(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// decodeRuleOptions evaluates each rule block's options expression into
// plain Go values
func decodeRuleOptions(cfg *Config) error {
	for _, rc := range append(append([]*RuleConfig{}, cfg.Rules...), cfg.TestRules...) {
		opts, err := evalOptions(rc.Options)
		if err != nil {
			return fmt.Errorf("invalid options for rule %q: %w", rc.Name, err)
		}
		rc.options = opts
	}
	return nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}
