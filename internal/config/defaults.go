package config

import "github.com/danielsogl/relint/internal/rules"

// Default returns the configuration used when no config file is found:
// every registered rule enabled at its default severity, for both
// regular and test sources.
func Default() *Config {
	cfg := &Config{
		Version: 1,
		Output: &OutputConfig{
			Format: "stylish",
			Color:  "auto",
		},
	}

	for _, name := range rules.DefaultRegistry.Names() {
		cfg.Rules = append(cfg.Rules, &RuleConfig{Name: name})
		cfg.TestRules = append(cfg.TestRules, &RuleConfig{Name: name})
	}

	return cfg
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == 0 {
		cfg.Version = defaults.Version
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}
}
