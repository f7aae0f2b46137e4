package config

import (
	"fmt"

	"github.com/danielsogl/relint/internal/types"
)

// supportedVersion is the config schema version this build understands
const supportedVersion = 1

// Validate checks a loaded configuration for structural errors.
// Validation failures are configuration errors and fatal to the run.
func Validate(cfg *Config) error {
	if cfg.Version != supportedVersion {
		return fmt.Errorf("unsupported config version %d (expected %d)", cfg.Version, supportedVersion)
	}

	if cfg.Output != nil {
		switch cfg.Output.Color {
		case "", "auto", "always", "never":
		default:
			return fmt.Errorf("invalid color mode %q (expected auto, always or never)", cfg.Output.Color)
		}
	}

	if err := validateRules("rule", cfg.Rules); err != nil {
		return err
	}
	return validateRules("test_rule", cfg.TestRules)
}

func validateRules(kind string, list []*RuleConfig) error {
	seen := make(map[string]bool)
	for _, rc := range list {
		if rc.Name == "" {
			return fmt.Errorf("%s block with empty name", kind)
		}
		if seen[rc.Name] {
			return fmt.Errorf("duplicate %s block for %q", kind, rc.Name)
		}
		seen[rc.Name] = true

		if rc.Severity != nil {
			if _, err := types.ParseSeverity(*rc.Severity); err != nil {
				return fmt.Errorf("%s %q: %w", kind, rc.Name, err)
			}
		}
	}
	return nil
}
