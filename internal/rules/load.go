package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a complete rule set from a YAML file and validates it. The
// file replaces the built-in tables wholesale; partial overrides are not
// merged, so an audited file always describes the full rule book.
func Load(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &rs, nil
}

// Dump renders a rule set as YAML, the same shape Load expects. Used by
// the CLI to seed an editable rules file from the built-in tables.
func Dump(rs *RuleSet) ([]byte, error) {
	data, err := yaml.Marshal(rs)
	if err != nil {
		return nil, fmt.Errorf("marshal rules: %w", err)
	}
	return data, nil
}
