package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the classification table used by the indexer
type Config struct {
	Categories []CategoryRule `yaml:"categories"`
}

// CategoryRule describes how files are assigned to one category.
// Exactly one of Extensions or Suffix is set.
type CategoryRule struct {
	Name       string   `yaml:"name"`
	Extensions []string `yaml:"extensions,omitempty"` // e.g. ".png", matched case-insensitively
	Suffix     string   `yaml:"suffix,omitempty"`     // e.g. ".mm.md", matched against the lowercased name
}

// IsSuffixRule reports whether the rule matches on a double suffix
func (r CategoryRule) IsSuffixRule() bool {
	return r.Suffix != ""
}

// Parse decodes and validates a classification table
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}

	seenNames := make(map[string]bool, len(c.Categories))
	for i, rule := range c.Categories {
		if rule.Name == "" {
			return fmt.Errorf("category %d has no name", i)
		}
		if seenNames[rule.Name] {
			return fmt.Errorf("duplicate category: %s", rule.Name)
		}
		seenNames[rule.Name] = true

		hasExtensions := len(rule.Extensions) > 0
		switch {
		case hasExtensions && rule.IsSuffixRule():
			return fmt.Errorf("category %s: extensions and suffix are mutually exclusive", rule.Name)
		case !hasExtensions && !rule.IsSuffixRule():
			return fmt.Errorf("category %s: needs extensions or a suffix", rule.Name)
		}

		for _, ext := range rule.Extensions {
			if err := validateExtension(ext); err != nil {
				return fmt.Errorf("category %s: %w", rule.Name, err)
			}
		}

		if rule.IsSuffixRule() {
			if err := validateSuffix(rule.Suffix); err != nil {
				return fmt.Errorf("category %s: %w", rule.Name, err)
			}
		}
	}

	return nil
}

// validateExtension accepts a single lowercase extension such as ".png"
func validateExtension(ext string) error {
	if len(ext) < 2 || ext[0] != '.' {
		return fmt.Errorf("extension must start with '.': %q", ext)
	}
	if strings.Contains(ext[1:], ".") {
		return fmt.Errorf("extension must have a single component: %q", ext)
	}
	if ext != strings.ToLower(ext) {
		return fmt.Errorf("extension must be lowercase: %q", ext)
	}
	return nil
}

// validateSuffix accepts a lowercase two-part suffix such as ".mm.md"
func validateSuffix(suffix string) error {
	parts := strings.Split(suffix, ".")
	// ".mm.md" splits into "", "mm", "md"
	if len(parts) != 3 || parts[0] != "" || parts[1] == "" || parts[2] == "" {
		return fmt.Errorf("suffix must have the form '.a.b': %q", suffix)
	}
	if suffix != strings.ToLower(suffix) {
		return fmt.Errorf("suffix must be lowercase: %q", suffix)
	}
	return nil
}

// Names returns the category names in table order
func (c *Config) Names() []string {
	names := make([]string, len(c.Categories))
	for i, rule := range c.Categories {
		names[i] = rule.Name
	}
	return names
}

// Clone returns a deep copy of the configuration
func (c *Config) Clone() *Config {
	clone := &Config{Categories: make([]CategoryRule, len(c.Categories))}
	for i, rule := range c.Categories {
		clone.Categories[i] = CategoryRule{
			Name:       rule.Name,
			Extensions: append([]string(nil), rule.Extensions...),
			Suffix:     rule.Suffix,
		}
	}
	return clone
}
