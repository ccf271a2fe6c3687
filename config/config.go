// Package config provides configuration loading and management for skosdoc.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/c360studio/skosdoc/extract"
	semconfig "github.com/c360studio/semstreams/config"
	"gopkg.in/yaml.v3"
)

// Config represents the complete skosdoc configuration
type Config struct {
	// Input is the Turtle vocabulary file
	Input string `yaml:"input"`
	// Output is the HTML page to write
	Output string `yaml:"output"`
	// Template is an html/template file (empty = built-in page template)
	Template string `yaml:"template,omitempty"`
	// ClassStrategy is "collection" or "top-concept"
	ClassStrategy string `yaml:"class_strategy"`
	// ClassOrder moves the listed classes (qualified names or IRIs) to the front
	ClassOrder []string `yaml:"class_order,omitempty"`
	// Namespaces is the prefix table shown on the page and used to resolve ClassOrder
	Namespaces extract.Namespaces `yaml:"namespaces"`
	// MarkdownOutput optionally writes a Markdown rendition of the page
	MarkdownOutput string `yaml:"markdown_output,omitempty"`
	// MetricsFile optionally writes run metrics in Prometheus textfile format
	MetricsFile string `yaml:"metrics_file,omitempty"`
	// SkipLinkCheck disables the in-page anchor check
	SkipLinkCheck bool `yaml:"skip_link_check,omitempty"`
	// Watch configures regeneration on file changes
	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Patterns are doublestar patterns, matched against file base names,
	// selecting which changes trigger a rebuild
	Patterns []string `yaml:"patterns"`
	// Debounce is how long to wait for more changes before rebuilding
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Input:         "eLTER_DRF.ttl",
		Output:        "docs/index.html",
		Template:      "", // Built-in
		ClassStrategy: string(extract.StrategyCollection),
		Namespaces:    extract.DefaultNamespaces(),
		Watch: WatchConfig{
			Patterns: []string{"*.ttl", "*.html", "*.tmpl"},
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Strategy returns the class strategy as a typed value.
func (c *Config) Strategy() extract.Strategy {
	return extract.Strategy(c.ClassStrategy)
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if !c.Strategy().Valid() {
		return fmt.Errorf("class_strategy must be %q or %q, got %q",
			extract.StrategyCollection, extract.StrategyTopConcept, c.ClassStrategy)
	}
	if err := c.Namespaces.Validate(); err != nil {
		return fmt.Errorf("namespaces: %w", err)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file. ${VAR:-default}
// references are expanded before parsing.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := semconfig.ExpandEnvWithDefaults(string(data))

	config := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Input != "" {
		c.Input = other.Input
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.Template != "" {
		c.Template = other.Template
	}
	if other.ClassStrategy != "" {
		c.ClassStrategy = other.ClassStrategy
	}
	if len(other.ClassOrder) > 0 {
		c.ClassOrder = other.ClassOrder
	}
	if len(other.Namespaces) > 0 {
		c.Namespaces = other.Namespaces
	}
	if other.MarkdownOutput != "" {
		c.MarkdownOutput = other.MarkdownOutput
	}
	if other.MetricsFile != "" {
		c.MetricsFile = other.MetricsFile
	}
	if other.SkipLinkCheck {
		c.SkipLinkCheck = true
	}

	// Watch
	if len(other.Watch.Patterns) > 0 {
		c.Watch.Patterns = other.Watch.Patterns
	}
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
}
