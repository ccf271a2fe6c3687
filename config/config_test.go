package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/c360studio/skosdoc/extract"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input != "eLTER_DRF.ttl" {
		t.Errorf("expected default input eLTER_DRF.ttl, got %s", cfg.Input)
	}
	if cfg.Output != "docs/index.html" {
		t.Errorf("expected default output docs/index.html, got %s", cfg.Output)
	}
	if cfg.Strategy() != extract.StrategyCollection {
		t.Errorf("expected collection strategy, got %s", cfg.ClassStrategy)
	}
	if len(cfg.Namespaces) != len(extract.DefaultNamespaces()) {
		t.Errorf("expected default namespaces, got %d", len(cfg.Namespaces))
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("expected debounce 500ms, got %v", cfg.Watch.Debounce)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "top-concept strategy",
			modify:  func(c *Config) { c.ClassStrategy = "top-concept" },
			wantErr: false,
		},
		{
			name:    "missing input",
			modify:  func(c *Config) { c.Input = "" },
			wantErr: true,
		},
		{
			name:    "missing output",
			modify:  func(c *Config) { c.Output = "" },
			wantErr: true,
		},
		{
			name:    "unknown strategy",
			modify:  func(c *Config) { c.ClassStrategy = "both" },
			wantErr: true,
		},
		{
			name: "duplicate namespace prefix",
			modify: func(c *Config) {
				c.Namespaces = append(c.Namespaces, extract.Namespace{Prefix: "skos", IRI: "http://x/"})
			},
			wantErr: true,
		},
		{
			name:    "negative debounce",
			modify:  func(c *Config) { c.Watch.Debounce = -time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
input: "vocab/drf.ttl"
output: "site/index.html"
template: "templates/page.html"
class_strategy: top-concept
class_order:
  - drf:Station
namespaces:
  - prefix: drf
    iri: http://vocabs.lter-europe.net/drf/
markdown_output: "site/index.md"
metrics_file: "metrics/skosdoc.prom"
watch:
  patterns:
    - "*.ttl"
  debounce: 2s
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Input != "vocab/drf.ttl" {
		t.Errorf("expected input vocab/drf.ttl, got %s", cfg.Input)
	}
	if cfg.Output != "site/index.html" {
		t.Errorf("expected output site/index.html, got %s", cfg.Output)
	}
	if cfg.Strategy() != extract.StrategyTopConcept {
		t.Errorf("expected top-concept, got %s", cfg.ClassStrategy)
	}
	if len(cfg.ClassOrder) != 1 || cfg.ClassOrder[0] != "drf:Station" {
		t.Errorf("unexpected class order %v", cfg.ClassOrder)
	}
	if len(cfg.Namespaces) != 1 || cfg.Namespaces[0].Prefix != "drf" {
		t.Errorf("unexpected namespaces %v", cfg.Namespaces)
	}
	if cfg.MarkdownOutput != "site/index.md" {
		t.Errorf("expected markdown output site/index.md, got %s", cfg.MarkdownOutput)
	}
	if cfg.Watch.Debounce != 2*time.Second {
		t.Errorf("expected debounce 2s, got %v", cfg.Watch.Debounce)
	}
}

func TestLoadFromFile_ExpandsEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
input: "${SKOSDOC_TEST_INPUT:-default.ttl}"
output: "${SKOSDOC_TEST_OUTPUT:-out/index.html}"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv("SKOSDOC_TEST_INPUT", "from-env.ttl")

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.Input != "from-env.ttl" {
		t.Errorf("expected input from-env.ttl, got %s", cfg.Input)
	}
	if cfg.Output != "out/index.html" {
		t.Errorf("expected default output out/index.html, got %s", cfg.Output)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Input:         "override.ttl",
		ClassStrategy: "top-concept",
	}

	base.Merge(override)

	if base.Input != "override.ttl" {
		t.Errorf("expected input override.ttl, got %s", base.Input)
	}
	// Output should remain from base since override didn't set it
	if base.Output != "docs/index.html" {
		t.Errorf("expected output to remain default, got %s", base.Output)
	}
	if base.ClassStrategy != "top-concept" {
		t.Errorf("expected top-concept, got %s", base.ClassStrategy)
	}
	if len(base.Namespaces) == 0 {
		t.Error("expected namespaces to remain default")
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Input = "saved.ttl"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Input != "saved.ttl" {
		t.Errorf("expected input saved.ttl, got %s", loaded.Input)
	}
	if loaded.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("expected debounce to round-trip, got %v", loaded.Watch.Debounce)
	}
}
