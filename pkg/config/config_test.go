package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xkazm04/refract/pkg/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Analysis.AntiPatterns || !cfg.Analysis.Duplication || !cfg.Analysis.Coupling ||
		!cfg.Analysis.Complexity || !cfg.Analysis.CleanCode {
		t.Error("all categories should be enabled by default")
	}
	if cfg.Ranking.SeverityThreshold != "low" {
		t.Errorf("SeverityThreshold = %q, want low", cfg.Ranking.SeverityThreshold)
	}
	if cfg.Ranking.MaxSuggestions != 50 {
		t.Errorf("MaxSuggestions = %d, want 50", cfg.Ranking.MaxSuggestions)
	}
	if !cfg.Exclude.Gitignore {
		t.Error("gitignore exclusion should default on")
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refract.toml")
	content := `
[analysis]
duplication = false

[ranking]
severity_threshold = "high"
max_suggestions = 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Analysis.Duplication {
		t.Error("duplication should be disabled by the file")
	}
	if !cfg.Analysis.Coupling {
		t.Error("unset fields should keep defaults")
	}
	if cfg.Ranking.SeverityThreshold != "high" {
		t.Errorf("SeverityThreshold = %q, want high", cfg.Ranking.SeverityThreshold)
	}
	if cfg.Ranking.MaxSuggestions != 10 {
		t.Errorf("MaxSuggestions = %d, want 10", cfg.Ranking.MaxSuggestions)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refract.yaml")
	content := `
ranking:
  max_suggestions: 7
output:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Ranking.MaxSuggestions != 7 {
		t.Errorf("MaxSuggestions = %d, want 7", cfg.Ranking.MaxSuggestions)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Output.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analysis.Complexity = false
	cfg.Ranking.SeverityThreshold = "medium"
	cfg.Ranking.MaxSuggestions = 25

	ecfg := cfg.EngineConfig()
	if ecfg.EnableComplexityAnalysis {
		t.Error("complexity toggle should carry over")
	}
	if !ecfg.EnableAntiPatternDetection {
		t.Error("enabled categories should carry over")
	}
	if ecfg.SeverityThreshold != models.SeverityMedium {
		t.Errorf("SeverityThreshold = %s, want medium", ecfg.SeverityThreshold)
	}
	if ecfg.MaxSuggestions != 25 {
		t.Errorf("MaxSuggestions = %d, want 25", ecfg.MaxSuggestions)
	}
}

func TestEngineConfigBadSeverity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ranking.SeverityThreshold = "sev1"

	if got := cfg.EngineConfig().SeverityThreshold; got != models.SeverityLow {
		t.Errorf("bad severity should fall back to low, got %s", got)
	}
}

func TestShouldExclude(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join("node_modules", "lib", "index.js"), true},
		{filepath.Join("src", "app.ts"), false},
		{"app.test.ts", true},
		{"bundle.min.js", true},
		{"deps.lock", true},
		{filepath.Join("src", "main.go"), false},
	}

	for _, tt := range tests {
		if got := cfg.ShouldExclude(tt.path); got != tt.want {
			t.Errorf("ShouldExclude(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
