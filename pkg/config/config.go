package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/xkazm04/refract/pkg/engine"
	"github.com/xkazm04/refract/pkg/models"
)

// Config holds all configuration options for refract. The toml tags keep
// the file written by `refract init` loadable through the same keys koanf
// reads.
type Config struct {
	// Analysis settings
	Analysis AnalysisConfig `koanf:"analysis" toml:"analysis"`

	// Ranking and output shaping
	Ranking RankingConfig `koanf:"ranking" toml:"ranking"`

	// File exclusion patterns
	Exclude ExcludeConfig `koanf:"exclude" toml:"exclude"`

	// Output settings
	Output OutputConfig `koanf:"output" toml:"output"`
}

// AnalysisConfig controls which suggestion categories run.
type AnalysisConfig struct {
	AntiPatterns bool `koanf:"anti_patterns" toml:"anti_patterns"`
	Duplication  bool `koanf:"duplication" toml:"duplication"`
	Coupling     bool `koanf:"coupling" toml:"coupling"`
	Complexity   bool `koanf:"complexity" toml:"complexity"`
	CleanCode    bool `koanf:"clean_code" toml:"clean_code"`
}

// RankingConfig shapes the final suggestion set.
type RankingConfig struct {
	SeverityThreshold string `koanf:"severity_threshold" toml:"severity_threshold"` // low, medium, high, critical
	MaxSuggestions    int    `koanf:"max_suggestions" toml:"max_suggestions"`
}

// ExcludeConfig defines file exclusion patterns.
type ExcludeConfig struct {
	Patterns   []string `koanf:"patterns" toml:"patterns"`
	Extensions []string `koanf:"extensions" toml:"extensions"`
	Dirs       []string `koanf:"dirs" toml:"dirs"`
	Gitignore  bool     `koanf:"gitignore" toml:"gitignore"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format" toml:"format"` // text, json, markdown
	Color   bool   `koanf:"color" toml:"color"`
	Verbose bool   `koanf:"verbose" toml:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			AntiPatterns: true,
			Duplication:  true,
			Coupling:     true,
			Complexity:   true,
			CleanCode:    true,
		},
		Ranking: RankingConfig{
			SeverityThreshold: "low",
			MaxSuggestions:    50,
		},
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*_test.go",
				"*.test.ts",
				"*.test.tsx",
				"*.spec.ts",
				"*.min.js",
				"*.min.css",
			},
			Extensions: []string{
				".lock",
				".sum",
				".map",
			},
			Dirs: []string{
				"vendor",
				"node_modules",
				".git",
				".refract",
				"dist",
				"build",
				"__pycache__",
			},
			Gitignore: true,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	// Determine parser based on extension
	var parser koanf.Parser
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"refract.toml",
		"refract.yaml",
		"refract.yml",
		"refract.json",
		".refract.toml",
		".refract.yaml",
		".refract.yml",
		".refract.json",
	}

	searchDirs := []string{".", ".refract"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}

// EngineConfig maps the file config onto the engine's scan configuration.
// Unrecognized severity values fall back to the low threshold so a typo in
// a config file widens results instead of silently hiding them.
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		EnableAntiPatternDetection: c.Analysis.AntiPatterns,
		EnableDuplicationDetection: c.Analysis.Duplication,
		EnableCouplingAnalysis:     c.Analysis.Coupling,
		EnableComplexityAnalysis:   c.Analysis.Complexity,
		EnableCleanCodeChecks:      c.Analysis.CleanCode,
		SeverityThreshold:          models.ParseSeverity(c.Ranking.SeverityThreshold),
		MaxSuggestions:             c.Ranking.MaxSuggestions,
	}
}

// ShouldExclude checks if a path should be excluded from analysis.
func (c *Config) ShouldExclude(path string) bool {
	for _, dir := range c.Exclude.Dirs {
		if strings.Contains(path, string(filepath.Separator)+dir+string(filepath.Separator)) ||
			strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}

	ext := filepath.Ext(path)
	for _, excludeExt := range c.Exclude.Extensions {
		if ext == excludeExt {
			return true
		}
	}

	base := filepath.Base(path)
	for _, pattern := range c.Exclude.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
