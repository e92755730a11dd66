package main

import (
	"github.com/spf13/cobra"

	"github.com/xkazm04/refract/pkg/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "refract",
	Short: "Refactor suggestion engine for source codebases",
	Long: `Refract scans source files for refactoring opportunities: god functions,
duplicated code, high import coupling, complex conditionals, magic numbers,
and oversized files. Suggestions are prioritized by severity, impact, and
effort, and each carries concrete remediation steps plus a requirement
document ready to hand to an implementer.

Supports: Go, TypeScript, JavaScript, Python, and other line-oriented languages`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (TOML, YAML, or JSON)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
}

// loadConfig resolves the effective config: an explicit --config path wins,
// otherwise the standard locations are searched.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadOrDefault(), nil
}
