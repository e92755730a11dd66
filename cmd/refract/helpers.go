package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xkazm04/refract/internal/corpus"
	"github.com/xkazm04/refract/internal/progress"
	"github.com/xkazm04/refract/pkg/config"
	"github.com/xkazm04/refract/pkg/engine"
	"github.com/xkazm04/refract/pkg/models"
)

// getPaths returns paths from args, defaulting to ["."]
func getPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

// getFormat returns the format flag value from the command.
func getFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("format")
	return format
}

// getOutputFile returns the output file path from the command.
func getOutputFile(cmd *cobra.Command) string {
	outputFile, _ := cmd.Flags().GetString("output")
	return outputFile
}

// engineConfig layers command flags over the file config.
func engineConfig(cmd *cobra.Command, cfg *config.Config) (engine.Config, error) {
	ecfg := cfg.EngineConfig()

	if cmd.Flags().Changed("severity") {
		raw, _ := cmd.Flags().GetString("severity")
		sev := models.Severity(raw)
		if !sev.Valid() {
			return ecfg, fmt.Errorf("invalid --severity %q (want low, medium, high, or critical)", raw)
		}
		ecfg.SeverityThreshold = sev
	}
	if cmd.Flags().Changed("max") {
		max, _ := cmd.Flags().GetInt("max")
		if max <= 0 {
			return ecfg, fmt.Errorf("--max must be a positive integer (got %d)", max)
		}
		ecfg.MaxSuggestions = max
	}

	return ecfg, nil
}

// enabledCategories counts the scanners a config will run, for sizing the
// analysis progress bar.
func enabledCategories(ecfg engine.Config) int {
	n := 0
	for _, on := range []bool{
		ecfg.EnableAntiPatternDetection,
		ecfg.EnableDuplicationDetection,
		ecfg.EnableCouplingAnalysis,
		ecfg.EnableComplexityAnalysis,
		ecfg.EnableCleanCodeChecks,
	} {
		if on {
			n++
		}
	}
	return n
}

// scanCorpus loads sources and runs the engine over them. A nil result with
// a nil error means no source files were found. Progress is displayed on
// stderr when showProgress is set.
func scanCorpus(cmd *cobra.Command, args []string, cfg *config.Config, ecfg engine.Config, showProgress bool) (*models.Result, error) {
	var loaderOpts []corpus.LoaderOption
	var loadBar *progress.Tracker
	if showProgress {
		loadBar = progress.NewSpinner("Loading sources...")
		loaderOpts = append(loaderOpts, corpus.WithProgress(func(string) {
			loadBar.Tick()
		}))
	}

	files, err := corpus.NewLoader(cfg, loaderOpts...).Load(getPaths(args)...)
	if loadBar != nil {
		loadBar.FinishSuccess()
	}
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	engOpts := []engine.Option{engine.WithConfig(ecfg)}
	var scanBar *progress.Tracker
	if showProgress {
		scanBar = progress.NewTracker("Analyzing", enabledCategories(ecfg))
		engOpts = append(engOpts, engine.WithScanProgress(func(models.Category) {
			scanBar.Tick()
		}))
	}

	result, err := engine.New(engOpts...).Analyze(cmd.Context(), files)
	if err != nil {
		if scanBar != nil {
			scanBar.FinishError(err)
		}
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	if scanBar != nil {
		scanBar.FinishSuccess()
	}
	return result, nil
}
