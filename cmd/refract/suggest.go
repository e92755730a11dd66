package main

import (
	"github.com/spf13/cobra"

	"github.com/xkazm04/refract/internal/output"
)

var suggestCmd = &cobra.Command{
	Use:     "suggest [path...]",
	Aliases: []string{"s"},
	Short:   "Scan for refactor suggestions",
	RunE:    runSuggest,
}

func init() {
	suggestCmd.Flags().StringP("format", "f", "text", "Output format: text, json, markdown")
	suggestCmd.Flags().StringP("output", "o", "", "Write output to file")
	suggestCmd.Flags().String("severity", "", "Minimum severity to report: low, medium, high, critical")
	suggestCmd.Flags().Int("max", 0, "Maximum number of suggestions to report")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ecfg, err := engineConfig(cmd, cfg)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.ParseFormat(getFormat(cmd)), getOutputFile(cmd), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	// Only interactive text runs show progress.
	result, err := scanCorpus(cmd, args, cfg, ecfg, formatter.Format() == output.FormatText)
	if err != nil {
		return err
	}
	if result == nil {
		formatter.Warning("No source files found")
		return nil
	}

	report := &output.SuggestionReport{Result: result, Verbose: verbose}
	return formatter.Output(report)
}
