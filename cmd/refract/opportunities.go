package main

import (
	"github.com/spf13/cobra"

	"github.com/xkazm04/refract/internal/output"
	"github.com/xkazm04/refract/pkg/models"
)

var opportunitiesCmd = &cobra.Command{
	Use:     "opportunities [path...]",
	Aliases: []string{"opps"},
	Short:   "Scan and report opportunities in the consumer-facing shape",
	Long: `Runs the same analysis as suggest but reports each finding in the
simplified opportunity shape: UI category, impact label, and a time
estimate derived from effort. Intended for dashboards and integrations.`,
	RunE: runOpportunities,
}

func init() {
	opportunitiesCmd.Flags().StringP("format", "f", "text", "Output format: text, json, markdown")
	opportunitiesCmd.Flags().StringP("output", "o", "", "Write output to file")
	opportunitiesCmd.Flags().String("severity", "", "Minimum severity to report: low, medium, high, critical")
	opportunitiesCmd.Flags().Int("max", 0, "Maximum number of opportunities to report")

	rootCmd.AddCommand(opportunitiesCmd)
}

func runOpportunities(cmd *cobra.Command, args []string) error {
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

	result, err := scanCorpus(cmd, args, cfg, ecfg, formatter.Format() == output.FormatText)
	if err != nil {
		return err
	}
	if result == nil {
		formatter.Warning("No source files found")
		return nil
	}

	report := &output.OpportunityReport{Opportunities: models.ToOpportunities(result.Suggestions)}
	return formatter.Output(report)
}
