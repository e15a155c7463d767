package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/pipeline"
)

var (
	reportRole     string
	reportJSON     string
	reportMD       string
	reportFromFile string
	reportNoStore  bool
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [case-id]",
	Short: "Generate a role-specific report for a case",
	Long: `Report analyzes a case and shapes the result for one audience:
an adjudicator, an advocate or a prosecutor.

The generated report is persisted alongside the registry unless
--no-store is given.

Example:
  justice-ai-assistant report case-042 --role advocate
  justice-ai-assistant report case-042 --role prosecutor --md report.md
  justice-ai-assistant report --from-file case.json --role adjudicator`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportRole, "role", "", "target role: adjudicator, advocate or prosecutor")
	reportCmd.Flags().StringVar(&reportJSON, "json", "", "output JSON path (optional)")
	reportCmd.Flags().StringVar(&reportMD, "md", "", "output Markdown path (optional)")
	reportCmd.Flags().StringVar(&reportFromFile, "from-file", "", "report on a case file instead of a stored case")
	reportCmd.Flags().BoolVar(&reportNoStore, "no-store", false, "do not persist the generated report")
	_ = reportCmd.MarkFlagRequired("role")
}

func runReport(cmd *cobra.Command, args []string) error {
	role, err := model.ParseRole(reportRole)
	if err != nil {
		return err
	}

	p, st, cfg, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx := context.Background()

	var rec model.CaseRecord
	switch {
	case reportFromFile != "":
		rec, err = pipeline.LoadCaseFile(reportFromFile)
		if err != nil {
			return err
		}
	case len(args) == 1:
		rec, err = st.GetCase(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load case: %w", err)
		}
	default:
		return fmt.Errorf("provide a case id or --from-file")
	}

	report, err := p.BuildReport(role, rec)
	if err != nil {
		return err
	}

	// Persisting is best-effort: the report was already generated, so a
	// storage failure downgrades to a warning.
	if !reportNoStore {
		location, err := p.SaveReport(ctx, report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: report not persisted: %v\n", err)
		} else if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Stored report: %s\n", location)
		}
	}

	if err := p.RenderPersonalized(report, reportJSON, reportMD, cfg.Output.Verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
