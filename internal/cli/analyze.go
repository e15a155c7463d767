package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/pipeline"
)

var (
	analyzeJSON     string
	analyzeMD       string
	analyzeFromFile string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [case-id]",
	Short: "Analyze a case and print the review",
	Long: `Analyze classifies a case, selects comparable reference rulings and
applicable norms, estimates the adverse-outcome risk and flags
evidence contradictions.

Example:
  justice-ai-assistant analyze case-042
  justice-ai-assistant analyze case-042 --json review.json --md review.md
  justice-ai-assistant analyze --from-file case.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&analyzeMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().StringVar(&analyzeFromFile, "from-file", "", "analyze a case file instead of a stored case")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	p, st, cfg, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var review *pipeline.CaseReview
	switch {
	case analyzeFromFile != "":
		rec, err := pipeline.LoadCaseFile(analyzeFromFile)
		if err != nil {
			return err
		}
		review = p.AnalyzeRecord(rec)
	case len(args) == 1:
		review, err = p.AnalyzeCase(context.Background(), args[0])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("provide a case id or --from-file")
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ Classified as %s\n", review.Analysis.Category)
		fmt.Fprintf(os.Stderr, "✓ Matched %d reference cases\n", len(review.Analysis.ReferenceCases))
		fmt.Fprintf(os.Stderr, "✓ Flagged %d contradictions\n\n", len(review.Analysis.Contradictions))
	}

	if err := p.RenderReview(review, analyzeJSON, analyzeMD, cfg.Output.Verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
