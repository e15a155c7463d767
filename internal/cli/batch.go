package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/pipeline"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/store"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/worker"
)

var (
	batchConcurrency int
	batchOutputDir   string
	batchIDsFile     string
	batchTimeout     time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze many cases in parallel",
	Long: `Batch analyzes cases concurrently and writes one report per role
for every case into the output directory.

By default the whole registry is processed; --ids-file restricts the
batch to the listed case identifiers (one per line).

Example:
  justice-ai-assistant batch
  justice-ai-assistant batch --concurrency 8 --output-dir ./case-reports
  justice-ai-assistant batch --ids-file ids.txt`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "./case-reports", "output directory for reports")
	batchCmd.Flags().StringVar(&batchIDsFile, "ids-file", "", "restrict the batch to case ids from this file")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	p, st, cfg, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	// The flag wins when given; otherwise the configured worker count.
	if !cmd.Flags().Changed("concurrency") && cfg.Concurrency.Workers > 0 {
		batchConcurrency = cfg.Concurrency.Workers
	}

	records, err := batchRecords(ctx, st)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Case Analysis\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Cases:        %d\n", len(records))
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", batchConcurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", batchOutputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	if len(records) == 0 {
		fmt.Fprintf(os.Stderr, "Nothing to analyze.\n")
		return nil
	}

	// Create output directory
	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Process cases
	fmt.Fprintf(os.Stderr, "⚙️  Analyzing cases with %d workers...\n", batchConcurrency)
	processor := worker.NewBatchProcessor(p, batchConcurrency)
	results := processor.Process(ctx, records)

	var succeeded, failed int
	renderer := p.Renderer()
	for _, result := range results {
		if result.Err() != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.CaseID, result.Err())
			continue
		}

		if err := exportReports(renderer, batchOutputDir, result); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.CaseID, err)
			continue
		}

		succeeded++
		fmt.Fprintf(os.Stderr, "✓ %s (%d reports)\n", result.CaseID, len(result.Reports))
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Completed: %d succeeded, %d failed\n", succeeded, failed)
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")

	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(records))
	}
	return nil
}

// exportReports writes every role report of one result into dir as JSON
// and Markdown.
func exportReports(renderer *pipeline.Renderer, dir string, result *worker.CaseAnalysis) error {
	for _, report := range result.Reports {
		name := fmt.Sprintf("%s_%s", sanitizeFilename(result.CaseID), sanitizeFilename(string(report.Role)))
		base := filepath.Join(dir, name)
		if err := renderer.RenderJSON(report, base+".json"); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		if err := renderer.RenderFile(renderer.ReportMarkdown(report), base+".md"); err != nil {
			return fmt.Errorf("write Markdown: %w", err)
		}
	}
	return nil
}

// sanitizeFilename keeps export file names free of path separators and
// other characters that break on some filesystems. Case ids come from
// user input and must never add path elements under the output directory.
func sanitizeFilename(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, s)
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// batchRecords resolves which cases the batch covers.
func batchRecords(ctx context.Context, st store.Store) ([]model.CaseRecord, error) {
	if batchIDsFile == "" {
		records, err := st.ListCases(ctx)
		if err != nil {
			return nil, fmt.Errorf("list cases: %w", err)
		}
		return records, nil
	}

	ids, err := worker.ReadCaseIDs(batchIDsFile)
	if err != nil {
		return nil, fmt.Errorf("read ids file: %w", err)
	}
	records := make([]model.CaseRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := st.GetCase(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load case %s: %w", id, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
