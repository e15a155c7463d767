package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
)

// ReportBuilder produces the full report set for one case.
type ReportBuilder interface {
	BuildReports(ctx context.Context, rec model.CaseRecord) ([]model.PersonalizedReport, error)
}

// CaseJob analyzes a single case record.
type CaseJob struct {
	Record  model.CaseRecord
	Builder ReportBuilder
}

// Execute runs the analysis and wraps the outcome.
func (j *CaseJob) Execute(ctx context.Context) Result {
	reports, err := j.Builder.BuildReports(ctx, j.Record)
	return &CaseAnalysis{
		CaseID:  j.Record.ID,
		Reports: reports,
		Error:   err,
	}
}

// CaseAnalysis is the outcome of one batch job.
type CaseAnalysis struct {
	CaseID  string
	Reports []model.PersonalizedReport
	Error   error
}

// Err returns the job error, if any.
func (r *CaseAnalysis) Err() error {
	return r.Error
}

// BatchProcessor analyzes many cases concurrently through a ReportBuilder.
type BatchProcessor struct {
	builder     ReportBuilder
	concurrency int
}

// NewBatchProcessor creates a batch processor with the given concurrency.
func NewBatchProcessor(builder ReportBuilder, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		builder:     builder,
		concurrency: concurrency,
	}
}

// Process analyzes the given records concurrently. One failed case never
// aborts the batch; each outcome carries its own error. Results arrive in
// completion order, keyed by case id.
func (b *BatchProcessor) Process(ctx context.Context, records []model.CaseRecord) []*CaseAnalysis {
	if len(records) == 0 {
		return []*CaseAnalysis{}
	}

	// The queue must absorb the full batch: submission and collection
	// both happen on this goroutine.
	pool := NewPool(b.concurrency, len(records))
	pool.Start()

	for _, rec := range records {
		pool.Submit(&CaseJob{Record: rec, Builder: b.builder})
	}

	results := pool.Wait()

	analyses := make([]*CaseAnalysis, len(results))
	for i, result := range results {
		analyses[i] = result.(*CaseAnalysis)
	}
	return analyses
}

// ReadCaseIDs reads case identifiers from a file, one per line. Blank
// lines and #-comments are skipped and duplicates collapse to the first
// occurrence.
func ReadCaseIDs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var ids []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			ids = append(ids, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return ids, nil
}
