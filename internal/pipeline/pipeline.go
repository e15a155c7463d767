// Package pipeline wires the analysis core, the personalizer and the
// store into the operations the CLI exposes.
package pipeline

import (
	"context"
	"fmt"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/analyze"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/personalize"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/rules"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/store"
)

// Disclaimer is appended to reports unless disabled in configuration.
const Disclaimer = "Advisory output derived from static reference tables. Not legal advice; verify against current law before relying on it."

// Pipeline orchestrates the complete case review process.
type Pipeline struct {
	analyzer     *analyze.Analyzer
	personalizer *personalize.Personalizer
	store        store.Store
	renderer     *Renderer
	config       *model.Config
}

// New creates a pipeline over the given rule tables and store. A nil rule
// set selects the built-in tables.
func New(cfg *model.Config, rs *rules.RuleSet, st store.Store) *Pipeline {
	if rs == nil {
		rs = rules.Default()
	}
	return &Pipeline{
		analyzer:     analyze.New(rs),
		personalizer: personalize.New(rs),
		store:        st,
		renderer:     NewRenderer(cfg.Output.Color),
		config:       cfg,
	}
}

// CaseReview bundles a case record with its freshly computed analysis.
type CaseReview struct {
	Record   model.CaseRecord     `json:"record"`
	Analysis model.AnalysisResult `json:"analysis"`
}

// AnalyzeCase loads a stored case and analyzes it.
func (p *Pipeline) AnalyzeCase(ctx context.Context, id string) (*CaseReview, error) {
	// 1. Load the record
	rec, err := p.store.GetCase(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load case: %w", err)
	}

	// 2. Run the analysis
	return p.AnalyzeRecord(rec), nil
}

// AnalyzeRecord analyzes a record that need not be stored.
func (p *Pipeline) AnalyzeRecord(rec model.CaseRecord) *CaseReview {
	return &CaseReview{
		Record:   rec,
		Analysis: p.analyzer.Analyze(rec),
	}
}

// BuildReport analyzes the record and personalizes the result for one
// role, stamping the disclaimer when configured.
func (p *Pipeline) BuildReport(role model.Role, rec model.CaseRecord) (model.PersonalizedReport, error) {
	analysis := p.analyzer.Analyze(rec)

	report, err := p.personalizer.Personalize(role, rec, analysis)
	if err != nil {
		return model.PersonalizedReport{}, fmt.Errorf("personalize: %w", err)
	}

	if p.config.Output.IncludeDisclaimer {
		report.Disclaimer = Disclaimer
	}
	return report, nil
}

// BuildReports produces one report per defined role. It satisfies the
// batch runner's builder contract.
func (p *Pipeline) BuildReports(ctx context.Context, rec model.CaseRecord) ([]model.PersonalizedReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := make([]model.PersonalizedReport, 0, len(model.Roles()))
	for _, role := range model.Roles() {
		report, err := p.BuildReport(role, rec)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// SaveReport persists a report through the store and returns its location.
func (p *Pipeline) SaveReport(ctx context.Context, report model.PersonalizedReport) (string, error) {
	return p.store.StoreReport(ctx, report)
}

// RenderReview renders an analysis to the requested outputs and prints
// the console summary.
func (p *Pipeline) RenderReview(review *CaseReview, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(review, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderFile(p.renderer.ReviewMarkdown(review), mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(review)
	return nil
}

// RenderPersonalized renders a role report to the requested outputs and
// prints it to the console.
func (p *Pipeline) RenderPersonalized(report model.PersonalizedReport, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderFile(p.renderer.ReportMarkdown(report), mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderReport(report)
	return nil
}

// Renderer exposes the pipeline's renderer for commands that format
// output without running an analysis.
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}
