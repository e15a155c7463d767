package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
)

const bannerLine = "═══════════════════════════════════════════════════════════"

// Renderer formats reviews and reports as JSON, Markdown and colored
// console output.
type Renderer struct {
	colors map[string]*color.Color
}

// NewRenderer creates a renderer. Disabling color switches every console
// rendering to plain text.
func NewRenderer(colorEnabled bool) *Renderer {
	if !colorEnabled {
		color.NoColor = true
	}
	return &Renderer{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"bold":   color.New(color.Bold),
		},
	}
}

// RenderJSON writes v as indented JSON to path.
func (r *Renderer) RenderJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderFile writes already formatted text to path.
func (r *Renderer) RenderFile(content, path string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReviewMarkdown renders a case review as a Markdown document.
func (r *Renderer) ReviewMarkdown(review *CaseReview) string {
	var b strings.Builder
	rec := review.Record
	a := review.Analysis

	fmt.Fprintf(&b, "# Case Review: %s\n\n", rec.ID)
	fmt.Fprintf(&b, "## Case\n\n")
	fmt.Fprintf(&b, "- **Type:** %s\n", rec.CaseType)
	fmt.Fprintf(&b, "- **Status:** %s\n", rec.Status)
	fmt.Fprintf(&b, "- **Registered:** %s\n", rec.CreatedAt.Format("2006-01-02 15:04 MST"))
	if rec.Description != "" {
		fmt.Fprintf(&b, "- **Description:** %s\n", rec.Description)
	}
	writeMarkdownList(&b, "Parties", rec.Parties)
	writeMarkdownList(&b, "Claims", rec.Claims)
	writeMarkdownList(&b, "Documents", rec.Documents)

	fmt.Fprintf(&b, "\n## Analysis\n\n")
	fmt.Fprintf(&b, "- **Category:** %s\n", a.Category)
	fmt.Fprintf(&b, "- **Risk score:** %.0f%%\n", a.RiskScore*100)
	fmt.Fprintf(&b, "- **Predicted outcome:** %s\n", a.PredictedOutcome)

	fmt.Fprintf(&b, "\n### Reference Cases\n\n")
	fmt.Fprintf(&b, "| ID | Court | Outcome | Similarity |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	for _, ref := range a.ReferenceCases {
		fmt.Fprintf(&b, "| %s | %s | %s | %.2f |\n", ref.ID, ref.Court, ref.Outcome, ref.Similarity)
	}

	fmt.Fprintf(&b, "\n### Legal Norms\n\n")
	for _, norm := range a.LegalNorms {
		fmt.Fprintf(&b, "- %s\n", norm)
	}

	fmt.Fprintf(&b, "\n### Contradictions\n\n")
	if len(a.Contradictions) == 0 {
		fmt.Fprintf(&b, "None detected.\n")
	}
	for _, c := range a.Contradictions {
		fmt.Fprintf(&b, "- %s\n", c)
	}

	fmt.Fprintf(&b, "\n### Recommendations\n\n")
	for _, rc := range a.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rc)
	}

	return b.String()
}

// ReportMarkdown renders a personalized report as a Markdown document.
func (r *Renderer) ReportMarkdown(report model.PersonalizedReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Report: %s\n\n", report.Role.String(), report.CaseID)
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04 MST"))

	fmt.Fprintf(&b, "## Key Insights\n\n")
	for i, insight := range report.KeyInsights {
		fmt.Fprintf(&b, "%d. %s\n", i+1, insight)
	}

	fmt.Fprintf(&b, "\n## Recommended Actions\n\n")
	for _, action := range report.Actions {
		fmt.Fprintf(&b, "- %s\n", action)
	}

	fmt.Fprintf(&b, "\n## Warnings\n\n")
	for _, warning := range report.Warnings {
		fmt.Fprintf(&b, "- %s\n", warning)
	}

	if report.Disclaimer != "" {
		fmt.Fprintf(&b, "\n> %s\n", report.Disclaimer)
	}

	return b.String()
}

// RenderSummary prints the console summary of a case review.
func (r *Renderer) RenderSummary(review *CaseReview) {
	rec := review.Record
	a := review.Analysis

	fmt.Println(bannerLine)
	fmt.Printf("  CASE REVIEW: %s\n", r.colors["bold"].Sprint(rec.ID))
	fmt.Println(bannerLine)

	fmt.Printf("  Category:          %s\n", r.colors["cyan"].Sprint(a.Category.String()))
	fmt.Printf("  Risk score:        %s\n", r.riskColor(a.RiskScore).Sprintf("%.0f%%", a.RiskScore*100))
	fmt.Printf("  Predicted outcome: %s\n", a.PredictedOutcome)

	fmt.Printf("\n  Reference cases:\n")
	for _, ref := range a.ReferenceCases {
		fmt.Printf("    %s  %s  %s  (similarity %.2f)\n",
			r.colors["bold"].Sprint(ref.ID), ref.Court, ref.Outcome, ref.Similarity)
	}

	fmt.Printf("\n  Legal norms:\n")
	for _, norm := range a.LegalNorms {
		fmt.Printf("    • %s\n", norm)
	}

	fmt.Printf("\n  Contradictions:\n")
	if len(a.Contradictions) == 0 {
		fmt.Printf("    %s\n", r.colors["green"].Sprint("none detected"))
	}
	for _, c := range a.Contradictions {
		fmt.Printf("    %s %s\n", r.colors["red"].Sprint("✗"), c)
	}

	fmt.Printf("\n  Recommendations:\n")
	for _, rc := range a.Recommendations {
		fmt.Printf("    • %s\n", rc)
	}
	fmt.Println(bannerLine)
}

// RenderReport prints a personalized report to the console.
func (r *Renderer) RenderReport(report model.PersonalizedReport) {
	fmt.Println(bannerLine)
	fmt.Printf("  %s REPORT: %s\n",
		strings.ToUpper(report.Role.String()), r.colors["bold"].Sprint(report.CaseID))
	fmt.Println(bannerLine)

	fmt.Printf("  Key insights:\n")
	for i, insight := range report.KeyInsights {
		fmt.Printf("    %d. %s\n", i+1, insight)
	}

	fmt.Printf("\n  Recommended actions:\n")
	for _, action := range report.Actions {
		fmt.Printf("    %s %s\n", r.colors["green"].Sprint("→"), action)
	}

	fmt.Printf("\n  Warnings:\n")
	for _, warning := range report.Warnings {
		fmt.Printf("    %s %s\n", r.colors["yellow"].Sprint("!"), warning)
	}

	if report.Disclaimer != "" {
		fmt.Printf("\n  %s\n", report.Disclaimer)
	}
	fmt.Println(bannerLine)
}

// CaseTable renders the registry as an aligned text table.
func (r *Renderer) CaseTable(cases []model.CaseRecord) string {
	if len(cases) == 0 {
		return "No cases registered.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-26s %-22s %-13s %s\n", "ID", "TYPE", "STATUS", "REGISTERED")
	for _, rec := range cases {
		fmt.Fprintf(&b, "%-26s %-22s %-13s %s\n",
			truncate(rec.ID, 26), truncate(rec.CaseType, 22), rec.Status,
			rec.CreatedAt.Format("2006-01-02"))
	}
	return b.String()
}

// riskColor picks the console color for a risk score: high is red,
// elevated is yellow, the rest green.
func (r *Renderer) riskColor(score float64) *color.Color {
	switch {
	case score >= 0.8:
		return r.colors["red"]
	case score >= 0.7:
		return r.colors["yellow"]
	default:
		return r.colors["green"]
	}
}

func writeMarkdownList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "- **%s:** %s\n", label, strings.Join(items, "; "))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
