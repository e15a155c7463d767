package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/store"
)

func newTestPipeline(t *testing.T) (*Pipeline, store.Store) {
	t.Helper()

	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	cfg := model.DefaultConfig()
	cfg.Output.Color = false
	return New(cfg, nil, st), st
}

func testRecord() model.CaseRecord {
	return model.NewCaseRecord(
		"case-042",
		"dispute over late delivery",
		"arbitration",
		[]string{"Plaintiff LLC", "Defendant JSC"},
		[]string{"recover the penalty under the contract"},
		nil,
	)
}

func TestPipeline_AnalyzeCase(t *testing.T) {
	p, st := newTestPipeline(t)
	ctx := context.Background()

	rec := testRecord()
	if err := st.AppendCase(ctx, rec); err != nil {
		t.Fatal(err)
	}

	review, err := p.AnalyzeCase(ctx, rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if review.Record.ID != rec.ID {
		t.Errorf("review record id = %q, want %q", review.Record.ID, rec.ID)
	}
	if review.Analysis.Category != model.CategoryCommercialCivil {
		t.Errorf("category = %q, want %q", review.Analysis.Category, model.CategoryCommercialCivil)
	}
	if review.Analysis.RiskScore != 0.82 {
		t.Errorf("risk = %v, want 0.82", review.Analysis.RiskScore)
	}
	if len(review.Analysis.Contradictions) != 2 {
		t.Errorf("contradictions = %v, want 2 entries", review.Analysis.Contradictions)
	}
}

func TestPipeline_AnalyzeCase_Missing(t *testing.T) {
	p, _ := newTestPipeline(t)

	_, err := p.AnalyzeCase(context.Background(), "case-unknown")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestPipeline_BuildReport_Disclaimer(t *testing.T) {
	p, _ := newTestPipeline(t)

	report, err := p.BuildReport(model.RoleAdvocate, testRecord())
	if err != nil {
		t.Fatal(err)
	}
	if report.Disclaimer != Disclaimer {
		t.Errorf("disclaimer = %q, want the standard text", report.Disclaimer)
	}

	p.config.Output.IncludeDisclaimer = false
	report, err = p.BuildReport(model.RoleAdvocate, testRecord())
	if err != nil {
		t.Fatal(err)
	}
	if report.Disclaimer != "" {
		t.Errorf("disclaimer = %q, want empty when disabled", report.Disclaimer)
	}
}

func TestPipeline_BuildReports_AllRoles(t *testing.T) {
	p, _ := newTestPipeline(t)

	reports, err := p.BuildReports(context.Background(), testRecord())
	if err != nil {
		t.Fatal(err)
	}
	roles := model.Roles()
	if len(reports) != len(roles) {
		t.Fatalf("got %d reports, want %d", len(reports), len(roles))
	}
	for i, report := range reports {
		if report.Role != roles[i] {
			t.Errorf("report %d role = %s, want %s", i, report.Role, roles[i])
		}
	}
}

func TestPipeline_BuildReports_CanceledContext(t *testing.T) {
	p, _ := newTestPipeline(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.BuildReports(ctx, testRecord()); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestLoadCaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.json")
	content := `{
		"id": "case-042",
		"description": "late delivery",
		"case_type": "arbitration",
		"parties": ["A", "B"],
		"claims": ["recover the penalty"],
		"documents": ["contract"]
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rec, err := LoadCaseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != "case-042" {
		t.Errorf("id = %q, want case-042", rec.ID)
	}
	if rec.Status != model.StatusInProgress {
		t.Errorf("status = %q, want default %q", rec.Status, model.StatusInProgress)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("created_at not defaulted")
	}
}

func TestLoadCaseFile_GeneratesID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.json")
	if err := os.WriteFile(path, []byte(`{"description": "no id"}`), 0644); err != nil {
		t.Fatal(err)
	}

	rec, err := LoadCaseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID == "" {
		t.Error("empty id was not generated")
	}
	if rec.Parties == nil || rec.Claims == nil || rec.Documents == nil {
		t.Error("missing lists were not normalized")
	}
}

func TestLoadCaseFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCaseFile(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("missing file did not error")
	}

	malformed := filepath.Join(dir, "malformed.json")
	if err := os.WriteFile(malformed, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCaseFile(malformed); err == nil {
		t.Error("malformed file did not error")
	}

	oversized := filepath.Join(dir, "oversized.json")
	if err := os.WriteFile(oversized, make([]byte, maxCaseFileBytes+1), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCaseFile(oversized); err == nil {
		t.Error("oversized file did not error")
	}
}

func TestRenderer_ReviewMarkdown(t *testing.T) {
	p, _ := newTestPipeline(t)
	review := p.AnalyzeRecord(testRecord())

	md := p.Renderer().ReviewMarkdown(review)

	for _, want := range []string{
		"# Case Review: case-042",
		"## Analysis",
		"### Reference Cases",
		"### Legal Norms",
		"### Contradictions",
		"### Recommendations",
		"82%",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown lacks %q", want)
		}
	}
}

func TestRenderer_ReportMarkdown(t *testing.T) {
	p, _ := newTestPipeline(t)

	report, err := p.BuildReport(model.RoleAdjudicator, testRecord())
	if err != nil {
		t.Fatal(err)
	}
	md := p.Renderer().ReportMarkdown(report)

	for _, want := range []string{
		"# Adjudicator Report: case-042",
		"## Key Insights",
		"1. ",
		"4. ",
		"## Recommended Actions",
		"## Warnings",
		"> " + Disclaimer,
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown lacks %q", want)
		}
	}
}

func TestRenderer_RenderJSON(t *testing.T) {
	p, _ := newTestPipeline(t)
	review := p.AnalyzeRecord(testRecord())

	path := filepath.Join(t.TempDir(), "review.json")
	if err := p.Renderer().RenderJSON(review, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var loaded CaseReview
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if loaded.Record.ID != review.Record.ID {
		t.Errorf("round-trip id = %q, want %q", loaded.Record.ID, review.Record.ID)
	}
}

func TestRenderer_CaseTable(t *testing.T) {
	r := NewRenderer(false)

	if got := r.CaseTable(nil); !strings.Contains(got, "No cases registered") {
		t.Errorf("empty table = %q", got)
	}

	table := r.CaseTable([]model.CaseRecord{testRecord()})
	if !strings.Contains(table, "case-042") || !strings.Contains(table, "arbitration") {
		t.Errorf("table lacks the record:\n%s", table)
	}
	if !strings.Contains(table, "ID") || !strings.Contains(table, "STATUS") {
		t.Errorf("table lacks the header:\n%s", table)
	}
}
