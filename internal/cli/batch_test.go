package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/pipeline"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/worker"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"case-001", "case-001"},
		{"CASE_42.v2", "CASE_42.v2"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{`..\..\secrets`, ".._.._secrets"},
		{"id with spaces", "id_with_spaces"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	long := strings.Repeat("x", 150)
	if got := sanitizeFilename(long); len(got) != 100 {
		t.Errorf("long name kept %d bytes, want 100", len(got))
	}
}

func TestExportReports_HostileCaseID(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(out, 0755); err != nil {
		t.Fatal(err)
	}

	result := &worker.CaseAnalysis{
		CaseID: "../../escape",
		Reports: []model.PersonalizedReport{{
			Role:        model.RoleAdvocate,
			GeneratedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			CaseID:      "../../escape",
			KeyInsights: []string{"a", "b", "c", "d"},
			Actions:     []string{"review the file"},
			Warnings:    []string{"advisory only"},
		}},
	}

	if err := exportReports(pipeline.NewRenderer(false), out, result); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	base := filepath.Join(out, ".._.._escape_advocate")
	if _, err := os.Stat(base + ".json"); err != nil {
		t.Errorf("JSON report not at %s: %v", base+".json", err)
	}
	if _, err := os.Stat(base + ".md"); err != nil {
		t.Errorf("Markdown report not at %s: %v", base+".md", err)
	}

	// Nothing may land above the output directory.
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "a" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("files escaped the output directory: %v", names)
	}
}

func TestExportReports_OneFilePerRoleAndFormat(t *testing.T) {
	dir := t.TempDir()

	reports := make([]model.PersonalizedReport, 0, len(model.Roles()))
	for _, role := range model.Roles() {
		reports = append(reports, model.PersonalizedReport{
			Role:        role,
			GeneratedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			CaseID:      "case-007",
			KeyInsights: []string{"a", "b", "c", "d"},
			Actions:     []string{"review the file"},
			Warnings:    []string{"advisory only"},
		})
	}
	result := &worker.CaseAnalysis{CaseID: "case-007", Reports: reports}

	if err := exportReports(pipeline.NewRenderer(false), dir, result); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := len(model.Roles()) * 2; len(entries) != want {
		t.Fatalf("exported %d files, want %d", len(entries), want)
	}
	for _, role := range model.Roles() {
		base := filepath.Join(dir, "case-007_"+string(role))
		if _, err := os.Stat(base + ".json"); err != nil {
			t.Errorf("missing %s.json: %v", base, err)
		}
		if _, err := os.Stat(base + ".md"); err != nil {
			t.Errorf("missing %s.md: %v", base, err)
		}
	}
}
