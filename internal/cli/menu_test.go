package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/pipeline"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/store"
)

func newMenuFixture(t *testing.T) (*pipeline.Pipeline, store.Store) {
	t.Helper()

	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	cfg := model.DefaultConfig()
	cfg.Output.Color = false
	return pipeline.New(cfg, nil, st), st
}

func runMenu(t *testing.T, p *pipeline.Pipeline, st store.Store, script string) string {
	t.Helper()

	var out bytes.Buffer
	if err := menuLoop(p, st, strings.NewReader(script), &out); err != nil {
		t.Fatalf("menu session failed: %v", err)
	}
	return out.String()
}

func TestMenuLoop_Exit(t *testing.T) {
	p, st := newMenuFixture(t)

	out := runMenu(t, p, st, "0\n")
	if !strings.Contains(out, "Bye.") {
		t.Errorf("exit message missing:\n%s", out)
	}
}

func TestMenuLoop_ExhaustedInputExits(t *testing.T) {
	p, st := newMenuFixture(t)

	// No exit choice; the loop must stop when stdin runs dry.
	out := runMenu(t, p, st, "2\n")
	if !strings.Contains(out, "Bye.") {
		t.Errorf("session did not end cleanly:\n%s", out)
	}
}

func TestMenuLoop_RegisterAndList(t *testing.T) {
	p, st := newMenuFixture(t)

	script := strings.Join([]string{
		"1",                            // register
		"case-042",                     // id
		"dispute over late delivery",   // description
		"arbitration",                  // type
		"Plaintiff LLC, Defendant JSC", // parties
		"recover the penalty",          // claims
		"contract",                     // documents
		"2",                            // list
		"0",                            // exit
	}, "\n") + "\n"

	out := runMenu(t, p, st, script)

	if !strings.Contains(out, "✓ Registered case case-042") {
		t.Errorf("registration confirmation missing:\n%s", out)
	}
	if !strings.Contains(out, "case-042") || !strings.Contains(out, "arbitration") {
		t.Errorf("listing lacks the registered case:\n%s", out)
	}

	rec, err := st.GetCase(context.Background(), "case-042")
	if err != nil {
		t.Fatalf("registered case not stored: %v", err)
	}
	if len(rec.Parties) != 2 {
		t.Errorf("parties = %v, want 2 entries", rec.Parties)
	}
}

func TestMenuLoop_ErrorsDoNotEndSession(t *testing.T) {
	p, st := newMenuFixture(t)

	script := strings.Join([]string{
		"3",            // analyze
		"case-unknown", // missing case triggers an error
		"7",            // unknown choice
		"0",            // still able to exit cleanly
	}, "\n") + "\n"

	out := runMenu(t, p, st, script)

	if !strings.Contains(out, "Error:") {
		t.Errorf("analysis failure was not reported:\n%s", out)
	}
	if !strings.Contains(out, `Unknown choice "7"`) {
		t.Errorf("unknown choice was not reported:\n%s", out)
	}
	if !strings.Contains(out, "Bye.") {
		t.Errorf("session did not reach the exit:\n%s", out)
	}
}

func TestMenuLoop_DuplicateRegistration(t *testing.T) {
	p, st := newMenuFixture(t)

	if err := st.AppendCase(context.Background(),
		model.NewCaseRecord("case-042", "", "arbitration", nil, nil, nil)); err != nil {
		t.Fatal(err)
	}

	script := strings.Join([]string{
		"1", "case-042", "", "", "", "", "", // duplicate id, rest blank
		"0",
	}, "\n") + "\n"

	out := runMenu(t, p, st, script)

	if !strings.Contains(out, "Error:") {
		t.Errorf("duplicate registration was not reported:\n%s", out)
	}
	if !strings.Contains(out, "Bye.") {
		t.Errorf("session did not continue to exit:\n%s", out)
	}
}
