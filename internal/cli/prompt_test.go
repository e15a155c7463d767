package cli

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestPrompter_Line(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("  arbitration  \n"), &out)

	got, err := p.line("Case type")
	if err != nil {
		t.Fatal(err)
	}
	if got != "arbitration" {
		t.Errorf("line = %q, want %q", got, "arbitration")
	}
	if !strings.Contains(out.String(), "Case type: ") {
		t.Errorf("prompt label missing from output: %q", out.String())
	}
}

func TestPrompter_Line_LastLineWithoutNewline(t *testing.T) {
	p := newPrompter(strings.NewReader("case-042"), new(bytes.Buffer))

	got, err := p.line("Case id")
	if err != nil {
		t.Fatal(err)
	}
	if got != "case-042" {
		t.Errorf("line = %q, want %q", got, "case-042")
	}
}

func TestPrompter_Line_ExhaustedInput(t *testing.T) {
	p := newPrompter(strings.NewReader(""), new(bytes.Buffer))
	if _, err := p.line("Anything"); err == nil {
		t.Error("exhausted input did not error")
	}
}

func TestPrompter_List(t *testing.T) {
	p := newPrompter(strings.NewReader("Plaintiff LLC , Defendant JSC,\n"), new(bytes.Buffer))

	got, err := p.list("Parties")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Plaintiff LLC", "Defendant JSC"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("list = %v, want %v", got, want)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{" , , ", []string{}},
		{"one", []string{"one"}},
		{"one,two, three ", []string{"one", "two", "three"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
