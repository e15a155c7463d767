package model

import (
	"testing"
	"time"
)

func TestNewCaseRecord_Defaults(t *testing.T) {
	rec := NewCaseRecord("C-1", "unpaid invoice", "arbitration", nil, nil, nil)

	if rec.Status != StatusInProgress {
		t.Errorf("expected status %q, got %q", StatusInProgress, rec.Status)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected creation time to be set")
	}
	if rec.CreatedAt.Location() != time.UTC {
		t.Errorf("expected UTC creation time, got %v", rec.CreatedAt.Location())
	}
	if rec.Parties == nil || rec.Claims == nil || rec.Documents == nil {
		t.Error("expected list fields to be non-nil after creation")
	}
	if len(rec.Parties) != 0 || len(rec.Claims) != 0 || len(rec.Documents) != 0 {
		t.Error("expected list fields to be empty")
	}
}

func TestCaseRecord_Validate(t *testing.T) {
	rec := NewCaseRecord("C-1", "", "", nil, nil, nil)
	if err := rec.Validate(); err != nil {
		t.Errorf("expected valid record, got %v", err)
	}

	rec.ID = ""
	if err := rec.Validate(); err != ErrEmptyCaseID {
		t.Errorf("expected ErrEmptyCaseID, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"adjudicator", RoleAdjudicator, false},
		{"Advocate", RoleAdvocate, false},
		{"PROSECUTOR", RoleProsecutor, false},
		{"judge", RoleAdjudicator, false},
		{" counsel ", RoleAdvocate, false},
		{"witness", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil {
			t.Errorf("ParseCategory(%q): unexpected error %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %q", c, got)
		}

		// Display names parse back to the same value.
		got, err = ParseCategory(c.String())
		if err != nil {
			t.Errorf("ParseCategory(%q): unexpected error %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %q, want %q", c.String(), got, c)
		}
	}

	if _, err := ParseCategory("maritime"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestRoles_ClosedSet(t *testing.T) {
	roles := Roles()
	if len(roles) != 3 {
		t.Fatalf("expected 3 roles, got %d", len(roles))
	}
	want := []Role{RoleAdjudicator, RoleAdvocate, RoleProsecutor}
	for i, r := range want {
		if roles[i] != r {
			t.Errorf("roles[%d] = %q, want %q", i, roles[i], r)
		}
	}
}
