package model

import (
	"errors"
	"time"
)

// Status tracks the lifecycle stage of a case record.
type Status string

// StatusInProgress is the status every record carries from creation.
// No component transitions it; the field exists for store compatibility.
const StatusInProgress Status = "in progress"

// CaseRecord is the subject of analysis: the parties, the claims they
// raise, the documents they attach, and a free-text classification hint.
type CaseRecord struct {
	ID          string    `json:"id"`          // Unique within the store, never empty
	Description string    `json:"description"` // Free-text summary of the dispute
	CaseType    string    `json:"case_type"`   // Classification hint (e.g. "arbitration")
	Parties     []string  `json:"parties"`     // Ordered party names
	Claims      []string  `json:"claims"`      // Ordered claim statements
	Documents   []string  `json:"documents"`   // Ordered attached document labels
	CreatedAt   time.Time `json:"created_at"`
	Status      Status    `json:"status"`
}

// NewCaseRecord builds a record with the creation defaults applied:
// UTC creation time, "in progress" status, and non-nil list fields so a
// round trip through storage reproduces empty lists exactly.
func NewCaseRecord(id, description, caseType string, parties, claims, documents []string) CaseRecord {
	rec := CaseRecord{
		ID:          id,
		Description: description,
		CaseType:    caseType,
		Parties:     parties,
		Claims:      claims,
		Documents:   documents,
		CreatedAt:   time.Now().UTC(),
		Status:      StatusInProgress,
	}
	rec.Normalize()
	return rec
}

// ErrEmptyCaseID reports a record that violates the identifier invariant.
var ErrEmptyCaseID = errors.New("case record has an empty id")

// Validate checks the structural invariants callers must satisfy before
// handing the record to the analysis core.
func (r CaseRecord) Validate() error {
	if r.ID == "" {
		return ErrEmptyCaseID
	}
	return nil
}

// Normalize replaces nil list fields with empty slices and fills the
// status default. Stores call it after decoding so that records read
// back compare equal to records as created.
func (r *CaseRecord) Normalize() {
	if r.Parties == nil {
		r.Parties = []string{}
	}
	if r.Claims == nil {
		r.Claims = []string{}
	}
	if r.Documents == nil {
		r.Documents = []string{}
	}
	if r.Status == "" {
		r.Status = StatusInProgress
	}
}
