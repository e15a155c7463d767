package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
)

// maxCaseFileBytes caps how much of a case file is read. Case records are
// small; anything bigger is a wrong file.
const maxCaseFileBytes = 1 << 20

// LoadCaseFile reads a case record from a JSON file. Missing optional
// fields get defaults: a generated id, the in-progress status and the
// current time.
func LoadCaseFile(path string) (model.CaseRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.CaseRecord{}, fmt.Errorf("open case file: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxCaseFileBytes+1))
	if err != nil {
		return model.CaseRecord{}, fmt.Errorf("read case file: %w", err)
	}
	if len(data) > maxCaseFileBytes {
		return model.CaseRecord{}, fmt.Errorf("case file %s exceeds %d bytes", path, maxCaseFileBytes)
	}

	var rec model.CaseRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.CaseRecord{}, fmt.Errorf("parse case file: %w", err)
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	rec.Normalize()

	if err := rec.Validate(); err != nil {
		return model.CaseRecord{}, err
	}
	return rec, nil
}
