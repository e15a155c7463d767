package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
)

const (
	casesFile  = "cases.json"
	reportsDir = "reports"
)

// FileStore keeps the case registry in a single JSON file and each report
// in its own file under a reports directory. A mutex serializes access;
// the store is safe for concurrent use within one process but assumes no
// other process writes the same directory.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore opens (creating if needed) a file store rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, reportsDir), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// AppendCase registers a new case at the end of the registry.
func (s *FileStore) AppendCase(ctx context.Context, rec model.CaseRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cases, err := s.load()
	if err != nil {
		return err
	}
	for _, existing := range cases {
		if existing.ID == rec.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
		}
	}

	rec.Normalize()
	return s.save(append(cases, rec))
}

// ListCases returns every stored case in insertion order.
func (s *FileStore) ListCases(ctx context.Context) ([]model.CaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// GetCase returns the case with the given id.
func (s *FileStore) GetCase(ctx context.Context, id string) (model.CaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cases, err := s.load()
	if err != nil {
		return model.CaseRecord{}, err
	}
	for _, rec := range cases {
		if rec.ID == id {
			return rec, nil
		}
	}
	return model.CaseRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// StoreReport writes the report as a standalone JSON file and returns its
// path.
func (s *FileStore) StoreReport(ctx context.Context, report model.PersonalizedReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	name := fmt.Sprintf("report_%s_%s_%s.json",
		sanitizeName(report.CaseID),
		sanitizeName(string(report.Role)),
		report.GeneratedAt.Format("20060102T150405.000000000"),
	)
	path := filepath.Join(s.dir, reportsDir, name)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}
	return path, nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error {
	return nil
}

// load reads the registry. A missing file is an empty registry.
func (s *FileStore) load() ([]model.CaseRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, casesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []model.CaseRecord{}, nil
		}
		return nil, fmt.Errorf("read case registry: %w", err)
	}

	var cases []model.CaseRecord
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parse case registry: %w", err)
	}
	for i := range cases {
		cases[i].Normalize()
	}
	return cases, nil
}

// save writes the registry atomically via a temp file and rename, so a
// crash mid-write never truncates the existing registry.
func (s *FileStore) save(cases []model.CaseRecord) error {
	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal case registry: %w", err)
	}

	path := filepath.Join(s.dir, casesFile)
	tmp, err := os.CreateTemp(s.dir, casesFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp registry: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp registry: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace case registry: %w", err)
	}
	return nil
}

// sanitizeName keeps report file names portable across filesystems.
func sanitizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, s)
}
