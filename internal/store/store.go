// Package store persists case records and generated reports. Two backends
// implement the same contract: a JSON file store for zero-setup use and a
// SQLite store for larger registries. Either can be wrapped with an
// in-memory read cache.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
)

var (
	// ErrNotFound is returned when no case matches the requested id.
	ErrNotFound = errors.New("case not found")

	// ErrDuplicateID is returned when appending a case whose id is
	// already registered.
	ErrDuplicateID = errors.New("case id already registered")
)

// Store is the persistence contract. Appends preserve insertion order,
// ListCases returns cases in that order, and identifiers are unique.
type Store interface {
	// AppendCase registers a new case. The id must be unused.
	AppendCase(ctx context.Context, rec model.CaseRecord) error

	// ListCases returns every stored case in insertion order.
	ListCases(ctx context.Context) ([]model.CaseRecord, error)

	// GetCase returns the case with the given id.
	GetCase(ctx context.Context, id string) (model.CaseRecord, error)

	// StoreReport persists a generated report and returns its location.
	StoreReport(ctx context.Context, report model.PersonalizedReport) (string, error)

	// Close releases backend resources.
	Close() error
}

// Open builds the store described by the configuration, wrapping it with
// the read cache when enabled.
func Open(cfg model.Config) (Store, error) {
	var (
		inner Store
		err   error
	)

	switch cfg.Storage.Backend {
	case "", model.StorageBackendFile:
		dir := cfg.Storage.Dir
		if dir == "" {
			dir, err = DefaultDataDir()
			if err != nil {
				return nil, err
			}
		}
		inner, err = NewFileStore(dir)
	case model.StorageBackendSQLite:
		dsn := cfg.Storage.DSN
		if dsn == "" {
			dir, derr := DefaultDataDir()
			if derr != nil {
				return nil, derr
			}
			dsn = filepath.Join(dir, "cases.db")
		}
		inner, err = OpenSQLite(dsn)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Cache.Enabled {
		return NewCachedStore(inner, cfg.Cache.TTL, cfg.Cache.CleanupInterval), nil
	}
	return inner, nil
}

// DefaultDataDir resolves the data directory in priority order:
// 1. JUSTICE_DATA_DIR environment variable
// 2. $XDG_DATA_HOME/justice-ai-assistant
// 3. ~/.local/share/justice-ai-assistant
func DefaultDataDir() (string, error) {
	if dir := os.Getenv("JUSTICE_DATA_DIR"); dir != "" {
		return dir, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "justice-ai-assistant"), nil
}
