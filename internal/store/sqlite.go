package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps cases and reports in a SQLite database. List-valued
// fields are stored as JSON text and timestamps as RFC 3339 strings, so a
// read reproduces the written record exactly.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at dsn, applies the
// pragmas and ensures the schema exists.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// applyPragmas configures SQLite for single-user CLI use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cases (
			seq         INTEGER PRIMARY KEY AUTOINCREMENT,
			id          TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL,
			case_type   TEXT NOT NULL,
			parties     TEXT NOT NULL,
			claims      TEXT NOT NULL,
			documents   TEXT NOT NULL,
			created_at  TEXT NOT NULL,
			status      TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reports (
			seq          INTEGER PRIMARY KEY AUTOINCREMENT,
			case_id      TEXT NOT NULL,
			role         TEXT NOT NULL,
			generated_at TEXT NOT NULL,
			payload      TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// AppendCase registers a new case. The seq column preserves insertion
// order; the UNIQUE constraint on id enforces identifier uniqueness.
func (s *SQLiteStore) AppendCase(ctx context.Context, rec model.CaseRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	rec.Normalize()

	parties, err := encodeList(rec.Parties)
	if err != nil {
		return err
	}
	claims, err := encodeList(rec.Claims)
	if err != nil {
		return err
	}
	documents, err := encodeList(rec.Documents)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO cases (id, description, case_type, parties, claims, documents, created_at, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Description, rec.CaseType, parties, claims, documents,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano), string(rec.Status),
	)
	if err != nil {
		// The driver reports constraint failures as plain errors; the
		// message always names the violated constraint.
		if strings.Contains(err.Error(), "UNIQUE") {
			return fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
		}
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

// ListCases returns every stored case in insertion order.
func (s *SQLiteStore) ListCases(ctx context.Context) ([]model.CaseRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, case_type, parties, claims, documents, created_at, status
		 FROM cases ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query cases: %w", err)
	}
	defer rows.Close()

	cases := []model.CaseRecord{}
	for rows.Next() {
		rec, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return cases, nil
}

// GetCase returns the case with the given id.
func (s *SQLiteStore) GetCase(ctx context.Context, id string) (model.CaseRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, description, case_type, parties, claims, documents, created_at, status
		 FROM cases WHERE id = ?`, id)

	rec, err := scanCase(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CaseRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return model.CaseRecord{}, err
	}
	return rec, nil
}

// StoreReport persists the full report JSON and returns a row reference.
func (s *SQLiteStore) StoreReport(ctx context.Context, report model.PersonalizedReport) (string, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (case_id, role, generated_at, payload) VALUES (?, ?, ?, ?)`,
		report.CaseID, string(report.Role),
		report.GeneratedAt.UTC().Format(time.RFC3339Nano), string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("insert report: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("report row id: %w", err)
	}
	return fmt.Sprintf("sqlite:reports/%d", seq), nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// rowScanner lets scanCase work over both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (model.CaseRecord, error) {
	var (
		rec       model.CaseRecord
		parties   string
		claims    string
		documents string
		createdAt string
		status    string
	)
	if err := row.Scan(&rec.ID, &rec.Description, &rec.CaseType,
		&parties, &claims, &documents, &createdAt, &status); err != nil {
		return model.CaseRecord{}, err
	}

	var err error
	if rec.Parties, err = decodeList(parties); err != nil {
		return model.CaseRecord{}, err
	}
	if rec.Claims, err = decodeList(claims); err != nil {
		return model.CaseRecord{}, err
	}
	if rec.Documents, err = decodeList(documents); err != nil {
		return model.CaseRecord{}, err
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return model.CaseRecord{}, fmt.Errorf("parse created_at: %w", err)
	}
	rec.Status = model.Status(status)
	return rec, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(data), nil
}

func decodeList(data string) ([]string, error) {
	items := []string{}
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return items, nil
}
