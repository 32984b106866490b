// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a ledger of completed generations in SQLite and
// exports it as YAML or JSON.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/doksofort/pkg/types"
)

const (
	dbFile       = "doksofort.db"
	defaultLimit = 20
)

// Record is one completed generation as stored in the ledger.
type Record struct {
	ID           int64     `json:"id" yaml:"id"`
	DocumentPath string    `json:"document_path" yaml:"document_path"`
	ExportPath   string    `json:"export_path,omitempty" yaml:"export_path,omitempty"`
	OutputDir    string    `json:"output_dir" yaml:"output_dir"`
	Folders      []string  `json:"folders" yaml:"folders"`
	Images       int       `json:"images" yaml:"images"`
	Headings     []string  `json:"headings" yaml:"headings"`
	StartedAt    time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt   time.Time `json:"finished_at" yaml:"finished_at"`
}

// Store manages the history SQLite database.
type Store struct {
	db  *sql.DB
	dir string
}

// Open opens or creates dir/doksofort.db and its schema.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("history directory not configured")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: cfg.Dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory holding the database and export files.
func (s *Store) Dir() string { return s.dir }

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS generations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			document_path TEXT NOT NULL,
			export_path TEXT,
			output_dir TEXT NOT NULL,
			folders TEXT NOT NULL,
			images INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS entries (
			generation_id INTEGER NOT NULL REFERENCES generations(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			folder TEXT NOT NULL,
			name TEXT NOT NULL,
			heading TEXT NOT NULL,
			PRIMARY KEY (generation_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_generations_finished ON generations(finished_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a finished generation and returns its ledger ID.
func (s *Store) Record(ctx context.Context, r types.Result) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	foldersJSON, _ := json.Marshal(r.Folders)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO generations (document_path, export_path, output_dir, folders, images, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.DocumentPath, r.ExportPath, r.OutputDir, string(foldersJSON), r.Images(),
		r.StartedAt.UTC().Format(time.RFC3339Nano), r.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting generation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading generation id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (generation_id, position, folder, name, heading) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range r.Entries {
		if _, err := stmt.ExecContext(ctx, id, i, e.Folder, e.Name, e.Heading); err != nil {
			return 0, fmt.Errorf("inserting entry %s: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing generation: %w", err)
	}
	return id, nil
}

// List returns up to limit records, newest first. A limit of zero or less
// uses the default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document_path, COALESCE(export_path, ''), output_dir, folders, images, started_at, finished_at
		 FROM generations ORDER BY finished_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying generations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec               Record
			folders           string
			started, finished string
		)
		if err := rows.Scan(&rec.ID, &rec.DocumentPath, &rec.ExportPath, &rec.OutputDir,
			&folders, &rec.Images, &started, &finished); err != nil {
			return nil, fmt.Errorf("scanning generation: %w", err)
		}
		_ = json.Unmarshal([]byte(folders), &rec.Folders)
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		rec.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating generations: %w", err)
	}

	for i := range records {
		headings, err := s.headings(ctx, records[i].ID)
		if err != nil {
			return nil, err
		}
		records[i].Headings = headings
	}
	return records, nil
}

func (s *Store) headings(ctx context.Context, id int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT heading FROM entries WHERE generation_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying entries for %d: %w", id, err)
	}
	defer rows.Close()

	headings := []string{}
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		headings = append(headings, h)
	}
	return headings, rows.Err()
}
