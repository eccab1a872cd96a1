// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive persists translation results in a SQLite database and
// serves lookup, full-text search, and export over them.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/plainread/plainread/pkg/types"
)

const defaultMaxResults = 20

// ErrNotFound is returned when no archived translation matches an ID.
var ErrNotFound = errors.New("translation not found")

// ErrAmbiguousID is returned when an ID prefix matches more than one
// archived translation.
var ErrAmbiguousID = errors.New("ambiguous translation id")

// Store manages the translation archive database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Entry is the summary row used by listings and search results. The full
// result is loaded separately via Get.
type Entry struct {
	ID           string             `json:"id" yaml:"id"`
	SourceName   string             `json:"source_name" yaml:"source_name"`
	Domain       types.Domain       `json:"domain" yaml:"domain"`
	ReadingLevel types.ReadingLevel `json:"reading_level" yaml:"reading_level"`
	Confidence   float64            `json:"confidence" yaml:"confidence"`
	CreatedAt    time.Time          `json:"created_at" yaml:"created_at"`
}

// NewStore opens or creates the archive database at cfg.DatabasePath,
// creating parent directories and the schema as needed.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join("translations", "archive.db")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
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

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS translations (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			source_name TEXT NOT NULL,
			domain TEXT NOT NULL,
			reading_level TEXT NOT NULL,
			confidence REAL NOT NULL,
			created_at TEXT NOT NULL,
			result_json TEXT NOT NULL,
			simplified TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_translations_created_at ON translations(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='translations_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE translations_fts USING fts5(
				source_name, simplified, content=translations, content_rowid=rowid)`,
			`CREATE TRIGGER translations_ai AFTER INSERT ON translations BEGIN
				INSERT INTO translations_fts(rowid, source_name, simplified)
				VALUES (new.rowid, new.source_name, new.simplified);
			END`,
			`CREATE TRIGGER translations_ad AFTER DELETE ON translations BEGIN
				INSERT INTO translations_fts(translations_fts, rowid, source_name, simplified)
				VALUES('delete', old.rowid, old.source_name, old.simplified);
			END`,
			`CREATE TRIGGER translations_au AFTER UPDATE ON translations BEGIN
				INSERT INTO translations_fts(translations_fts, rowid, source_name, simplified)
				VALUES('delete', old.rowid, old.source_name, old.simplified);
				INSERT INTO translations_fts(rowid, source_name, simplified)
				VALUES (new.rowid, new.source_name, new.simplified);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Save stores a translation result. Re-saving the same document ID replaces
// the earlier row.
func (s *Store) Save(ctx context.Context, res *types.TranslationResult) error {
	if res.DocumentID == "" {
		return errors.New("result has no document id")
	}

	resultJSON, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO translations (id, source_name, domain, reading_level, confidence, created_at, result_json, simplified)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			source_name=excluded.source_name, domain=excluded.domain,
			reading_level=excluded.reading_level, confidence=excluded.confidence,
			created_at=excluded.created_at, result_json=excluded.result_json,
			simplified=excluded.simplified`,
		res.DocumentID, res.SourceName, string(res.Domain), string(res.ReadingLevel),
		res.Confidence, res.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(resultJSON), res.SimplifiedText,
	)
	if err != nil {
		return fmt.Errorf("saving translation: %w", err)
	}
	return nil
}

// List returns archived translations, most recent first. A limit of zero
// uses the store default.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_name, domain, reading_level, confidence, created_at
		 FROM translations ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing translations: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Get loads the full result for an ID. A unique ID prefix is accepted, so
// callers can use the short form shown by List.
func (s *Store) Get(ctx context.Context, id string) (*types.TranslationResult, error) {
	fullID, err := s.resolveID(ctx, id)
	if err != nil {
		return nil, err
	}

	var resultJSON string
	err = s.db.QueryRowContext(ctx,
		`SELECT result_json FROM translations WHERE id = ?`, fullID,
	).Scan(&resultJSON)
	if err != nil {
		return nil, fmt.Errorf("loading translation %s: %w", fullID, err)
	}

	var res types.TranslationResult
	if err := json.Unmarshal([]byte(resultJSON), &res); err != nil {
		return nil, fmt.Errorf("decoding translation %s: %w", fullID, err)
	}
	return &res, nil
}

// Search runs a full-text query over source names and simplified text,
// ranked by relevance. A limit of zero uses the store default.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT t.id, t.source_name, t.domain, t.reading_level, t.confidence, t.created_at
		 FROM translations_fts
		 JOIN translations t ON t.rowid = translations_fts.rowid
		 WHERE translations_fts MATCH ?
		 ORDER BY translations_fts.rank LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching translations: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Delete removes an archived translation. A unique ID prefix is accepted.
func (s *Store) Delete(ctx context.Context, id string) error {
	fullID, err := s.resolveID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM translations WHERE id = ?`, fullID); err != nil {
		return fmt.Errorf("deleting translation %s: %w", fullID, err)
	}
	return nil
}

// resolveID expands an ID or unique prefix to the full stored ID.
func (s *Store) resolveID(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM translations WHERE id = ? OR id LIKE ? || '%' LIMIT 2`, id, id)
	if err != nil {
		return "", fmt.Errorf("resolving id %s: %w", id, err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var full string
		if err := rows.Scan(&full); err != nil {
			return "", fmt.Errorf("scanning id: %w", err)
		}
		matches = append(matches, full)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s: %w", id, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s: %w", id, ErrAmbiguousID)
	}
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var (
			e            Entry
			domain       string
			readingLevel string
			createdAt    string
		)
		if err := rows.Scan(&e.ID, &e.SourceName, &domain, &readingLevel, &e.Confidence, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		e.Domain = types.Domain(domain)
		e.ReadingLevel = types.ReadingLevel(readingLevel)
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
