package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

const selectPageFields = `path, title, description, kind, category, from_unit, to_unit, keywords, priority`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS pages (
			path TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			kind TEXT NOT NULL,
			category TEXT,
			from_unit TEXT,
			to_unit TEXT,
			keywords TEXT,
			priority REAL NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_pages_category ON pages(category);

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS pages_fts USING fts5(
			path,
			title,
			keywords,
			category
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the database and rebuilds it from a JSONL manifest.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	pages, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}
	if err := d.Replace(pages); err != nil {
		return 0, err
	}
	return len(pages), nil
}

// Replace clears the database and inserts pages in one transaction.
func (d *DB) Replace(pages []Page) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM pages"); err != nil {
		return fmt.Errorf("clearing pages table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM pages_fts"); err != nil {
		return fmt.Errorf("clearing pages_fts table: %w", err)
	}

	pageStmt, err := tx.Prepare(`
		INSERT INTO pages (` + selectPageFields + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing pages insert: %w", err)
	}
	defer pageStmt.Close()

	ftsStmt, err := tx.Prepare(`
		INSERT INTO pages_fts (path, title, keywords, category)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for _, p := range pages {
		keywords := strings.Join(p.Keywords, ", ")
		_, err := pageStmt.Exec(
			p.Path, p.Title, p.Description, p.Kind,
			p.Category, p.From, p.To, keywords, p.Priority,
		)
		if err != nil {
			return fmt.Errorf("inserting page %s: %w", p.Path, err)
		}

		if _, err := ftsStmt.Exec(p.Path, p.Title, keywords, p.Category); err != nil {
			return fmt.Errorf("inserting fts for %s: %w", p.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing pages: %w", err)
	}
	return nil
}

// GetByPath retrieves a page by its URL path.
func (d *DB) GetByPath(path string) (*Page, error) {
	row := d.db.QueryRow(`SELECT `+selectPageFields+` FROM pages WHERE path = ?`, path)
	p, err := scanPage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return p, err
}

// Search performs a full-text search over titles, keywords and categories.
// Results are ordered by FTS5 rank.
func (d *DB) Search(query string, limit int) ([]Page, error) {
	ftsQuery := prepareFTSQuery(query)
	if ftsQuery == "" {
		return nil, nil
	}

	rows, err := d.db.Query(`
		SELECT `+prefixed("p.", selectPageFields)+`
		FROM pages p
		JOIN (SELECT path, rank FROM pages_fts WHERE pages_fts MATCH ?) f ON f.path = p.path
		ORDER BY f.rank, p.path
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanPages(rows)
}

// ListByCategory returns the pages of one category ordered by path.
// A limit of zero or less returns every page.
func (d *DB) ListByCategory(category string, limit int) ([]Page, error) {
	query := `SELECT ` + selectPageFields + ` FROM pages WHERE category = ? ORDER BY path`
	args := []interface{}{category}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", category, err)
	}
	defer rows.Close()

	return scanPages(rows)
}

// Count returns the total number of pages.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM pages").Scan(&count)
	return count, err
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPage(s scanner) (*Page, error) {
	var p Page
	var description, category, from, to, keywords sql.NullString

	err := s.Scan(
		&p.Path, &p.Title, &description, &p.Kind,
		&category, &from, &to, &keywords, &p.Priority,
	)
	if err != nil {
		return nil, err
	}

	p.Description = description.String
	p.Category = category.String
	p.From = from.String
	p.To = to.String
	if keywords.String != "" {
		p.Keywords = strings.Split(keywords.String, ", ")
	}
	return &p, nil
}

func scanPages(rows *sql.Rows) ([]Page, error) {
	var pages []Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *p)
	}
	return pages, rows.Err()
}

func prefixed(prefix, fields string) string {
	parts := strings.Split(fields, ",")
	for i, f := range parts {
		parts[i] = prefix + strings.TrimSpace(f)
	}
	return strings.Join(parts, ", ")
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// If query contains special chars, quote it
	if strings.ContainsAny(query, "\"*+-:(){}[]^~/.,°²³·") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
