package manifest

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Row is one converted note's manifest entry.
type Row struct {
	Path        string
	Title       string
	Page        string
	Checksum    string
	ConvertedAt time.Time
}

// Upsert inserts or replaces a note's manifest entry.
func (db *DB) Upsert(row Row) error {
	_, err := db.conn.Exec(`
		INSERT INTO notes (path, title, page, checksum, converted_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			title        = excluded.title,
			page         = excluded.page,
			checksum     = excluded.checksum,
			converted_at = excluded.converted_at
	`, row.Path, row.Title, row.Page, row.Checksum, row.ConvertedAt)
	if err != nil {
		return fmt.Errorf("manifest: upsert: %w", err)
	}
	return nil
}

// Get returns the entry for a note path, or nil when absent.
func (db *DB) Get(path string) (*Row, error) {
	var row Row
	err := db.conn.QueryRow(`
		SELECT path, title, page, checksum, converted_at FROM notes WHERE path = ?
	`, path).Scan(&row.Path, &row.Title, &row.Page, &row.Checksum, &row.ConvertedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("manifest: get: %w", err)
	}
	return &row, nil
}

// Delete removes a note's manifest entry.
func (db *DB) Delete(path string) error {
	if _, err := db.conn.Exec(`DELETE FROM notes WHERE path = ?`, path); err != nil {
		return fmt.Errorf("manifest: delete: %w", err)
	}
	return nil
}

// AllChecksums returns the stored checksum for every manifest entry.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM notes`)
	if err != nil {
		return nil, fmt.Errorf("manifest: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}
