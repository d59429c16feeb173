package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/CommanderStorm/navigatum-data/internal/catalog"
	"github.com/CommanderStorm/navigatum-data/internal/model"
)

// Store persists the enriched catalog via DuckDB.
type Store struct {
	DB      *sql.DB
	DataDir string
}

// New opens (or creates) a DuckDB database in the given data directory.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "navigatum.duckdb")
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	s := &Store{DB: db, DataDir: dataDir}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			name TEXT NOT NULL,
			parent TEXT,
			has_floors BOOLEAN NOT NULL DEFAULT false,
			has_floor BOOLEAN NOT NULL DEFAULT false,
			document TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// WriteCatalog replaces the stored catalog with the given mapping.
func (s *Store) WriteCatalog(data map[string]*model.Entry, enrichedAt string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO entries (id, type, name, parent, has_floors, has_floor, document)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, id := range catalog.SortedIDs(data) {
		entry := data[id]
		document, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("encoding entry %q: %w", id, err)
		}

		parent := ""
		if len(entry.Parents) > 0 {
			parent = entry.Parents[len(entry.Parents)-1]
		}
		hasFloors := len(entry.Props.Floors) > 0
		hasFloor := entry.Props.Floor != nil

		if _, err := stmt.Exec(id, string(entry.Type), entry.Name, parent, hasFloors, hasFloor, string(document)); err != nil {
			return fmt.Errorf("inserting entry %q: %w", id, err)
		}
	}

	if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('enriched_at', ?)", enrichedAt); err != nil {
		return err
	}

	return tx.Commit()
}

// ReadCatalog loads the full stored catalog.
func (s *Store) ReadCatalog() (map[string]*model.Entry, error) {
	rows, err := s.DB.Query("SELECT document FROM entries ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	data := make(map[string]*model.Entry)
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, err
		}
		var entry model.Entry
		if err := json.Unmarshal([]byte(document), &entry); err != nil {
			return nil, fmt.Errorf("decoding entry: %w", err)
		}
		data[entry.ID] = &entry
	}
	return data, rows.Err()
}

// ReadEntry loads a single entry by id.
func (s *Store) ReadEntry(id string) (*model.Entry, error) {
	var document string
	if err := s.DB.QueryRow("SELECT document FROM entries WHERE id = ?", id).Scan(&document); err != nil {
		return nil, err
	}
	var entry model.Entry
	if err := json.Unmarshal([]byte(document), &entry); err != nil {
		return nil, fmt.Errorf("decoding entry %q: %w", id, err)
	}
	return &entry, nil
}

// EnrichedAt returns when the stored catalog was last enriched.
func (s *Store) EnrichedAt() string {
	var at sql.NullString
	s.DB.QueryRow("SELECT value FROM meta WHERE key = 'enriched_at'").Scan(&at)
	return at.String
}

// EntryCount returns the total number of stored entries.
func (s *Store) EntryCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n)
	return n
}

// CountByType returns entry counts per hierarchy type.
func (s *Store) CountByType() map[string]int {
	m := make(map[string]int)
	rows, err := s.DB.Query("SELECT type, COUNT(*) FROM entries GROUP BY type ORDER BY type")
	if err != nil {
		return m
	}
	defer rows.Close()
	for rows.Next() {
		var typ string
		var cnt int
		rows.Scan(&typ, &cnt)
		m[typ] = cnt
	}
	return m
}

// BuildingsWithFloors returns how many entries carry a resolved floor list.
func (s *Store) BuildingsWithFloors() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM entries WHERE has_floors").Scan(&n)
	return n
}

// RoomsWithFloor returns how many rooms carry a resolved floor.
func (s *Store) RoomsWithFloor() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM entries WHERE type = 'room' AND has_floor").Scan(&n)
	return n
}
