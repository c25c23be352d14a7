package patterns

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists learned block patterns in a SQLite database, so the
// offline analysis tool and the analyzer share one store.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the pattern database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// EnsureSchema creates the pattern table if it does not exist.
func (s *SQLiteStore) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS block_patterns (
  name TEXT PRIMARY KEY,
  estimated_unit TEXT NOT NULL,
  role_units_json TEXT NOT NULL DEFAULT '{}',
  confidence REAL NOT NULL
);
`
	_, err := s.db.Exec(createTable)
	return err
}

// Put inserts or replaces one pattern.
func (s *SQLiteStore) Put(name string, pattern BlockPattern) error {
	roles, err := json.Marshal(pattern.RoleUnits)
	if err != nil {
		return fmt.Errorf("marshal role units for %q: %w", name, err)
	}
	_, err = s.db.Exec(`
INSERT OR REPLACE INTO block_patterns (name, estimated_unit, role_units_json, confidence)
VALUES (?, ?, ?, ?)
`, name, pattern.EstimatedUnit, string(roles), pattern.Confidence)
	return err
}

// PutAll writes a whole table in one transaction.
func (s *SQLiteStore) PutAll(table Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT OR REPLACE INTO block_patterns (name, estimated_unit, role_units_json, confidence)
VALUES (?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for name, pattern := range table {
		roles, err := json.Marshal(pattern.RoleUnits)
		if err != nil {
			return fmt.Errorf("marshal role units for %q: %w", name, err)
		}
		if _, err := stmt.Exec(name, pattern.EstimatedUnit, string(roles), pattern.Confidence); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load reads the full pattern table. The returned Table must be treated as
// immutable for the lifetime of the detectors that use it.
func (s *SQLiteStore) Load() (Table, error) {
	rows, err := s.db.Query(`SELECT name, estimated_unit, role_units_json, confidence FROM block_patterns`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := make(Table)
	for rows.Next() {
		var (
			name      string
			pattern   BlockPattern
			rolesJSON string
		)
		if err := rows.Scan(&name, &pattern.EstimatedUnit, &rolesJSON, &pattern.Confidence); err != nil {
			return nil, err
		}
		if rolesJSON != "" && rolesJSON != "{}" {
			if err := json.Unmarshal([]byte(rolesJSON), &pattern.RoleUnits); err != nil {
				return nil, fmt.Errorf("unmarshal role units for %q: %w", name, err)
			}
		}
		table[name] = pattern
	}
	return table, rows.Err()
}
