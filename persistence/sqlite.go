package persistence

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"fmt"

	_ "modernc.org/sqlite"
)

// openDB opens (creating if absent) a SQLite database at path and ensures
// the single-row snapshots table exists, following
// TobiSchelling-AICrawler's internal/database Open/migrate-on-open shape.
func openDB(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("persistence: opening database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()

		return nil, fmt.Errorf("persistence: setting journal mode: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY CHECK (id = 0),
		data BLOB NOT NULL
	)`
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()

		return nil, fmt.Errorf("persistence: migrating schema: %w", err)
	}

	return conn, nil
}

// SaveSnapshot gob-encodes snap and stores it as the single row of the
// snapshots table at path, overwriting any prior contents.
func SaveSnapshot(path string, snap Snapshot) error {
	conn, err := openDB(path)
	if err != nil {
		return err
	}
	defer conn.Close()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return fmt.Errorf("persistence: encoding snapshot: %w", err)
	}

	_, err = conn.Exec(`INSERT INTO snapshots (id, data) VALUES (0, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data`, buf.Bytes())
	if err != nil {
		return fmt.Errorf("persistence: writing snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot reads and gob-decodes the snapshot stored at path.
func LoadSnapshot(path string) (Snapshot, error) {
	conn, err := openDB(path)
	if err != nil {
		return Snapshot{}, err
	}
	defer conn.Close()

	var data []byte
	err = conn.QueryRow(`SELECT data FROM snapshots WHERE id = 0`).Scan(&data)
	if err == sql.ErrNoRows {
		return Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("persistence: reading snapshot: %w", err)
	}

	var snap Snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("persistence: decoding snapshot: %w", err)
	}

	return snap, nil
}
