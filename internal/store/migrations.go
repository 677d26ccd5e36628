package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	if version == 0 {
		if _, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
			return fmt.Errorf("recording schema version: %w", err)
		}
	} else if version < currentSchemaVersion {
		if _, err := db.conn.Exec("UPDATE schema_version SET version = ?", currentSchemaVersion); err != nil {
			return fmt.Errorf("recording schema version: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the sessions table and its indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id             TEXT PRIMARY KEY,
			date           TEXT NOT NULL,
			start_time     TEXT,
			end_time       TEXT,
			duration_hours REAL NOT NULL,
			category       TEXT,
			earned         REAL NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_category ON sessions(category)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
