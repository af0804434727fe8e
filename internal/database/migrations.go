package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// The reference schema is small and fixed, so migrations ship embedded
// instead of as loose .sql files.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_stations",
		SQL: `CREATE TABLE IF NOT EXISTS stations (
			name      TEXT PRIMARY KEY,
			latitude  REAL,
			longitude REAL
		)`,
	},
	{
		Version: 2,
		Name:    "create_station_lines",
		SQL: `CREATE TABLE IF NOT EXISTS station_lines (
			station_name   TEXT NOT NULL,
			line_name      TEXT NOT NULL,
			sequence_order INTEGER,
			UNIQUE (station_name, line_name)
		)`,
	},
	{
		Version: 3,
		Name:    "create_edges",
		SQL: `CREATE TABLE IF NOT EXISTS edges (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			from_station    TEXT NOT NULL,
			to_station      TEXT NOT NULL,
			line_name       TEXT NOT NULL,
			travel_time_min REAL
		)`,
	},
	{
		Version: 4,
		Name:    "index_station_lines",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_station_lines_line ON station_lines (line_name, sequence_order)`,
	},
}

// Migrate applies all pending migrations in version order
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		err := Transaction(db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(m.SQL); err != nil {
				return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
			}
			if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}
