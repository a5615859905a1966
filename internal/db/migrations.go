package db

import (
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	embedded "github.com/lunora-app/lunora/migrations"
	"gorm.io/gorm"
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)

type migrationFile struct {
	Version string
	Name    string
	SQL     string
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(createTableSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	migrations, err := loadMigrationFiles()
	if err != nil {
		return err
	}

	applied, err := appliedVersions(database)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if _, done := applied[migration.Version]; done {
			continue
		}
		if err := runMigration(database, migration); err != nil {
			return fmt.Errorf("migration %s: %w", migration.Name, err)
		}
	}
	return nil
}

func loadMigrationFiles() ([]migrationFile, error) {
	entries, err := fs.ReadDir(embedded.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	migrations := make([]migrationFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := migrationFilePattern.FindStringSubmatch(entry.Name())
		if len(matches) != 2 {
			continue
		}
		rawSQL, err := fs.ReadFile(embedded.Files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		migrations = append(migrations, migrationFile{
			Version: matches[1],
			Name:    entry.Name(),
			SQL:     string(rawSQL),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Name < migrations[j].Name
	})
	return migrations, nil
}

func appliedVersions(database *gorm.DB) (map[string]struct{}, error) {
	rows := make([]struct {
		Version string `gorm:"column:version"`
	}, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}

	versions := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		versions[row.Version] = struct{}{}
	}
	return versions, nil
}

func runMigration(database *gorm.DB, migration migrationFile) error {
	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range splitStatements(migration.SQL) {
			if err := tx.Exec(statement).Error; err != nil {
				return err
			}
		}
		return tx.Exec(
			`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`,
			migration.Version, migration.Name,
		).Error
	})
}

// splitStatements breaks a migration file on top-level semicolons. The SQL
// here is plain DDL, so string literals never contain semicolons.
func splitStatements(raw string) []string {
	parts := strings.Split(raw, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		statements = append(statements, trimmed)
	}
	return statements
}
