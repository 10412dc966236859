package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial vocabulary library schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS vocabularies (
					id TEXT PRIMARY KEY,
					name TEXT UNIQUE NOT NULL,
					source TEXT,
					created_at DATETIME NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS words (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					vocabulary_id TEXT NOT NULL,
					role TEXT NOT NULL CHECK (role IN ('prefix', 'title', 'postfix')),
					position INTEGER NOT NULL,
					phrase TEXT NOT NULL,
					tier INTEGER NOT NULL DEFAULT 0,
					minimum_tier INTEGER,
					maximum_tier INTEGER,
					restrict_categories BOOLEAN NOT NULL DEFAULT 0,
					categories TEXT,
					whitelist TEXT,
					blacklist TEXT,
					FOREIGN KEY (vocabulary_id) REFERENCES vocabularies(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_words_vocabulary_role ON words(vocabulary_id, role, position)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query '%s': %w", query, err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add description field to vocabularies",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				ALTER TABLE vocabularies
				ADD COLUMN description TEXT DEFAULT ''
			`)
			if err != nil {
				return fmt.Errorf("failed to add description column: %w", err)
			}
			return nil
		},
	},
}

// Migrate applies pending migrations, tracking the version in PRAGMA user_version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion); err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
