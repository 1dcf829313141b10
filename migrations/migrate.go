package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sort"
)

//go:embed *.sql
var files embed.FS

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

// Up применяет все невыполненные миграции в лексикографическом порядке.
// Выполненные миграции отслеживаются в таблице schema_migrations по имени
// файла, поэтому повторный запуск безопасен.
func Up(ctx context.Context, db *sql.DB, logger Logger) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return fmt.Errorf("migrations: create tracking table: %w", err)
	}

	entries, err := files.ReadDir(".")
	if err != nil {
		return fmt.Errorf("migrations: read embedded files: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := isApplied(ctx, db, name)
		if err != nil {
			return err
		}
		if applied {
			logger.Debug("migrations: %s already applied, skipping", name)
			continue
		}

		if err := apply(ctx, db, name); err != nil {
			return err
		}
		logger.Info("migrations: applied %s", name)
	}

	return nil
}

func isApplied(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM schema_migrations WHERE name = $1", name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("migrations: check %s: %w", name, err)
	}
	return count > 0, nil
}

// apply выполняет миграцию и отметку о ней в одной транзакции
func apply(ctx context.Context, db *sql.DB, name string) error {
	content, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("migrations: read %s: %w", name, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migrations: begin tx for %s: %w", name, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("migrations: execute %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
		return fmt.Errorf("migrations: record %s: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrations: commit %s: %w", name, err)
	}

	return nil
}
