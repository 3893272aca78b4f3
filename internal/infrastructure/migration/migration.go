package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgconn"
)

// Execer is the part of a pgx pool the migrations need.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// RunMigrations prepares the edit journal schema. It is called on startup
// only when a journal database is configured.
func RunMigrations(ctx context.Context, db Execer) error {
	slog.Info("Starting database migrations")

	for _, m := range migrations {
		if err := m.Up(ctx, db); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, db Execer) error
}

var migrations = []Migration{
	{Name: "create_edit_journal", Up: createEditJournal},
	{Name: "index_edit_journal_created_at", Up: indexEditJournalCreatedAt},
}

func createEditJournal(ctx context.Context, db Execer) error {
	query := `
		CREATE TABLE IF NOT EXISTS edit_journal (
			request_id       UUID PRIMARY KEY,
			op               TEXT NOT NULL,
			field            TEXT NOT NULL DEFAULT '',
			entry_id         TEXT NOT NULL DEFAULT '',
			value            TEXT NOT NULL DEFAULT '',
			created_entry_id TEXT NOT NULL DEFAULT '',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	_, err := db.Exec(ctx, query)
	return err
}

// indexEditJournalCreatedAt adds the time index if it doesn't exist
func indexEditJournalCreatedAt(ctx context.Context, db Execer) error {
	query := `CREATE INDEX IF NOT EXISTS edit_journal_created_at_idx ON edit_journal (created_at);`

	if _, err := db.Exec(ctx, query); err != nil {
		// an index is an optimisation; keep starting without it
		slog.Warn("Error adding edit_journal index", "error", err)
		return nil
	}
	return nil
}
