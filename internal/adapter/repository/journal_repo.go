package repository

import (
	"context"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
)

// JournalEntry is one applied edit as written to edit_journal.
type JournalEntry struct {
	RequestID      uuid.UUID
	Op             string
	Field          string
	EntryID        string
	Value          string
	CreatedEntryID string
	CreatedAt      time.Time
}

// OpReplace is recorded for whole-document replacements.
const OpReplace = "replace"

func EntryFromIntent(in domain.EditIntent, createdEntryID string) JournalEntry {
	e := JournalEntry{
		RequestID:      in.RequestID,
		Op:             string(in.Op),
		Field:          in.Field,
		EntryID:        in.ID,
		Value:          in.Value,
		CreatedEntryID: createdEntryID,
		CreatedAt:      in.CreatedAt,
	}
	if e.Op == "" {
		e.Op = OpReplace
	}
	if e.RequestID == uuid.Nil {
		e.RequestID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return e
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// JournalRepo appends applied edits to Postgres. It is write-only: nothing
// in the service reads the journal back.
type JournalRepo struct {
	db execer
}

func NewJournalRepo(pool *pgxpool.Pool) *JournalRepo {
	if pool == nil {
		return &JournalRepo{}
	}
	return &JournalRepo{db: pool}
}

// Enabled reports whether entries are actually written.
func (r *JournalRepo) Enabled() bool { return r.db != nil }

func (r *JournalRepo) Save(ctx context.Context, e JournalEntry) error {
	if r.db == nil {
		return nil
	}

	_, err := r.db.Exec(ctx, `INSERT INTO edit_journal (request_id, op, field, entry_id, value, created_entry_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (request_id) DO NOTHING`,
		e.RequestID, e.Op, e.Field, e.EntryID, e.Value, e.CreatedEntryID, e.CreatedAt)
	return err
}
