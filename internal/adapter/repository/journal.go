package repository

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"resume-builder/internal/usecase"
)

const (
	journalQueueSize   = 256
	journalSaveTimeout = 5 * time.Second
)

type journalSaver interface {
	Save(ctx context.Context, e JournalEntry) error
}

// Journal is an Editor subscriber that records every change in the
// background. Edits never wait on the database: when the queue is full the
// entry is dropped and logged.
type Journal struct {
	repo  journalSaver
	log   *slog.Logger
	queue chan JournalEntry

	once    sync.Once
	running atomic.Bool
	done    chan struct{}
}

func NewJournal(repo journalSaver, logger *slog.Logger) *Journal {
	if logger == nil {
		logger = slog.Default()
	}
	return &Journal{
		repo:  repo,
		log:   logger,
		queue: make(chan JournalEntry, journalQueueSize),
		done:  make(chan struct{}),
	}
}

func (j *Journal) OnChange(_ context.Context, c usecase.Change) {
	e := EntryFromIntent(c.Intent, c.EntryID)
	select {
	case j.queue <- e:
	default:
		j.log.Warn("journal queue full, dropping entry", "request_id", e.RequestID, "op", e.Op)
	}
}

// Run drains the queue until Close is called. It returns once every queued
// entry has been handed to the repository. Only the first call does any
// work, and a Run started after Close returns immediately.
func (j *Journal) Run(ctx context.Context) {
	if !j.running.CompareAndSwap(false, true) {
		return
	}
	defer close(j.done)
	for e := range j.queue {
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalSaveTimeout)
		if err := j.repo.Save(saveCtx, e); err != nil {
			j.log.Warn("journal write failed", "request_id", e.RequestID, "op", e.Op, "error", err)
		}
		cancel()
	}
}

// Close stops accepting entries and waits for Run to finish. Unsubscribe
// the journal from the editor first. If Run never started, queued entries
// are discarded.
func (j *Journal) Close() {
	j.once.Do(func() { close(j.queue) })
	if j.running.CompareAndSwap(false, true) {
		close(j.done)
		return
	}
	<-j.done
}
