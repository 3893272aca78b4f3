package usecase

import (
	"context"
	"log/slog"
	"sync"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Change is delivered to subscribers after every snapshot swap. Replace
// produces a Change with a zero Intent.
type Change struct {
	Intent   domain.EditIntent
	Previous model.Resume
	Current  model.Resume
	EntryID  string
}

type Subscriber interface {
	OnChange(ctx context.Context, c Change)
}

type SubscriberFunc func(ctx context.Context, c Change)

func (f SubscriberFunc) OnChange(ctx context.Context, c Change) { f(ctx, c) }

// Result is what Dispatch hands back to the editing surface.
type Result struct {
	Document model.Resume
	EntryID  string
}

// Editor owns the session document. Writes are serialized; subscribers are
// called while the write lock is held, in registration order, and must not
// call back into Dispatch or Replace.
type Editor struct {
	mu   sync.RWMutex
	doc  model.Resume
	ids  IDGenerator
	subs []*subscription
	log  *slog.Logger
}

type subscription struct {
	s Subscriber
}

func NewEditor(seed model.Resume, ids IDGenerator, logger *slog.Logger) *Editor {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{doc: model.Clone(model.Normalize(seed)), ids: ids, log: logger}
}

// Snapshot returns a copy of the current document.
func (e *Editor) Snapshot() model.Resume {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return model.Clone(e.doc)
}

// Subscribe registers s and returns a func that removes it again.
func (e *Editor) Subscribe(s Subscriber) func() {
	sub := &subscription{s: s}
	e.mu.Lock()
	e.subs = append(e.subs, sub)
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		next := make([]*subscription, 0, len(e.subs))
		for _, x := range e.subs {
			if x != sub {
				next = append(next, x)
			}
		}
		e.subs = next
	}
}

// Dispatch applies one edit intent and swaps the held snapshot. Unknown ops
// and field names return an error and leave the document as it was.
func (e *Editor) Dispatch(ctx context.Context, in domain.EditIntent) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.doc
	next, entryID, err := Apply(prev, in, e.ids)
	if err != nil {
		e.log.Warn("edit rejected", "op", in.Op, "field", in.Field, "error", err)
		return Result{Document: model.Clone(prev)}, err
	}
	e.doc = next
	e.log.Debug("edit applied", "op", in.Op, "field", in.Field, "id", in.ID, "entry_id", entryID)

	e.notify(ctx, Change{Intent: in, Previous: prev, Current: next, EntryID: entryID})
	return Result{Document: model.Clone(next), EntryID: entryID}, nil
}

// Replace swaps in a whole document after checking its invariants.
func (e *Editor) Replace(ctx context.Context, doc model.Resume) (model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return model.Resume{}, err
	}
	doc = model.Clone(model.Normalize(doc))
	if err := model.CheckInvariants(doc); err != nil {
		return model.Resume{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.doc
	e.doc = doc
	e.log.Info("document replaced",
		"experience", len(doc.Experience), "education", len(doc.Education), "skills", len(doc.Skills))

	e.notify(ctx, Change{Previous: prev, Current: doc})
	return model.Clone(doc), nil
}

func (e *Editor) notify(ctx context.Context, c Change) {
	for _, sub := range e.subs {
		sub.s.OnChange(ctx, c)
	}
}
