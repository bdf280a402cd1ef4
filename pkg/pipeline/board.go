package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/artem13815/hrboard/pkg/candidate"
)

// Column is one board column.
type Column struct {
	Stage      candidate.Stage    `json:"stage"`
	Title      string             `json:"title"`
	Candidates []candidate.Record `json:"candidates"`
}

// Board is a dashboard's view of the store for one role filter. Moves are applied
// locally first and rolled back if the store rejects them; Refresh resyncs with
// the store, which stays the source of truth.
type Board struct {
	svc    *Service
	store  Store
	filter candidate.Filter

	mu      sync.RWMutex
	records []candidate.Record
}

func NewBoard(svc *Service, filter candidate.Filter) *Board {
	return &Board{svc: svc, store: svc.store, filter: filter}
}

func (b *Board) Refresh(ctx context.Context) error {
	items, err := b.store.List(ctx, b.filter)
	if err != nil {
		return fmt.Errorf("refresh board: %w", err)
	}
	b.mu.Lock()
	b.records = items
	b.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the cached records, newest first.
func (b *Board) Snapshot() []candidate.Record {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]candidate.Record, len(b.records))
	copy(out, b.records)
	return out
}

// Columns groups cached records by stage in board order.
func (b *Board) Columns() []Column {
	return GroupByStage(b.Snapshot())
}

// GroupByStage builds board columns, keeping record order within each column.
func GroupByStage(items []candidate.Record) []Column {
	stages := candidate.Stages()
	cols := make([]Column, len(stages))
	idx := make(map[candidate.Stage]int, len(stages))
	for i, s := range stages {
		cols[i] = Column{Stage: s, Title: s.Title(), Candidates: []candidate.Record{}}
		idx[s] = i
	}
	for _, r := range items {
		i, ok := idx[r.Stage]
		if !ok {
			continue
		}
		cols[i].Candidates = append(cols[i].Candidates, r)
	}
	return cols
}

// Move changes the stage of id on the board and in the store. On store failure the
// local entry gets its previous stage back and the error wraps ErrMoveFailed.
func (b *Board) Move(ctx context.Context, id int64, target candidate.Stage) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrMoveFailed, candidate.ErrInvalidStage, target)
	}

	prev, found := b.setStage(id, target, nil)
	if err := b.svc.Transition(ctx, id, target); err != nil {
		if found {
			b.setStage(id, prev, &target)
		}
		return fmt.Errorf("%w: candidate %d: %w", ErrMoveFailed, id, err)
	}
	return nil
}

// setStage updates the cached record and returns its old stage. With expect set the
// update only happens if the record still has that stage, so a rollback never
// clobbers a newer move.
func (b *Board) setStage(id int64, stage candidate.Stage, expect *candidate.Stage) (candidate.Stage, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.records {
		if b.records[i].ID != id {
			continue
		}
		old := b.records[i].Stage
		if expect != nil && old != *expect {
			return old, true
		}
		b.records[i].Stage = stage
		return old, true
	}
	return "", false
}
