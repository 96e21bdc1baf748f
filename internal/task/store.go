package task

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/pdf-reconciler/constants"
	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
)

// Store is the in-process task record store. All mutation goes through its
// atomic operations; Get hands out snapshots only, so status pollers and log
// readers can never observe a half-written record.
type Store struct {
	mu     sync.RWMutex
	tasks  map[uuid.UUID]*Task
	byIdem map[string]uuid.UUID
}

func NewStore() *Store {
	return &Store{
		tasks:  make(map[uuid.UUID]*Task),
		byIdem: make(map[string]uuid.UUID),
	}
}

// Create registers a new task in the received state and returns its id.
func (s *Store) Create(sourceRef, directive string) uuid.UUID {
	id, _ := s.CreateIdempotent(sourceRef, directive, "")
	return id
}

// CreateIdempotent registers a new task, deduplicating on the caller's
// idempotency key when one is provided. A repeated key returns the original
// task id with existing=true; an empty key always creates a fresh task, so
// re-processing the same source_ref stays possible.
func (s *Store) CreateIdempotent(sourceRef, directive, idemKey string) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idemKey != "" {
		if id, ok := s.byIdem[idemKey]; ok {
			return id, true
		}
	}

	now := time.Now().UTC()
	t := &Task{
		ID:        uuid.New(),
		Status:    constants.TaskStatusReceived,
		CreatedAt: now,
		UpdatedAt: now,
		SourceRef: sourceRef,
		Directive: directive,
	}
	s.tasks[t.ID] = t
	if idemKey != "" {
		s.byIdem[idemKey] = t.ID
	}
	return t.ID, false
}

// Get returns a consistent snapshot of the task.
func (s *Store) Get(id uuid.UUID) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return Snapshot{}, common.ErrNotFound
	}
	return t.snapshot(), nil
}

// Update applies an atomic read-modify-write to the task's mutable fields
// and advances UpdatedAt.
func (s *Store) Update(id uuid.UUID, mutate func(*Task)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return common.ErrNotFound
	}
	mutate(t)
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// Transition atomically moves the task along a legal state-machine edge and
// returns the prior status plus how long the task spent in it. Illegal edges
// (including any edge out of a terminal state) are rejected. Mutators run
// under the same lock as the status change, so a terminal status and its
// accompanying fields (the failure message, say) become visible together:
// no snapshot can ever show a failed task without its error.
func (s *Store) Transition(id uuid.UUID, to constants.TaskStatus, mutators ...func(*Task)) (constants.TaskStatus, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return "", 0, common.ErrNotFound
	}
	if !constants.CanTransition(t.Status, to) {
		return t.Status, 0, fmt.Errorf("illegal transition %s -> %s: %w", t.Status, to, common.ErrInvalidInput)
	}
	prev := t.Status
	now := time.Now().UTC()
	elapsed := now.Sub(t.UpdatedAt)
	t.Status = to
	for _, mutate := range mutators {
		mutate(t)
	}
	t.UpdatedAt = now
	return prev, elapsed, nil
}
