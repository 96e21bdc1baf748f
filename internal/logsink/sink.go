package logsink

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a task log entry.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Entry is one append-only task log record. The sink owns entry storage and
// lifetime; tasks only reference them by id.
type Entry struct {
	TaskID    uuid.UUID
	Timestamp time.Time
	Level     Level
	Message   string
}

// Sink is the per-task structured log. Append must never fail the caller:
// a logging problem must not fail a pipeline stage.
type Sink interface {
	Append(taskID uuid.UUID, level Level, message string)
	Query(taskID uuid.UUID) []Entry
}

// MemorySink keeps log entries in process, ordered oldest first.
type MemorySink struct {
	mu      sync.RWMutex
	entries map[uuid.UUID][]Entry
}

func NewMemorySink() *MemorySink {
	return &MemorySink{entries: make(map[uuid.UUID][]Entry)}
}

func (s *MemorySink) Append(taskID uuid.UUID, level Level, message string) {
	e := Entry{
		TaskID:    taskID,
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
	}
	s.mu.Lock()
	s.entries[taskID] = append(s.entries[taskID], e)
	s.mu.Unlock()
}

// Query returns the task's entries oldest first. The returned slice is a
// copy; callers may hold it across later appends.
func (s *MemorySink) Query(taskID uuid.UUID) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.entries[taskID]
	out := make([]Entry, len(src))
	copy(out, src)
	return out
}
