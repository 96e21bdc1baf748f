package logsink

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendPreservesOrder(t *testing.T) {
	s := NewMemorySink()
	id := uuid.New()

	s.Append(id, LevelInfo, "first")
	s.Append(id, LevelWarning, "second")
	s.Append(id, LevelError, "third")

	entries := s.Query(id)
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "third", entries[2].Message)
	assert.Equal(t, LevelWarning, entries[1].Level)
	for _, e := range entries {
		assert.Equal(t, id, e.TaskID)
		assert.False(t, e.Timestamp.IsZero())
	}
}

func TestQueryUnknownTask(t *testing.T) {
	s := NewMemorySink()
	assert.Empty(t, s.Query(uuid.New()))
}

func TestTasksAreIsolated(t *testing.T) {
	s := NewMemorySink()
	a, b := uuid.New(), uuid.New()

	s.Append(a, LevelInfo, "for a")
	s.Append(b, LevelInfo, "for b")

	require.Len(t, s.Query(a), 1)
	assert.Equal(t, "for a", s.Query(a)[0].Message)
	require.Len(t, s.Query(b), 1)
	assert.Equal(t, "for b", s.Query(b)[0].Message)
}

func TestQueryReturnsCopy(t *testing.T) {
	s := NewMemorySink()
	id := uuid.New()
	s.Append(id, LevelInfo, "original")

	got := s.Query(id)
	got[0].Message = "tampered"

	assert.Equal(t, "original", s.Query(id)[0].Message)
}

func TestConcurrentAppends(t *testing.T) {
	const writers = 10
	const perWriter = 100

	s := NewMemorySink()
	id := uuid.New()

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				s.Append(id, LevelInfo, fmt.Sprintf("w%d-%d", w, i))
			}
		}(w)
	}
	wg.Wait()

	entries := s.Query(id)
	assert.Len(t, entries, writers*perWriter)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Timestamp.Before(entries[i-1].Timestamp))
	}
}
