package session

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnCountTracksLearnerInputOnly(t *testing.T) {
	s := New(ModeReal, "")

	s.AppendAgentTurn("What is a fraction?", nil)
	s.AppendLearnerTurn("part of a whole")
	s.AppendAgentTurn("Good. Which is bigger, 1/3 or 1/5?", []ToolCallRecord{
		{Name: "ask_question", Input: json.RawMessage(`{"question":"Which is bigger, 1/3 or 1/5?"}`)},
	})
	s.AppendLearnerTurn("1/3")

	assert.Equal(t, 2, s.TurnCount)
	require.Len(t, s.Conversation, 4)
	for i, turn := range s.Conversation {
		assert.Equal(t, i+1, turn.TurnNumber)
	}
}

func TestConcludeSetsOnce(t *testing.T) {
	s := New(ModeSynthetic, "mia")
	require.False(t, s.Ended())

	first := json.RawMessage(`{"stop_reason":"sufficient_evidence"}`)
	s.Conclude(first)
	require.True(t, s.Ended())
	require.NotNil(t, s.Report)
	endedAt := *s.EndedAt

	s.Conclude(json.RawMessage(`{"stop_reason":"max_turns"}`))
	assert.JSONEq(t, string(first), string(s.Report))
	assert.True(t, s.EndedAt.Equal(endedAt), "second Conclude moved the end timestamp")
}

func TestParseMode(t *testing.T) {
	mode, ok := ParseMode("real")
	require.True(t, ok)
	assert.Equal(t, ModeReal, mode)

	_, ok = ParseMode("interactive")
	assert.False(t, ok)
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry[*Session]()

	_, err := r.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = r.Acquire("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistrySingleFlight(t *testing.T) {
	r := NewRegistry[*Session]()
	s := New(ModeReal, "")
	r.Put(s.ID, s)

	got, release, err := r.Acquire(s.ID)
	require.NoError(t, err)
	require.Same(t, s, got)

	_, _, err = r.Acquire(s.ID)
	assert.ErrorIs(t, err, ErrTurnInFlight)

	// Read-only Get is not blocked by an in-flight turn.
	_, err = r.Get(s.ID)
	assert.NoError(t, err)

	release()
	_, release2, err := r.Acquire(s.ID)
	require.NoError(t, err)
	release2()
}

func TestRegistryConcurrentSessionsIndependent(t *testing.T) {
	r := NewRegistry[*Session]()
	a := New(ModeReal, "")
	b := New(ModeSynthetic, "derek")
	r.Put(a.ID, a)
	r.Put(b.ID, b)

	var wg sync.WaitGroup
	for _, id := range []string{a.ID, b.ID} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, release, err := r.Acquire(id)
			if assert.NoError(t, err) {
				release()
			}
		}(id)
	}
	wg.Wait()

	assert.Len(t, r.IDs(), 2)

	r.Remove(a.ID)
	_, err := r.Get(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistryPutAcquiredHoldsGuard(t *testing.T) {
	r := NewRegistry[*Session]()
	s := New(ModeSynthetic, "mia")

	release := r.PutAcquired(s.ID, s)

	// Registered and readable, but busy until released.
	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, _, err = r.Acquire(s.ID)
	assert.ErrorIs(t, err, ErrTurnInFlight)

	release()
	_, release2, err := r.Acquire(s.ID)
	require.NoError(t, err)
	release2()

	// Releasing after Remove must not panic or resurrect the entry.
	release3 := r.PutAcquired(s.ID, s)
	r.Remove(s.ID)
	release3()
	_, err = r.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
