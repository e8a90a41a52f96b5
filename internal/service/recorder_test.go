package service

import (
	"askgate/internal/model"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiRecorder_FansOut(t *testing.T) {
	m := NewMultiRecorder(testLogger())
	a, b := newFakeRecorder(), newFakeRecorder()
	m.Add("a", a)
	m.Add("b", b)
	m.Add("nil", nil)
	require.Equal(t, 2, m.Len())

	ev := &model.AskEvent{ID: "ev-1", Outcome: model.OutcomeOK}
	require.NoError(t, m.Record(context.Background(), ev))
	assert.Same(t, ev, <-a.events)
	assert.Same(t, ev, <-b.events)
}

func TestMultiRecorder_FailingSinkDoesNotStopOthers(t *testing.T) {
	m := NewMultiRecorder(testLogger())
	broken, healthy := newFakeRecorder(), newFakeRecorder()
	broken.err = errors.New("connection reset")
	m.Add("mongo", broken)
	m.Add("redis", healthy)

	err := m.Record(context.Background(), &model.AskEvent{ID: "ev-2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
	assert.ErrorIs(t, err, broken.err)
	assert.Len(t, healthy.events, 1)
}

func TestMultiRecorder_Empty(t *testing.T) {
	m := NewMultiRecorder(testLogger())
	assert.NoError(t, m.Record(context.Background(), &model.AskEvent{ID: "ev-3"}))
}
