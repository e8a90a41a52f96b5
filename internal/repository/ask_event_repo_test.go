package repository

import (
	"askgate/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestAskEventRepo_Record(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upsert", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 1},
			{Key: "nModified", Value: 0},
		})

		repo := NewAskEventRepo(mt.DB)
		err := repo.Record(context.Background(), &model.AskEvent{
			ID:        "ev-1",
			Strategy:  "model",
			Outcome:   model.OutcomeOK,
			CreatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
	})

	mt.Run("write error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "interrupted at shutdown",
		}))

		repo := NewAskEventRepo(mt.DB)
		err := repo.Record(context.Background(), &model.AskEvent{ID: "ev-2"})
		assert.Error(t, err)
	})
}

func TestAskEventRepo_ListRecent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes events", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + "ask_events"
		newer := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
		older := newer.Add(-time.Minute)

		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "ev-2"},
			{Key: "strategy", Value: "heuristic"},
			{Key: "outcome", Value: "bad_question"},
			{Key: "reason", Value: "too vague"},
			{Key: "createdAt", Value: newer},
		})
		last := mtest.CreateCursorResponse(0, ns, mtest.NextBatch, bson.D{
			{Key: "_id", Value: "ev-1"},
			{Key: "strategy", Value: "heuristic"},
			{Key: "outcome", Value: "ok"},
			{Key: "score", Value: 3},
			{Key: "createdAt", Value: older},
		})
		mt.AddMockResponses(first, last)

		repo := NewAskEventRepo(mt.DB)
		events, err := repo.ListRecent(context.Background(), 5)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "ev-2", events[0].ID)
		assert.Equal(t, model.OutcomeBadQuestion, events[0].Outcome)
		assert.Equal(t, "too vague", events[0].Reason)
		assert.Equal(t, 3, events[1].Score)
		assert.True(t, events[1].CreatedAt.Equal(older))
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + "ask_events"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		repo := NewAskEventRepo(mt.DB)
		events, err := repo.ListRecent(context.Background(), 0)
		require.NoError(t, err)
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})
}

func TestClampEventLimit(t *testing.T) {
	assert.Equal(t, DefaultEventLimit, ClampEventLimit(0))
	assert.Equal(t, DefaultEventLimit, ClampEventLimit(-3))
	assert.Equal(t, 7, ClampEventLimit(7))
	assert.Equal(t, MaxEventLimit, ClampEventLimit(500))
}
