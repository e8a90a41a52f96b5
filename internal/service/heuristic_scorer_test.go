package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicScorer_Score(t *testing.T) {
	tests := []struct {
		name     string
		question string
		accept   bool
	}{
		{name: "role phrase", question: "explain like I'm 5 what recursion is", accept: true},
		{name: "single objective verb", question: "Summarize the French revolution", accept: true},
		{name: "format only", question: "bullet points please", accept: true},
		{name: "example only", question: "an example of recursion", accept: true},
		{name: "upper case still matches", question: "ACT AS A TUTOR", accept: true},
		{name: "greeting", question: "hi", accept: false},
		{name: "noise", question: "asdf qwerty", accept: false},
		{name: "single word", question: "recursion?", accept: false},
	}

	s := NewHeuristicScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := s.Score(context.Background(), tt.question)
			assert.Equal(t, tt.accept, v.Accept)
			assert.Nil(t, v.Guidance, "heuristic scorer never produces guidance")
			if tt.accept {
				assert.GreaterOrEqual(t, v.Score, 1)
				assert.Empty(t, v.Message)
			} else {
				assert.Equal(t, 0, v.Score)
				assert.Equal(t, HeuristicRejectMessage, v.Message)
			}
		})
	}
}

func TestHeuristicScore_CountsCategoriesOnce(t *testing.T) {
	// one category hit many times still counts once
	assert.Equal(t, 1, HeuristicScore("explain describe compare"))

	// role + objective + context + format + example
	q := "Act as a tutor. I'm learning Go, explain channels in a table with an example"
	assert.Equal(t, 5, HeuristicScore(q))
}

func TestHeuristicScorer_Name(t *testing.T) {
	assert.Equal(t, "heuristic", NewHeuristicScorer().Name())
}
