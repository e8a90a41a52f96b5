package service

import (
	"askgate/internal/model"
	"context"
)

// Verdict is a scorer's judgment of a question
type Verdict struct {
	Accept   bool
	Guidance *model.Guidance // Set by the model scorer, nil for the heuristic scorer
	Message  string          // Fixed rejection text, heuristic scorer only
	Score    int
}

// Scorer classifies a question as acceptable or not. Implementations never fail:
// upstream problems are folded into a rejecting verdict.
type Scorer interface {
	Name() string
	Score(ctx context.Context, question string) Verdict
}
