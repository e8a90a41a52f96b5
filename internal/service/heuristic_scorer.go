package service

import (
	"context"
	"strings"
)

// HeuristicRejectMessage is returned for questions that match no keyword category
const HeuristicRejectMessage = "too vague or unclear, add a role, context, or format"

// keywordCategory is one signal a well-formed prompt tends to carry
type keywordCategory struct {
	name     string
	keywords []string
}

var keywordCategories = []keywordCategory{
	{
		name: "role",
		keywords: []string{
			"you are", "act as", "as a ", "pretend", "explain like", "imagine you",
			"as an expert", "as my", "role of", "for a beginner", "for beginners",
		},
	},
	{
		name: "objective",
		keywords: []string{
			"explain", "describe", "compare", "summarize", "list", "write", "create",
			"analyze", "define", "how do", "how does", "how to", "why", "what is", "what are",
			"help me", "show me", "teach", "translate", "calculate", "solve", "generate",
		},
	},
	{
		name: "context",
		keywords: []string{
			"because", "i am", "i'm", "my ", "for my", "context", "background", "currently",
			"working on", "in order to", "so that", "given that", "using", "with ",
		},
	},
	{
		name: "format",
		keywords: []string{
			"bullet", "table", "step by step", "step-by-step", "in a list", "json", "markdown",
			"paragraph", "words", "sentences", "short", "brief", "detailed", "format", "outline",
		},
	},
	{
		name: "example",
		keywords: []string{
			"example", "for instance", "e.g.", "such as", "like this", "sample", "for example",
		},
	},
}

// HeuristicScorer accepts any question that hits at least one keyword category
type HeuristicScorer struct{}

func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{}
}

func (s *HeuristicScorer) Name() string {
	return "heuristic"
}

func (s *HeuristicScorer) Score(ctx context.Context, question string) Verdict {
	score := HeuristicScore(question)
	if score == 0 {
		return Verdict{Accept: false, Message: HeuristicRejectMessage}
	}
	return Verdict{Accept: true, Score: score}
}

// HeuristicScore counts the keyword categories present in the question (0-5)
func HeuristicScore(question string) int {
	text := strings.ToLower(question)
	score := 0
	for _, category := range keywordCategories {
		for _, kw := range category.keywords {
			if strings.Contains(text, kw) {
				score++
				break
			}
		}
	}
	return score
}
