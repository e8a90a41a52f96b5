package service

import (
	"askgate/internal/config"
	"askgate/internal/model"
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
)

// ModelScorer asks a judge model whether a question is good enough to answer
type ModelScorer struct {
	generator Generator
	modelName string
	params    config.CallParams
	logger    arbor.ILogger
}

// NewModelScorer creates a scorer backed by the given generator
func NewModelScorer(generator Generator, cfg *config.AIConfig, logger arbor.ILogger) *ModelScorer {
	return &ModelScorer{
		generator: generator,
		modelName: cfg.Models.Guidance,
		params:    cfg.GuidanceCall,
		logger:    logger,
	}
}

func (s *ModelScorer) Name() string {
	return "model"
}

// Score never fails: any upstream or parse error yields the fallback guidance
func (s *ModelScorer) Score(ctx context.Context, question string) Verdict {
	guidance := s.Guidance(ctx, question)
	return Verdict{Accept: guidance.IsGood(), Guidance: guidance}
}

// Guidance returns the judge's guidance for a question
func (s *ModelScorer) Guidance(ctx context.Context, question string) *model.Guidance {
	reply, err := s.generator.Generate(ctx, GenerateRequest{
		Model:       s.modelName,
		Prompt:      buildGuidancePrompt(question),
		MaxTokens:   s.params.MaxTokens,
		Temperature: s.params.Temperature,
		JSON:        true,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("model", s.modelName).Msg("Guidance call failed, using fallback")
		return model.FallbackGuidance()
	}

	guidance, err := ParseGuidance(reply)
	if err != nil {
		s.logger.Warn().Err(err).Int("reply_length", len(reply)).Msg("Could not parse guidance, using fallback")
		return model.FallbackGuidance()
	}
	return guidance
}

func buildGuidancePrompt(question string) string {
	return fmt.Sprintf(`You are a strict assistant that only allows good questions.
A good question must be:
  - Specific and detailed
  - Clear and actionable
  - Include context, audience, or desired format if needed

For the user question: "%s"
1. Decide if it is GOOD or BAD.
2. If BAD, explain briefly why it is too vague or general.
3. Provide 1-2 concrete tips to improve it, with examples of well-phrased questions.
4. Optionally provide "command": a rewritten version of the question the user could send instead.

Return ONLY valid JSON, no markdown fences, exactly in this form:
{
  "status": "GOOD" or "BAD",
  "reason": "...",
  "tips": ["...", "..."],
  "command": "..."
}`, question)
}
