package service

import (
	"askgate/internal/config"
	"askgate/internal/model"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
)

const recordTimeout = 5 * time.Second

// NewScorer builds the scorer for a configured strategy
func NewScorer(strategy string, generator Generator, cfg *config.AIConfig, logger arbor.ILogger) (Scorer, error) {
	switch strategy {
	case config.StrategyModel:
		return NewModelScorer(generator, cfg, logger), nil
	case config.StrategyHeuristic:
		return NewHeuristicScorer(), nil
	default:
		return nil, fmt.Errorf("unknown scorer strategy %q", strategy)
	}
}

// ShapeForStrategy returns the /ask wire shape a strategy is deployed with
func ShapeForStrategy(strategy string) model.ResponseShape {
	if strategy == config.StrategyHeuristic {
		return model.ShapeSimple
	}
	return model.ShapeRich
}

// QuestionGateway screens a question and forwards accepted ones to the generation API
type QuestionGateway struct {
	scorer    Scorer
	generator Generator
	recorder  EventRecorder
	shape     model.ResponseShape

	answerModel string
	answerCall  config.CallParams
	timeout     time.Duration

	logger arbor.ILogger
}

// NewQuestionGateway creates a gateway. The response shape follows the scorer strategy.
func NewQuestionGateway(scorer Scorer, generator Generator, cfg *config.AIConfig, logger arbor.ILogger) *QuestionGateway {
	return &QuestionGateway{
		scorer:      scorer,
		generator:   generator,
		shape:       ShapeForStrategy(scorer.Name()),
		answerModel: cfg.Models.Answer,
		answerCall:  cfg.AnswerCall,
		timeout:     cfg.Timeout.Std(),
		logger:      logger,
	}
}

// SetRecorder injects the ask event sink (optional)
func (g *QuestionGateway) SetRecorder(r EventRecorder) {
	g.recorder = r
}

// Shape returns the wire shape this gateway renders
func (g *QuestionGateway) Shape() model.ResponseShape {
	return g.shape
}

// Respond handles a question and renders the result in the gateway's wire shape
func (g *QuestionGateway) Respond(ctx context.Context, question string) interface{} {
	return g.HandleAsk(ctx, question).Shape(g.shape)
}

// HandleAsk runs one question through screening and generation. It never
// returns an error: every failure is folded into the result.
func (g *QuestionGateway) HandleAsk(ctx context.Context, question string) *model.AskResult {
	start := time.Now()
	trimmed := strings.TrimSpace(question)

	g.logger.Info().
		Int("length", len(trimmed)).
		Str("scorer", g.scorer.Name()).
		Msg("Received question")
	g.logger.Debug().Str("question", trimmed).Msg("Question text")

	result := g.handle(ctx, trimmed)

	g.logger.Info().
		Str("outcome", string(result.Outcome)).
		Int("score", result.Score).
		Dur("elapsed", time.Since(start)).
		Msg("Question handled")

	g.record(ctx, trimmed, result, time.Since(start))
	return result
}

func (g *QuestionGateway) handle(ctx context.Context, question string) *model.AskResult {
	if question == "" {
		return &model.AskResult{
			Outcome:  model.OutcomeBadQuestion,
			Guidance: model.EmptyQuestionGuidance(),
			Empty:    true,
		}
	}

	scoreCtx, cancel := g.callContext(ctx)
	verdict := g.scorer.Score(scoreCtx, question)
	cancel()

	if !verdict.Accept {
		return &model.AskResult{
			Outcome:  model.OutcomeBadQuestion,
			Guidance: verdict.Guidance,
			Message:  verdict.Message,
			Score:    verdict.Score,
		}
	}

	genCtx, cancel := g.callContext(ctx)
	defer cancel()

	answer, err := g.generator.Generate(genCtx, GenerateRequest{
		Model:       g.answerModel,
		Prompt:      question,
		MaxTokens:   g.answerCall.MaxTokens,
		Temperature: g.answerCall.Temperature,
	})
	if err != nil {
		g.logger.Error().Err(err).Str("model", g.answerModel).Msg("Generation call failed")
		return &model.AskResult{
			Outcome: model.OutcomeError,
			Answer:  fmt.Sprintf("⚠️ generation API error: %v", err),
			Score:   verdict.Score,
		}
	}

	return &model.AskResult{
		Outcome: model.OutcomeOK,
		Answer:  answer,
		Score:   verdict.Score,
	}
}

func (g *QuestionGateway) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *QuestionGateway) record(ctx context.Context, question string, result *model.AskResult, elapsed time.Duration) {
	if g.recorder == nil {
		return
	}

	event := &model.AskEvent{
		ID:             uuid.New().String(),
		Strategy:       g.scorer.Name(),
		Outcome:        result.Outcome,
		Empty:          result.Empty,
		Score:          result.Score,
		QuestionLength: len(question),
		LatencyMS:      elapsed.Milliseconds(),
		CreatedAt:      time.Now().UTC(),
	}
	if result.Guidance != nil && result.Outcome == model.OutcomeBadQuestion {
		event.Reason = result.Guidance.Reason
	} else if result.Message != "" {
		event.Reason = result.Message
	}

	// Recording outlives the request; it must not hold the response back
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	go func() {
		defer cancel()
		if err := g.recorder.Record(recordCtx, event); err != nil {
			g.logger.Warn().Err(err).Str("event_id", event.ID).Msg("Ask event not fully recorded")
		}
	}()
}
