package service

import (
	"askgate/internal/config"
	"askgate/internal/model"
	"context"
	"sync"

	"github.com/ternarybob/arbor"
)

// fakeGenerator replies from a queue and records every request
type fakeGenerator struct {
	mu       sync.Mutex
	replies  []string
	errs     []error
	requests []GenerateRequest
}

func (f *fakeGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := len(f.requests)
	f.requests = append(f.requests, req)

	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if err != nil {
		return "", err
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	return "", ErrEmptyResponse
}

func (f *fakeGenerator) calls() []GenerateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]GenerateRequest(nil), f.requests...)
}

// fakeRecorder hands recorded events to the test
type fakeRecorder struct {
	events chan *model.AskEvent
	err    error
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{events: make(chan *model.AskEvent, 8)}
}

func (f *fakeRecorder) Record(ctx context.Context, event *model.AskEvent) error {
	f.events <- event
	return f.err
}

func testAIConfig() *config.AIConfig {
	cfg := config.DefaultAIConfig()
	cfg.Models = config.Models{Guidance: "judge-model", Answer: "answer-model"}
	return cfg
}

func testLogger() arbor.ILogger {
	return arbor.NewLogger()
}
