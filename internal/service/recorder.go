package service

import (
	"askgate/internal/model"
	"context"
	"errors"
	"fmt"

	"github.com/ternarybob/arbor"
)

// EventRecorder receives a diagnostic event for every completed ask
type EventRecorder interface {
	Record(ctx context.Context, event *model.AskEvent) error
}

type namedRecorder struct {
	name     string
	recorder EventRecorder
}

// MultiRecorder fans an event out to every configured sink. A failing sink
// does not stop the others.
type MultiRecorder struct {
	sinks  []namedRecorder
	logger arbor.ILogger
}

func NewMultiRecorder(logger arbor.ILogger) *MultiRecorder {
	return &MultiRecorder{logger: logger}
}

// Add registers a sink; nil sinks are ignored
func (m *MultiRecorder) Add(name string, r EventRecorder) {
	if r == nil {
		return
	}
	m.sinks = append(m.sinks, namedRecorder{name: name, recorder: r})
}

// Len returns the number of registered sinks
func (m *MultiRecorder) Len() int {
	return len(m.sinks)
}

func (m *MultiRecorder) Record(ctx context.Context, event *model.AskEvent) error {
	var errs []error
	for _, sink := range m.sinks {
		if err := sink.recorder.Record(ctx, event); err != nil {
			m.logger.Warn().Err(err).Str("sink", sink.name).Str("event_id", event.ID).Msg("Failed to record ask event")
			errs = append(errs, fmt.Errorf("%s: %w", sink.name, err))
		}
	}
	return errors.Join(errs...)
}
