package handler

import (
	"askgate/internal/cache"
	"askgate/internal/repository"
	"net/http"
	"strconv"

	"github.com/ternarybob/arbor"
)

// StatsHandler exposes ask counters and the recent event log
type StatsHandler struct {
	stats  cache.StatsCache
	events repository.AskEventRepo
	logger arbor.ILogger
}

// NewStatsHandler creates a stats handler. Either store may be nil when not configured.
func NewStatsHandler(stats cache.StatsCache, events repository.AskEventRepo, logger arbor.ILogger) *StatsHandler {
	return &StatsHandler{stats: stats, events: events, logger: logger}
}

// Stats handles GET /stats
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.stats == nil {
		writeJSON(w, http.StatusOK, disabled)
		return
	}

	stats, err := h.stats.Get(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read ask stats")
		writeError(w, http.StatusServiceUnavailable, "stats unavailable")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Events handles GET /events?limit=N
func (h *StatsHandler) Events(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		writeJSON(w, http.StatusOK, disabled)
		return
	}

	limit := repository.DefaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	events, err := h.events.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list ask events")
		writeError(w, http.StatusServiceUnavailable, "events unavailable")
		return
	}
	writeJSON(w, http.StatusOK, events)
}
