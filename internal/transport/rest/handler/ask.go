package handler

import (
	"askgate/internal/model"
	"askgate/internal/service"
	"askgate/internal/transport/rest/middleware"
	"encoding/json"
	"io"
	"net/http"

	"github.com/ternarybob/arbor"
)

// AskHandler handles the question gateway endpoint
type AskHandler struct {
	gateway *service.QuestionGateway
	logger  arbor.ILogger
}

// NewAskHandler creates a new ask handler
func NewAskHandler(gateway *service.QuestionGateway, logger arbor.ILogger) *AskHandler {
	return &AskHandler{gateway: gateway, logger: logger}
}

// Ask handles POST /ask. It always answers 200; failures travel in the body.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req model.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		// Invalid JSON or a non-string question is handled as an absent question
		h.logger.Debug().
			Str("request_id", middleware.GetRequestID(r.Context())).
			Err(err).
			Msg("Ask body not decodable, treating as empty")
		req = model.AskRequest{}
	}

	writeJSON(w, http.StatusOK, h.gateway.Respond(r.Context(), req.Question))
}
