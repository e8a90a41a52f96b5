package model

import "strings"

// Outcome is the wire status of an ask request
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeBadQuestion Outcome = "bad_question"
	OutcomeError       Outcome = "error"
)

// ResponseShape selects the JSON layout written for /ask
type ResponseShape string

const (
	ShapeRich   ResponseShape = "rich"   // {status, guidance?, answer?}
	ShapeSimple ResponseShape = "simple" // {answer}
)

// AskRequest is the request body for POST /ask
type AskRequest struct {
	Question string `json:"question"` // Absent is treated as empty
}

// AskResult is the outcome of one ask, before it is shaped for the wire
type AskResult struct {
	Outcome  Outcome
	Guidance *Guidance // Set for model-scored and empty rejections
	Message  string    // Fixed rejection text from the heuristic scorer
	Answer   string    // Generated answer, or error text when Outcome is error
	Score    int       // Heuristic category count, 0 for the model scorer
	Empty    bool
}

// RichResponse is the /ask body for model-scored deployments
type RichResponse struct {
	Status   Outcome   `json:"status"`
	Guidance *Guidance `json:"guidance,omitempty"`
	Answer   string    `json:"answer,omitempty"`
}

// SimpleResponse is the /ask body for heuristic deployments
type SimpleResponse struct {
	Answer string `json:"answer"`
}

// Rich converts the result into the rich wire shape
func (r *AskResult) Rich() RichResponse {
	resp := RichResponse{Status: r.Outcome, Answer: r.Answer}
	if r.Outcome == OutcomeBadQuestion {
		resp.Guidance = r.Guidance
		if resp.Guidance == nil {
			resp.Guidance = &Guidance{Status: GuidanceBad, Reason: r.Message, Tips: []string{}}
		}
	}
	return resp
}

// Simple collapses the result into a single answer string
func (r *AskResult) Simple() SimpleResponse {
	if r.Outcome != OutcomeBadQuestion {
		return SimpleResponse{Answer: r.Answer}
	}
	if r.Message != "" {
		return SimpleResponse{Answer: r.Message}
	}
	if r.Guidance == nil {
		return SimpleResponse{}
	}
	text := r.Guidance.Reason
	if len(r.Guidance.Tips) > 0 {
		text += ": " + strings.Join(r.Guidance.Tips, " ")
	}
	return SimpleResponse{Answer: text}
}

// Shape renders the result in the given wire shape
func (r *AskResult) Shape(shape ResponseShape) interface{} {
	if shape == ShapeSimple {
		return r.Simple()
	}
	return r.Rich()
}
