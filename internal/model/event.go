package model

import "time"

// AskEvent is a diagnostic record of one completed ask. It never carries the answer text.
type AskEvent struct {
	ID             string    `json:"id" bson:"_id"`
	Strategy       string    `json:"strategy" bson:"strategy"`
	Outcome        Outcome   `json:"outcome" bson:"outcome"`
	Empty          bool      `json:"empty" bson:"empty"`
	Score          int       `json:"score" bson:"score"`
	Reason         string    `json:"reason,omitempty" bson:"reason,omitempty"` // Guidance reason for rejections
	QuestionLength int       `json:"questionLength" bson:"questionLength"`
	LatencyMS      int64     `json:"latencyMs" bson:"latencyMs"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// AskStats are running counters of ask outcomes
type AskStats struct {
	Total       int64 `json:"total"`
	OK          int64 `json:"ok"`
	BadQuestion int64 `json:"bad_question"`
	Error       int64 `json:"error"`
	Empty       int64 `json:"empty"`
}
