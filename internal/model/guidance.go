package model

// GuidanceStatus is the judge's verdict on a question
type GuidanceStatus string

const (
	GuidanceGood GuidanceStatus = "GOOD"
	GuidanceBad  GuidanceStatus = "BAD"
)

// MaxGuidanceTips is the most tips a judge reply may carry
const MaxGuidanceTips = 2

// Guidance is a structured verdict about a question's quality
type Guidance struct {
	Status  GuidanceStatus `json:"status" bson:"status"`
	Reason  string         `json:"reason" bson:"reason"`
	Tips    []string       `json:"tips" bson:"tips"`                           // 0-2 entries, ordered
	Command string         `json:"command,omitempty" bson:"command,omitempty"` // Optional suggested rewrite, click-to-insert in the chat UI
}

// IsGood reports whether the question was accepted
func (g *Guidance) IsGood() bool {
	return g.Status == GuidanceGood
}

// EmptyQuestionGuidance is returned for blank input without calling any model
func EmptyQuestionGuidance() *Guidance {
	return &Guidance{
		Status: GuidanceBad,
		Reason: "empty question",
		Tips:   []string{"Type a specific question about a topic you want to learn."},
	}
}

// FallbackGuidance is returned whenever the judge reply cannot be used
func FallbackGuidance() *Guidance {
	return &Guidance{
		Status: GuidanceBad,
		Reason: "could not parse guidance",
		Tips:   []string{"Make your question specific and actionable."},
	}
}
