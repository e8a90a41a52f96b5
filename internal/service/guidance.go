package service

import (
	"askgate/internal/model"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMalformedGuidance = errors.New("malformed guidance reply")

// ParseGuidance strictly decodes a judge reply of the form
// {"status": "GOOD"|"BAD", "reason": "...", "tips": ["...", "..."]}.
// A single surrounding markdown code fence is tolerated, and the status is
// matched case-insensitively ("good" reads as GOOD). Unknown fields, trailing
// data, an unknown status or more than two tips are rejected.
func ParseGuidance(text string) (*model.Guidance, error) {
	body := stripCodeFence(strings.TrimSpace(text))
	if body == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMalformedGuidance)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	dec.DisallowUnknownFields()

	var g model.Guidance
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGuidance, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after object", ErrMalformedGuidance)
	}

	g.Status = model.GuidanceStatus(strings.ToUpper(strings.TrimSpace(string(g.Status))))
	switch g.Status {
	case model.GuidanceGood, model.GuidanceBad:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrMalformedGuidance, g.Status)
	}
	if len(g.Tips) > model.MaxGuidanceTips {
		return nil, fmt.Errorf("%w: %d tips", ErrMalformedGuidance, len(g.Tips))
	}
	if g.Tips == nil {
		g.Tips = []string{}
	}
	return &g, nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	inner := strings.TrimSuffix(s[3:], "```")
	// Drop an optional language tag on the opening fence line
	if nl := strings.IndexByte(inner, '\n'); nl >= 0 {
		tag := strings.TrimSpace(inner[:nl])
		if tag == "" || tag == "json" {
			inner = inner[nl+1:]
		}
	}
	return strings.TrimSpace(inner)
}
