package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type geminiRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature      *float64 `json:"temperature"`
		MaxOutputTokens  int      `json:"maxOutputTokens"`
		ResponseMIMEType string   `json:"responseMimeType"`
	} `json:"generationConfig"`
}

func newTestGeminiClient(t *testing.T, status int, body string, seen *geminiRequest) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"), r.URL.Path)
		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := newGeminiClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	require.NoError(t, err)
	return c
}

func TestGeminiClient_Generate(t *testing.T) {
	var seen geminiRequest
	c := newTestGeminiClient(t, http.StatusOK, `{
		"candidates": [{
			"content": {"role": "model", "parts": [{"text": "{\"status\":"}, {"text": "\"GOOD\"}"}]},
			"finishReason": "STOP"
		}]
	}`, &seen)

	out, err := c.Generate(context.Background(), GenerateRequest{
		Model:     "judge-model",
		Prompt:    "Is this a good question?",
		MaxTokens: 250,
		JSON:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"status":"GOOD"}`, out)

	require.Len(t, seen.Contents, 1)
	assert.Equal(t, "user", seen.Contents[0].Role)
	require.Len(t, seen.Contents[0].Parts, 1)
	assert.Equal(t, "Is this a good question?", seen.Contents[0].Parts[0].Text)
	assert.Equal(t, 250, seen.GenerationConfig.MaxOutputTokens)
	assert.Equal(t, "application/json", seen.GenerationConfig.ResponseMIMEType)
	require.NotNil(t, seen.GenerationConfig.Temperature)
	assert.Equal(t, 0.0, *seen.GenerationConfig.Temperature)
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	c := newTestGeminiClient(t, http.StatusOK, `{"candidates": []}`, nil)

	_, err := c.Generate(context.Background(), GenerateRequest{Model: "m", Prompt: "q", MaxTokens: 10})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiClient_UpstreamError(t *testing.T) {
	c := newTestGeminiClient(t, http.StatusInternalServerError,
		`{"error": {"code": 500, "message": "internal", "status": "INTERNAL"}}`, nil)

	_, err := c.Generate(context.Background(), GenerateRequest{Model: "m", Prompt: "q", MaxTokens: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini API call failed")
}
