package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/wordlist/internal/entity"
)

func TestAnthropicClientComplete(t *testing.T) {
	var got struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		System      []struct {
			Text string `json:"text"`
		} `json:"system"`
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-ant", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude",
			"content":[{"type":"text","text":"sure: {\"definition_zh\":\"手表\",\"pos\":\"n.\"}"}],
			"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":5}}`))
	}))
	defer srv.Close()

	req := testRequest()
	req.Model = "claude"
	reply, err := NewAnthropicClient("sk-ant", srv.URL).Complete(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, `sure: {"definition_zh":"手表","pos":"n."}`, reply)
	assert.Equal(t, "claude", got.Model)
	assert.InDelta(t, 0.5, got.Temperature, 1e-6)
	require.Len(t, got.System, 1)
	assert.Equal(t, "be a dictionary", got.System[0].Text)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
}

func TestAnthropicClientRateLimitedWithoutRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer srv.Close()

	_, err := NewAnthropicClient("sk-ant", srv.URL).Complete(context.Background(), testRequest())

	var ee *entity.EnrichmentError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, entity.RateLimited, ee.Kind)
	assert.Equal(t, http.StatusTooManyRequests, ee.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAnthropicClientErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		kind   entity.EnrichmentErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, `{"type":"error","error":{"type":"authentication_error","message":"bad key"}}`, entity.BadStatus},
		{"overloaded", http.StatusInternalServerError, `{"type":"error","error":{"type":"api_error","message":"boom"}}`, entity.BadStatus},
		{"empty content", http.StatusOK, `{"id":"msg_1","type":"message","role":"assistant","model":"claude","content":[],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`, entity.MalformedReply},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(c.status)
				_, _ = w.Write([]byte(c.body))
			}))
			defer srv.Close()

			_, err := NewAnthropicClient("sk-ant", srv.URL).Complete(context.Background(), testRequest())

			var ee *entity.EnrichmentError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, c.kind, ee.Kind)
			if c.status != http.StatusOK {
				assert.Equal(t, c.status, ee.StatusCode)
			}
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestAnthropicClientConnectivity(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := NewAnthropicClient("sk-ant", base).Complete(context.Background(), testRequest())
	assert.True(t, entity.IsEnrichmentKind(err, entity.ConnectivityError), "got %v", err)
}
