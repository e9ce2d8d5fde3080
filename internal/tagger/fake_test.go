package tagger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatRequest is the subset of a chat completion request the tests inspect.
type chatRequest struct {
	Model       string            `json:"model"`
	MaxTokens   int               `json:"max_tokens"`
	Temperature float64           `json:"temperature"`
	Messages    []json.RawMessage `json:"messages"`
}

// prompt returns the text of the first message, whether the content was
// sent as a string or as content parts.
func (r chatRequest) prompt(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, r.Messages)

	var msg struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	}
	require.NoError(t, json.Unmarshal(r.Messages[0], &msg))
	assert.Equal(t, "user", msg.Role)

	var text string
	if err := json.Unmarshal(msg.Content, &text); err == nil {
		return text
	}
	var parts []struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(msg.Content, &parts))
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

type fakeOpenAI struct {
	*httptest.Server
	calls    atomic.Int32
	requests chan chatRequest

	// noChoices makes every completion come back with an empty choices list.
	noChoices atomic.Bool
}

// newFakeOpenAI serves chat completions. answer returns the reply content
// for a prompt, or a non-200 status to simulate an API error.
func newFakeOpenAI(t *testing.T, answer func(prompt string) (string, int)) *fakeOpenAI {
	t.Helper()

	f := &fakeOpenAI{requests: make(chan chatRequest, 100)}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)

		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		select {
		case f.requests <- req:
		default:
		}

		content, status := answer(req.prompt(t))
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "boom", "type": "server_error"},
			})
			return
		}

		choices := []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}}
		if f.noChoices.Load() {
			choices = []map[string]any{}
		}

		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-123",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   req.Model,
			"choices": choices,
		})
	}))
	t.Cleanup(f.Close)

	return f
}

func (f *fakeOpenAI) client() *Client {
	return NewClient(ClientConfig{
		APIKey:      "sk-test",
		BaseURL:     f.URL + "/v1/",
		Temperature: 0.7,
	})
}
