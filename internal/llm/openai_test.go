package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuralverse/thirukural-api/internal/config"
)

const mockCompletion = `{
	"id": "chatcmpl-test",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-5-nano",
	"choices": [
		{
			"index": 0,
			"message": {"role": "assistant", "content": "A short explanation of the couplet."},
			"finish_reason": "stop"
		}
	],
	"usage": {"prompt_tokens": 42, "completion_tokens": 17, "total_tokens": 59}
}`

func testConfig(endpoint string) *config.OpenAIConfig {
	return &config.OpenAIConfig{
		Provider:    "openai",
		APIKey:      "sk-test",
		APIEndpoint: endpoint,
		Model:       "gpt-5-nano",
		Timeout:     5 * time.Second,
	}
}

func TestGenerate(t *testing.T) {
	var gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(mockCompletion))
	}))
	defer ts.Close()

	gen, err := NewOpenAI(testConfig(ts.URL))
	require.NoError(t, err)

	resp, err := gen.Generate(context.Background(), "system prompt", "explain kural #1")
	require.NoError(t, err)

	assert.Equal(t, "A short explanation of the couplet.", resp.Content)
	assert.Equal(t, "gpt-5-nano", resp.Model)
	assert.Equal(t, int64(59), resp.Usage.TotalTokens)

	assert.Contains(t, gotBody, `"gpt-5-nano"`)
	assert.Contains(t, gotBody, "explain kural #1")
	assert.Contains(t, gotBody, "system prompt")
}

func TestGenerateOptionsOverrideDefaults(t *testing.T) {
	var gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(mockCompletion))
	}))
	defer ts.Close()

	gen, err := NewOpenAI(testConfig(ts.URL))
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "s", "u", WithModel("gpt-4o-mini"), WithMaxTokens(64))
	require.NoError(t, err)

	assert.Contains(t, gotBody, `"gpt-4o-mini"`)
	assert.Contains(t, gotBody, `"max_tokens":64`)
}

func TestGenerateFailureHasNoRetries(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error": {"message": "boom"}}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	gen, err := NewOpenAI(testConfig(ts.URL))
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Equal(t, 1, calls, "first failure must surface without retrying")
}

func TestGenerateNoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-test","object":"chat.completion","created":1,"model":"gpt-5-nano","choices":[],"usage":{"prompt_tokens":1,"completion_tokens":0,"total_tokens":1}}`))
	}))
	defer ts.Close()

	gen, err := NewOpenAI(testConfig(ts.URL))
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "s", "u")
	assert.Error(t, err)
}
