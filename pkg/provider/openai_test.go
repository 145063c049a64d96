package provider_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securebank/securebank/pkg/config"
	"github.com/securebank/securebank/pkg/provider"
)

func testConfig(baseURL string) config.OpenAI {
	return config.OpenAI{
		ApiKey:      "sk-test",
		BaseURL:     baseURL,
		Model:       "gpt-3.5-turbo",
		MaxTokens:   500,
		Temperature: 0.7,
		HTTPTimeout: 2 * time.Second,
	}
}

func TestOpenAIComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req["model"])
		assert.EqualValues(t, 500, req["max_tokens"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Hello from the bank"}},
			},
		})
	}))
	defer srv.Close()

	client := provider.NewOpenAI(testConfig(srv.URL), slog.Default())
	reply, err := client.Complete(context.Background(), []provider.Message{
		{Role: provider.RoleUser, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello from the bank", reply)
}

func TestOpenAICompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := provider.NewOpenAI(testConfig(srv.URL), slog.Default())
	_, err := client.Complete(context.Background(), []provider.Message{
		{Role: provider.RoleUser, Content: "hi"},
	})
	assert.ErrorContains(t, err, "status 429")
}

func TestOpenAICompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := provider.NewOpenAI(testConfig(srv.URL), slog.Default())
	_, err := client.Complete(context.Background(), []provider.Message{
		{Role: provider.RoleUser, Content: "hi"},
	})
	assert.ErrorContains(t, err, "no choices")
}

type failingCompleter struct{ calls int }

func (f *failingCompleter) Complete(context.Context, []provider.Message) (string, error) {
	f.calls++
	return "", errors.New("upstream down")
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &failingCompleter{}
	breaker := provider.NewBreakerCompleter(inner, slog.Default())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := breaker.Complete(ctx, nil)
		require.Error(t, err)
	}
	calls := inner.calls

	// open circuit: the wrapped completer is no longer invoked
	_, err := breaker.Complete(ctx, nil)
	require.Error(t, err)
	assert.Equal(t, calls, inner.calls)
}
