package utils

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	calls  int
	text   string
	err    error
	prompt string
	params GenerationParams
}

func (f *fakeBackend) Complete(_ context.Context, prompt string, params GenerationParams) (string, error) {
	f.calls++
	f.prompt = prompt
	f.params = params
	return f.text, f.err
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestGenerateItineraryMissingKeyFailsBeforeCall(t *testing.T) {
	backend := &fakeBackend{text: "should not be used"}
	client := NewGenerationClient("gemini", "", backend, DefaultGenerationParams, quietLogger())

	text, err := client.GenerateItinerary(context.Background(), "plan a trip")

	assert.Empty(t, text)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, 0, backend.calls)
}

func TestGenerateItineraryWhitespaceKeyCountsAsMissing(t *testing.T) {
	backend := &fakeBackend{}
	client := NewGenerationClient("gemini", "   ", backend, DefaultGenerationParams, quietLogger())

	_, err := client.GenerateItinerary(context.Background(), "plan")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, 0, backend.calls)
}

func TestGenerateItineraryEmptyResponseReturnsFallback(t *testing.T) {
	for _, body := range []string{"", "  \n\t"} {
		backend := &fakeBackend{text: body}
		client := NewGenerationClient("gemini", "key", backend, DefaultGenerationParams, quietLogger())

		text, err := client.GenerateItinerary(context.Background(), "plan")
		require.NoError(t, err)
		assert.Equal(t, FallbackItineraryText, text)
		assert.Equal(t, 1, backend.calls)
	}
}

func TestGenerateItineraryProviderErrorIsGeneric(t *testing.T) {
	backend := &fakeBackend{err: errors.New("503 upstream overloaded")}
	client := NewGenerationClient("gemini", "key", backend, DefaultGenerationParams, quietLogger())

	text, err := client.GenerateItinerary(context.Background(), "plan")

	assert.Empty(t, text)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.NotContains(t, err.Error(), "503")
	assert.Equal(t, 1, backend.calls, "no retries")
}

func TestGenerateItineraryPassesPromptAndParams(t *testing.T) {
	backend := &fakeBackend{text: "# Rwanda in 7 days"}
	client := NewGenerationClient("gemini", "key", backend, DefaultGenerationParams, quietLogger())

	text, err := client.GenerateItinerary(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "# Rwanda in 7 days", text)
	assert.Equal(t, "the prompt", backend.prompt)
	assert.Equal(t, float32(0.7), backend.params.Temperature)
	assert.Equal(t, int32(40), backend.params.TopK)
	assert.Equal(t, float32(0.95), backend.params.TopP)
}

func TestGenerateItineraryNilBackendIsMissingConfig(t *testing.T) {
	client := NewGenerationClient("openai", "key", nil, DefaultGenerationParams, quietLogger())
	_, err := client.GenerateItinerary(context.Background(), "plan")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestOpenAIBackendComplete(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"message":{"role":"assistant","content":"# Gorillas and Lakes"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	backend := NewOpenAIBackend("test-key", "gpt-4o-mini", srv.URL+"/v1")
	text, err := backend.Complete(context.Background(), "plan rwanda", DefaultGenerationParams)

	require.NoError(t, err)
	assert.Equal(t, "# Gorillas and Lakes", text)
	assert.Equal(t, "gpt-4o-mini", got["model"])
	assert.InDelta(t, 0.7, got["temperature"], 0.0001)
	assert.InDelta(t, 0.95, got["top_p"], 0.0001)
}

func TestOpenAIBackendThroughClientMapsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer srv.Close()

	backend := NewOpenAIBackend("test-key", "", srv.URL+"/v1")
	client := NewGenerationClient("openai", "test-key", backend, DefaultGenerationParams, quietLogger())

	_, err := client.GenerateItinerary(context.Background(), "plan")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestOpenAIBackendEmptyChoicesFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[]}`))
	}))
	defer srv.Close()

	backend := NewOpenAIBackend("test-key", "", srv.URL+"/v1")
	client := NewGenerationClient("openai", "test-key", backend, DefaultGenerationParams, quietLogger())

	text, err := client.GenerateItinerary(context.Background(), "plan")
	require.NoError(t, err)
	assert.Equal(t, FallbackItineraryText, text)
}
