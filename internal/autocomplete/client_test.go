package autocomplete

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCompletePostsRequest(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/autocomplete" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"options":[{"completionText":"total profit in the last month","sqlQuery":"SELECT SUM(profit) FROM orders"}]}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL + "/"})
	require.NoError(t, err)

	opts, err := client.Complete(context.Background(), Request{UserInput: "total profit in the last", SchemaDescription: "Table: orders"})
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "SELECT SUM(profit) FROM orders", opts[0].SQLQuery)

	assert.Equal(t, "total profit in the last", got["userInput"])
	assert.Equal(t, "Table: orders", got["schemaDescription"])
	assert.Equal(t, []any{}, got["conversationHistory"])
}

func TestClientCompleteNon2xxIsBackendError(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"detail":"boom"}`))
		}))

		client, err := NewClient(Config{BaseURL: server.URL})
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), NewRequest("q", "s"))
		server.Close()

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrBackend), "status %d", status)
		assert.False(t, errors.Is(err, ErrUnreachable))

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, status, statusErr.StatusCode)
	}
}

func TestClientCompleteTransportFailureIsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClient(Config{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), NewRequest("q", "s"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreachable))
	assert.False(t, errors.Is(err, ErrBackend))
}

func TestClientCompleteMalformedBodyIsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), NewRequest("q", "s"))
	assert.True(t, errors.Is(err, ErrUnreachable))
}

func TestNewClientDefaultsAndValidation(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL+"/autocomplete", client.Endpoint())

	_, err = NewClient(Config{BaseURL: "localhost:8000"})
	assert.Error(t, err)
}
