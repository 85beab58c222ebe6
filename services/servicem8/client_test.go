package servicem8

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallNotConfigured(t *testing.T) {
	c := New("", "http://localhost:1")
	_, err := c.Call(context.Background(), http.MethodGet, "/job.json", nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, c.Configured())
}

func TestCallSetsHeaders(t *testing.T) {
	var gotKey, gotAccept, gotContentType string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		writeJSON(w, map[string]string{"ok": "true"})
	}))

	_, err := c.Call(context.Background(), http.MethodGet, "/job.json", nil)
	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "application/json", gotAccept)
	assert.Empty(t, gotContentType)

	_, err = c.Call(context.Background(), http.MethodPost, "/job.json", nil)
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
}

func TestCallAPIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such record", http.StatusNotFound)
	}))

	_, err := c.Call(context.Background(), http.MethodGet, "/job.json", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, apiErr.Body, "no such record")
	assert.Equal(t, "/job.json", apiErr.Endpoint)
}

func TestCallUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New("test-key", url)
	_, err := c.Call(context.Background(), http.MethodGet, "/job.json", nil)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestCallTextResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("maintenance"))
	}))

	raw, err := c.Call(context.Background(), http.MethodGet, "/job.json", nil)
	require.NoError(t, err)

	var text string
	require.NoError(t, json.Unmarshal(raw, &text))
	assert.Equal(t, "maintenance", text)
}

func TestGetListToleratesTextFallback(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("not json"))
	}))

	list, err := getList[map[string]string](context.Background(), c, "/job.json")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFetchBinaryRejection(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))

	_, err := c.FetchBinary(context.Background(), c.BaseURL()+"/attachment/a1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	_, err = New("", "http://localhost:1").FetchBinary(context.Background(), "http://localhost:1/x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCallContextCancellation(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Call(ctx, http.MethodGet, "/job.json", nil)
	assert.ErrorIs(t, err, ErrUnreachable)
}
