package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramNotifier_Send(t *testing.T) {
	var got map[string]string
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("token123", "42", "")
	tn.BaseURL = srv.URL

	require.NoError(t, tn.Send(context.Background(), "<b>hi</b>"))
	assert.Equal(t, "/bottoken123/sendMessage", path)
	assert.Equal(t, "42", got["chat_id"])
	assert.Equal(t, "<b>hi</b>", got["text"])
	assert.Equal(t, "HTML", got["parse_mode"])
}

func TestTelegramNotifier_SendWithRetryGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("token", "42", "")
	tn.BaseURL = srv.URL

	err := tn.SendWithRetry(context.Background(), "x", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestTelegramNotifier_SendWithRetryHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("token", "42", "")
	tn.BaseURL = srv.URL

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := tn.SendWithRetry(ctx, "x", 3)
	assert.ErrorIs(t, err, context.Canceled)
}
