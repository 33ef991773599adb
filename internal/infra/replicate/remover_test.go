package replicate

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"kinconnect/config"
	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"

	"github.com/replicate/replicate-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	succeeded = string(replicate.Succeeded)
	failed    = string(replicate.Failed)
	canceled  = string(replicate.Canceled)
)

func newTestRemover(t *testing.T, handler http.Handler, timeout time.Duration) *remover {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Replicate: &config.ReplicateConfig{
		APIToken:     "r8_token",
		BaseURL:      server.URL,
		ModelVersion: "rembg-v1",
		PollInterval: time.Millisecond,
		Timeout:      timeout,
	}}

	r, err := NewBackgroundRemover(cfg, server.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return r.(*remover)
}

// pollingServer answers the create call and then reports statuses in order.
func pollingServer(t *testing.T, statuses []string, output string) (http.Handler, *atomic.Int32) {
	var polls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /predictions", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Authorization"), "r8_token")

		var body struct {
			Version string            `json:"version"`
			Input   map[string]string `json:"input"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "rembg-v1", body.Version)
		assert.Equal(t, "data:image/png;base64,AAEC", body.Input["image"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"p1","status":"starting","urls":{"get":"http://`+r.Host+`/predictions/p1"}}`)
	})
	mux.HandleFunc("GET /predictions/p1", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Authorization"), "r8_token")

		n := int(polls.Add(1)) - 1
		status := statuses[min(n, len(statuses)-1)]
		resp := map[string]any{"id": "p1", "status": status}
		if status == succeeded {
			resp["output"] = json.RawMessage(output)
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	return mux, &polls
}

func TestRemoveBackground_PollsUntilSucceeded(t *testing.T) {
	handler, polls := pollingServer(t, []string{"starting", "processing", succeeded}, `"https://replicate.delivery/out.png"`)
	r := newTestRemover(t, handler, time.Second)

	out, err := r.RemoveBackground(context.Background(), "data:image/png;base64,AAEC")
	require.NoError(t, err)
	assert.Equal(t, entity.ImageRef("https://replicate.delivery/out.png"), out)
	assert.Equal(t, int32(3), polls.Load())
}

func TestRemoveBackground_ListOutput(t *testing.T) {
	handler, _ := pollingServer(t, []string{succeeded}, `["https://replicate.delivery/a.png","b"]`)
	r := newTestRemover(t, handler, time.Second)

	out, err := r.RemoveBackground(context.Background(), "data:image/png;base64,AAEC")
	require.NoError(t, err)
	assert.Equal(t, entity.ImageRef("https://replicate.delivery/a.png"), out)
}

func TestRemoveBackground_FailedAndCanceled(t *testing.T) {
	for _, status := range []string{failed, canceled} {
		t.Run(status, func(t *testing.T) {
			handler, _ := pollingServer(t, []string{"processing", status}, "")
			r := newTestRemover(t, handler, time.Second)

			_, err := r.RemoveBackground(context.Background(), "data:image/png;base64,AAEC")
			require.ErrorIs(t, err, domainerrors.ErrVendorUnavailable)
			assert.Contains(t, err.Error(), status)
		})
	}
}

func TestRemoveBackground_TimesOut(t *testing.T) {
	handler, _ := pollingServer(t, []string{"processing"}, "")
	r := newTestRemover(t, handler, 30*time.Millisecond)

	_, err := r.RemoveBackground(context.Background(), "data:image/png;base64,AAEC")
	require.ErrorIs(t, err, domainerrors.ErrVendorUnavailable)
	assert.Contains(t, err.Error(), "timeout")
}

func TestRemoveBackground_CreateRejected(t *testing.T) {
	r := newTestRemover(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"detail":"Invalid token"}`)
	}), time.Second)

	_, err := r.RemoveBackground(context.Background(), "data:image/png;base64,AAEC")
	require.ErrorIs(t, err, domainerrors.ErrVendorUnauthorized)
}

func TestRemoveBackground_NotConfigured(t *testing.T) {
	cfg := &config.Config{Replicate: &config.ReplicateConfig{APIToken: "t"}}
	r, err := NewBackgroundRemover(cfg, http.DefaultClient, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = r.RemoveBackground(context.Background(), "x")
	require.ErrorIs(t, err, domainerrors.ErrVendorNotConfigured)
}
