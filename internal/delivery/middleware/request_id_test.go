package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "kinconnect/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	clientID := uuid.New().String()

	tests := []struct {
		name       string
		header     string
		wantReused bool
	}{
		{name: "reuses a valid client id", header: clientID, wantReused: true},
		{name: "replaces a non-uuid id", header: "abc; drop table"},
		{name: "generates when absent"},
	}

	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			err := m.Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})(c)

			require.NoError(t, err)
			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			_, parseErr := uuid.Parse(got)
			require.NoError(t, parseErr)
			assert.Equal(t, got, fromCtx)
			if tt.wantReused {
				assert.Equal(t, clientID, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}
