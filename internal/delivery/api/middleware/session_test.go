package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "kinconnect/internal/domain/errors"
	mockService "kinconnect/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware_Authenticate(t *testing.T) {
	sessionID := uuid.New()

	tests := []struct {
		name      string
		header    string
		setupMock func(*mockService.MockTokenService)
		wantErr   error
	}{
		{
			name:   "valid bearer token",
			header: "Bearer good-token",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ParseSessionToken("good-token").Return(sessionID, nil)
			},
		},
		{
			name:    "missing header",
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:    "not a bearer token",
			header:  "Basic abc",
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:   "expired token",
			header: "Bearer old-token",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ParseSessionToken("old-token").Return(uuid.Nil, domainerrors.ErrInvalidToken.WithDetails("token expired"))
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokens)
			}
			m := NewSessionMiddleware(tokens)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			var seen uuid.UUID
			called := false
			err := m.Authenticate(func(c echo.Context) error {
				called = true
				seen, _ = GetSessionID(c)

				return nil
			})(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, sessionID, seen)
		})
	}
}
