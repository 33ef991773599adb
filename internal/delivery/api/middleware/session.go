package middleware

import (
	"strings"

	deliverycontext "kinconnect/internal/delivery/context"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware binds requests to the wizard session named by their bearer token.
type SessionMiddleware struct {
	tokenSvc service.TokenService
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokenSvc service.TokenService) *SessionMiddleware {
	return &SessionMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session token and stores its session id on the context.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken.WithDetails("must be a Bearer token")
		}

		sessionID, err := m.tokenSvc.ParseSessionToken(tokenString)
		if err != nil {
			return err
		}

		deliverycontext.SetSessionID(c, sessionID)

		return next(c)
	}
}

// GetSessionID returns the session bound by Authenticate.
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetSessionID(c)
}
