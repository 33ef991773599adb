// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"kinconnect/config"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/service"
	"kinconnect/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionClaim     = "sid"
	sessionTokenType = "session"
	defaultTokenTTL  = 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session token secret must be provided")
	}

	ttl := cfg.Session.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret: cfg.Session.Secret,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// IssueSessionToken signs a token binding the bearer to one wizard session.
func (s *jwtService) IssueSessionToken(sessionID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		sessionClaim: sessionID.String(),    // Wizard session the bearer owns
		"iat":        now.Unix(),            // Issued At
		"exp":        now.Add(s.ttl).Unix(), // Expiration Time
		"type":       sessionTokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// ParseSessionToken validates the signature, expiry and type and returns the session id.
func (s *jwtService) ParseSessionToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != sessionTokenType {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	raw, _ := claims[sessionClaim].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return id, nil
}
