// Package session issues and verifies the signed visitor session cookie.
// Tokens are HS256 JWTs keyed by SESSION_SECRET.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the name of the session cookie
const CookieName = "smallie_session"

const issuer = "smallie"

// ErrInvalidToken is returned for tokens that fail signature or claim checks
var ErrInvalidToken = errors.New("invalid session token")

// Claims are the claims carried by a session token
type Claims struct {
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens
type Manager struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewManager creates a new Manager
func NewManager(secret string, maxAge time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	if maxAge <= 0 {
		return nil, fmt.Errorf("session max age must be positive, got %s", maxAge)
	}
	return &Manager{
		secret: []byte(secret),
		maxAge: maxAge,
		now:    time.Now,
	}, nil
}

// MaxAge returns how long issued tokens stay valid
func (m *Manager) MaxAge() time.Duration {
	return m.maxAge
}

// Issue creates a token for a new session and returns it with the session ID
func (m *Manager) Issue() (string, string, error) {
	now := m.now()
	id := uuid.NewString()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, id, nil
}

// Verify parses a token and returns its claims
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
