// Package auth replaces the original ambient auth store with an
// explicitly passed session handle: created on sign-in, carried on the
// request context, torn down on sign-out. No package-level token exists.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"frontdesk/shared/timezone"
)

type sessionContextKey struct{}

// Session is the handle for one operator's signed-in state. The token is
// minted and verified by the upstream gateway; the back office only
// parses its claims for display and expiry checks, it never validates
// the signature itself.
type Session struct {
	token     string
	subject   string
	role      string
	expiresAt time.Time
}

// NewSession wraps a gateway-issued bearer token. Claims that cannot be
// parsed leave the corresponding fields empty; the gateway remains the
// authority on whether the token is acceptable.
func NewSession(token string) *Session {
	session := &Session{token: token}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return session
	}

	if subject, err := parsed.Claims.GetSubject(); err == nil {
		session.subject = subject
	}

	if expiry, err := parsed.Claims.GetExpirationTime(); err == nil && expiry != nil {
		session.expiresAt = expiry.Time
	}

	if claims, ok := parsed.Claims.(jwt.MapClaims); ok {
		if role, ok := claims["role"].(string); ok {
			session.role = role
		}
	}

	return session
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) Subject() string {
	return s.subject
}

func (s *Session) Role() string {
	return s.role
}

// Expired reports whether the token's exp claim has passed. Tokens
// without an exp claim never expire locally.
func (s *Session) Expired() bool {
	if s.expiresAt.IsZero() {
		return false
	}

	return timezone.Now().After(s.expiresAt)
}

// Close tears the handle down. The token is zeroed so a retained Session
// cannot authenticate further requests.
func (s *Session) Close() {
	s.token = ""
	s.subject = ""
	s.role = ""
	s.expiresAt = time.Time{}
}

// WithSession attaches the session handle to the context for the
// duration of one request.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext retrieves the session handle, if any. A closed
// session is treated as absent.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*Session)
	if !ok || session == nil || session.token == "" {
		return nil, false
	}

	return session, true
}
