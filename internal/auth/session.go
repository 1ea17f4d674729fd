package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/formula-api/internal/domain"
	apperrors "github.com/spec-kit/formula-api/pkg/util"
)

const bearerPrefix = "Bearer "

// Session is the verified identity behind a request. Roles are the ones captured
// when the token was issued; they are not re-read from the store.
type Session struct {
	DriverID int64
	Roles    domain.RoleSet
}

// HasRole reports whether the session holds role.
func (s *Session) HasRole(role domain.Role) bool {
	return s != nil && s.Roles.Has(role)
}

// TokenVerifier verifies bearer tokens.
type TokenVerifier interface {
	VerifyToken(token string) (*Session, error)
}

// SessionResolver turns an Authorization header into a Session.
type SessionResolver struct {
	tokens TokenVerifier
}

// NewSessionResolver constructs a resolver.
func NewSessionResolver(tokens TokenVerifier) *SessionResolver {
	return &SessionResolver{tokens: tokens}
}

// Resolve verifies the bearer token in header. Every failure is Unauthorized.
func (r *SessionResolver) Resolve(header string) (*Session, error) {
	if header == "" {
		return nil, apperrors.NewUnauthorized("you need to be signed in")
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, apperrors.NewUnauthorized("invalid authorization header, expected Bearer scheme")
	}

	session, err := r.tokens.VerifyToken(strings.TrimPrefix(header, bearerPrefix))
	switch {
	case err == nil:
		return session, nil
	case errors.Is(err, ErrTokenExpired):
		return nil, apperrors.NewUnauthorized("token expired")
	case errors.Is(err, ErrTokenInvalid):
		// err reads "invalid token: <detail>"
		return nil, apperrors.NewUnauthorized(err.Error())
	default:
		return nil, apperrors.NewUnauthorized(err.Error())
	}
}

type sessionCtxKey struct{}

// WithSession stores the session in ctx.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

// SessionFromContext retrieves the authenticated session.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return session, ok && session != nil
}
