package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/formula-api/internal/config"
	"github.com/spec-kit/formula-api/internal/domain"
)

var (
	// ErrTokenExpired is returned for a well-signed token past its exp claim.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims describes JWT payload.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// TokenOption customizes a TokenManager.
type TokenOption func(*TokenManager)

// WithClock replaces time.Now for issuing and validating.
func WithClock(now func() time.Time) TokenOption {
	return func(tm *TokenManager) {
		if now != nil {
			tm.now = now
		}
	}
}

// NewTokenManager builds a new manager. A zero expiration interval issues tokens without exp.
func NewTokenManager(cfg config.JWTConfig, opts ...TokenOption) *TokenManager {
	tm := &TokenManager{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.ExpirationInterval(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(tm)
	}
	return tm
}

// GenerateToken signs a token carrying the driver's id and current roles.
func (tm *TokenManager) GenerateToken(driver *domain.Driver) (string, error) {
	now := tm.now()
	claims := &Claims{
		Roles: driver.Roles.Strings(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Subject:  strconv.FormatInt(driver.ID, 10),
			Issuer:   tm.issuer,
			Audience: jwt.ClaimStrings{tm.audience},
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if tm.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tm.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// VerifyToken checks signature, issuer, audience and expiry and returns the session it proves.
func (tm *TokenManager) VerifyToken(tokenStr string) (*Session, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tm.issuer),
		jwt.WithAudience(tm.audience),
		jwt.WithTimeFunc(tm.now),
	}
	// Tokens minted before expiry was configured carry no exp and must not outlive the change.
	if tm.ttl > 0 {
		opts = append(opts, jwt.WithExpirationRequired())
	}
	parser := jwt.NewParser(opts...)

	var claims Claims
	parsed, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	driverID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || driverID <= 0 {
		return nil, fmt.Errorf("%w: bad subject %q", ErrTokenInvalid, claims.Subject)
	}
	roles, err := domain.ParseRoleSet(claims.Roles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	return &Session{DriverID: driverID, Roles: roles}, nil
}
