package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gearted/gearted-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Errors returned by Verify
var (
	ErrExpiredToken   = errors.New("token expired")
	ErrMalformedToken = errors.New("malformed token")
	ErrEmptySecret    = errors.New("signing secret is empty")
)

// Claims is the payload of a session token.
type Claims struct {
	UserID   uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Identity returns the identity claim carried by the token.
func (c *Claims) Identity() models.Identity {
	return models.Identity{
		UserID:   c.UserID,
		Email:    c.Email,
		Username: c.Username,
		IsAdmin:  c.IsAdmin,
	}
}

// JWT issues and verifies HS256 session tokens.
type JWT struct {
	secretKey string
	exp       time.Duration
	issuer    string
	audience  string
	now       func() time.Time
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the HMAC signing secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) { j.secretKey = secret }
}

// WithExpiration sets the default token lifetime.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.exp = exp }
}

// WithIssuer sets the iss claim written and required.
func WithIssuer(iss string) Option {
	return func(j *JWT) { j.issuer = iss }
}

// WithAudience sets the aud claim written and required.
func WithAudience(aud string) Option {
	return func(j *JWT) { j.audience = aud }
}

// WithClock replaces time.Now, used by tests.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) { j.now = now }
}

// New creates a JWT with 24h tokens issued by gearted-api for gearted-app.
func New(opts ...Option) *JWT {
	j := &JWT{
		exp:      24 * time.Hour,
		issuer:   "gearted-api",
		audience: "gearted-app",
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Issue signs a token for identity with the default lifetime.
func (j *JWT) Issue(ctx context.Context, identity models.Identity) (string, error) {
	return j.IssueWithTTL(ctx, identity, j.exp)
}

// IssueWithTTL signs a token for identity that expires after ttl.
func (j *JWT) IssueWithTTL(ctx context.Context, identity models.Identity, ttl time.Duration) (string, error) {
	if j.secretKey == "" {
		return "", ErrEmptySecret
	}

	now := j.now()
	claims := Claims{
		UserID:   identity.UserID,
		Email:    identity.Email,
		Username: identity.Username,
		IsAdmin:  identity.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, issuer, audience and expiry and returns the claims.
func (j *JWT) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(j.audience),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)

	claims := &Claims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing user id", ErrMalformedToken)
	}

	return claims, nil
}

// ExtractFromHeader returns the token of a "Bearer <token>" header value.
// Any other shape is reported as absent.
func ExtractFromHeader(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, bool) {
	return ExtractFromHeader(r.Header.Get("Authorization"))
}
