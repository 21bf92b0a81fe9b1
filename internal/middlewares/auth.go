package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/gearted/gearted-backend/internal/jwt"
	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/google/uuid"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, bool)
	Verify(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter loads the stored user behind a verified token.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

type identityKey struct{}

// WithIdentity attaches identity to ctx.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity attached by the auth middlewares.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(models.Identity)
	return identity, ok
}

const (
	reasonLookupFailed = "user lookup failed"
	reasonSuspended    = "account suspended"
)

// resolveIdentity returns the identity of the request's caller. reason is
// non-empty when no identity could be established.
func resolveIdentity(ctx context.Context, tokener Tokener, users UserGetter, r *http.Request) (models.Identity, string, error) {
	tokenString, ok := tokener.GetTokenFromRequest(ctx, r)
	if !ok {
		return models.Identity{}, "missing token", nil
	}

	claims, err := tokener.Verify(ctx, tokenString)
	if err != nil {
		return models.Identity{}, "invalid token", err
	}

	user, err := users.GetByID(ctx, claims.UserID)
	if err != nil {
		return models.Identity{}, reasonLookupFailed, err
	}
	if user == nil {
		return models.Identity{}, "user no longer exists", nil
	}
	if user.IsSuspended {
		return models.Identity{}, reasonSuspended, nil
	}

	return user.Identity(), "", nil
}

// AuthMiddleware returns a middleware that rejects requests without a valid
// token for an existing, unsuspended user.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identity, reason, err := resolveIdentity(ctx, tokener, users, r)
			if reason == reasonLookupFailed {
				logger.Log.Errorw("authorization failed", "reason", reason, "err", err, "uri", r.RequestURI)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if reason == reasonSuspended {
				logger.Log.Infow("authorization failed", "reason", reason, "uri", r.RequestURI)
				writeError(w, http.StatusForbidden, "Account suspended")
				return
			}
			if reason != "" {
				logger.Log.Infow("authorization failed", "reason", reason, "err", err, "uri", r.RequestURI)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, identity)))
		})
	}
}

// OptionalAuthMiddleware attaches an identity when one can be established and
// otherwise passes the request through anonymously.
func OptionalAuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identity, reason, err := resolveIdentity(ctx, tokener, users, r)
			if reason != "" {
				if err != nil {
					logger.Log.Infow("optional authorization ignored", "reason", reason, "err", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, identity)))
		})
	}
}
