package handlers

//go:generate mockgen -source=me.go -destination=me_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/gearted/gearted-backend/internal/middlewares"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/google/uuid"
)

// ProfileGetter loads the current user's profile.
type ProfileGetter interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserResponse wraps a single user.
// swagger:model UserResponse
type UserResponse struct {
	User models.UserView `json:"user"`
}

// NewMeHandler returns an HTTP handler for the current user's profile.
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UserResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /auth/me [get]
func NewMeHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.Me(r.Context(), identity.UserID)
		if err != nil {
			writeServiceError(w, err, "me")
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{User: user.View()})
	}
}
