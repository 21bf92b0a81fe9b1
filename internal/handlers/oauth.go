package handlers

//go:generate mockgen -source=oauth.go -destination=oauth_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/gearted/gearted-backend/internal/models"
	"github.com/go-chi/chi/v5"
)

// ProviderLoginer signs users in with a provider token.
type ProviderLoginer interface {
	LoginWithProvider(ctx context.Context, provider models.Provider, providerToken string) (string, *models.UserDB, error)
}

// OAuthRequest carries the token obtained from the provider's SDK.
// swagger:model OAuthRequest
type OAuthRequest struct {
	// Provider ID token (Google) or access token (Facebook)
	// required: true
	Token string `json:"token"`
}

// NewOAuthHandler returns an HTTP handler for social login.
// @Summary Social login
// @Description Verifies the provider token with the provider and signs in, links or creates the matching user.
// @Tags auth
// @Accept json
// @Produce json
// @Param provider path string true "google or facebook"
// @Param oauthRequest body handlers.OAuthRequest true "Provider token"
// @Success 200 {object} handlers.AuthResponse
// @Failure 400 {object} handlers.ErrorResponse "Unsupported provider or missing token"
// @Failure 401 {object} handlers.ErrorResponse "Provider rejected the token"
// @Failure 504 {object} handlers.ErrorResponse "Provider timed out"
// @Router /auth/oauth/{provider} [post]
func NewOAuthHandler(svc ProviderLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OAuthRequest
		if !decodeJSON(r, &req) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		provider := models.Provider(chi.URLParam(r, "provider"))
		token, user, err := svc.LoginWithProvider(r.Context(), provider, req.Token)
		if err != nil {
			writeServiceError(w, err, "oauth_login")
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: user.View()})
	}
}
