package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/gearted/gearted-backend/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (string, *models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse carries a session token and the signed-in user.
// swagger:model AuthResponse
type AuthResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string          `json:"token"`
	User  models.UserView `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a local account with a hashed password and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(r, &req) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, user, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err, "register")
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: user.View()})
	}
}
