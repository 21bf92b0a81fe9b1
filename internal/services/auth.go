package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByProviderID(ctx context.Context, provider models.Provider, providerID string) (*models.UserDB, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, u models.NewUser) (*models.UserDB, error)
	LinkProvider(ctx context.Context, userID uuid.UUID, provider models.Provider, providerID string, profileImage *string) (*models.UserDB, error)
}

// Tokener issues session tokens.
type Tokener interface {
	Issue(ctx context.Context, identity models.Identity) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	tokener Tokener
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokener Tokener) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		tokener: tokener,
	}
}

// Register creates a local account and returns a session token for it.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (string, *models.UserDB, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username, email and password are required", ErrMissingField)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", nil, fmt.Errorf("%w: email is not valid", ErrInvalidField)
	}
	if len(password) < minPasswordLength {
		return "", nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidField, minPasswordLength)
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username, "email", email)
		return "", nil, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}
	hash := string(hashed)

	user, err := svc.writer.Create(ctx, models.NewUser{
		Username:     username,
		Email:        email,
		PasswordHash: &hash,
		Provider:     models.ProviderLocal,
	})
	if errors.Is(err, dbctx.ErrUniqueViolation) {
		return "", nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	return svc.issue(ctx, user)
}

// Login authenticates a local account by email and password.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", ErrMissingField)
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return "", nil, ErrInvalidCredentials
	}
	if !user.HasPassword() {
		logger.Log.Infow("password login on social account", "user_id", user.UserID)
		return "", nil, ErrOAuthOnlyAccount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash.String), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "user_id", user.UserID)
		return "", nil, ErrInvalidCredentials
	}
	if user.IsSuspended {
		logger.Log.Infow("login on suspended account", "user_id", user.UserID)
		return "", nil, ErrAccountSuspended
	}

	return svc.issue(ctx, user)
}

// Me returns the stored record of the authenticated user.
func (svc *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (svc *AuthService) issue(ctx context.Context, user *models.UserDB) (string, *models.UserDB, error) {
	token, err := svc.tokener.Issue(ctx, user.Identity())
	if err != nil {
		logger.Log.Errorw("failed to issue token", "err", err)
		return "", nil, err
	}
	return token, user, nil
}
