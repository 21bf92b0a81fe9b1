package services

//go:generate mockgen -source=oauth.go -destination=oauth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/google/uuid"
)

const (
	maxUsernameLength = 36
	usernameAttempts  = 5
)

var usernameDisallowed = regexp.MustCompile(`[^a-z0-9_]+`)

// ProviderVerifier checks a provider token with the provider itself.
// A rejected token yields a nil profile and a nil error.
type ProviderVerifier interface {
	Verify(ctx context.Context, token string) (*models.ExternalProfile, error)
}

// OAuthService signs users in with external provider tokens.
type OAuthService struct {
	reader    UserReader
	writer    UserWriter
	tokener   Tokener
	verifiers map[models.Provider]ProviderVerifier
	timeout   time.Duration
}

// NewOAuthService creates a service. Providers missing from verifiers are unsupported.
func NewOAuthService(
	reader UserReader,
	writer UserWriter,
	tokener Tokener,
	verifiers map[models.Provider]ProviderVerifier,
	timeout time.Duration,
) *OAuthService {
	return &OAuthService{
		reader:    reader,
		writer:    writer,
		tokener:   tokener,
		verifiers: verifiers,
		timeout:   timeout,
	}
}

// LoginWithProvider verifies providerToken and returns a session for the
// matching, linked or newly created user.
func (svc *OAuthService) LoginWithProvider(ctx context.Context, provider models.Provider, providerToken string) (string, *models.UserDB, error) {
	verifier, ok := svc.verifiers[provider]
	if !ok || verifier == nil {
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
	if strings.TrimSpace(providerToken) == "" {
		return "", nil, fmt.Errorf("%w: token is required", ErrMissingField)
	}

	profile, err := svc.verify(ctx, verifier, providerToken)
	if err != nil {
		return "", nil, err
	}
	profile.Provider = provider

	user, err := svc.resolve(ctx, profile)
	if err != nil {
		return "", nil, err
	}
	if user.IsSuspended {
		logger.Log.Infow("social login on suspended account", "user_id", user.UserID)
		return "", nil, ErrAccountSuspended
	}

	token, err := svc.tokener.Issue(ctx, user.Identity())
	if err != nil {
		logger.Log.Errorw("failed to issue token", "err", err)
		return "", nil, err
	}
	return token, user, nil
}

func (svc *OAuthService) verify(ctx context.Context, verifier ProviderVerifier, token string) (*models.ExternalProfile, error) {
	callCtx, cancel := context.WithCancel(ctx)
	if svc.timeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, svc.timeout)
	}
	defer cancel()

	profile, err := verifier.Verify(callCtx, token)
	if err != nil {
		if isTimeout(err) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			logger.Log.Warnw("provider verification timed out", "timeout", svc.timeout, "error", err)
			return nil, ErrUpstreamTimeout
		}
		return nil, fmt.Errorf("verify provider token: %w", err)
	}
	if profile == nil || profile.ID == "" {
		return nil, ErrInvalidCredentials
	}
	return profile, nil
}

func (svc *OAuthService) resolve(ctx context.Context, profile *models.ExternalProfile) (*models.UserDB, error) {
	user, err := svc.reader.GetByProviderID(ctx, profile.Provider, profile.ID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	email := strings.ToLower(profile.Email)
	if email == "" {
		email = fmt.Sprintf("%s_%s@users.gearted.invalid", profile.Provider, strings.ToLower(profile.ID))
	}

	var picture *string
	if profile.Picture != "" {
		picture = &profile.Picture
	}

	user, err = svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if !profile.EmailVerified {
			logger.Log.Warnw("refusing to link provider with unverified email", "user_id", user.UserID, "provider", profile.Provider)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Infow("linking provider to existing account", "user_id", user.UserID, "provider", profile.Provider)
		return svc.writer.LinkProvider(ctx, user.UserID, profile.Provider, profile.ID, picture)
	}

	username, err := svc.uniqueUsername(ctx, profile.Name, email)
	if err != nil {
		return nil, err
	}

	providerID := profile.ID
	user, err = svc.writer.Create(ctx, models.NewUser{
		Username:        username,
		Email:           email,
		Provider:        profile.Provider,
		ProviderID:      &providerID,
		ProfileImage:    picture,
		IsEmailVerified: profile.EmailVerified,
	})
	if errors.Is(err, dbctx.ErrUniqueViolation) {
		return nil, ErrUserAlreadyExists
	}
	return user, err
}

// uniqueUsername derives a free username from the display name or the
// local part of the email.
func (svc *OAuthService) uniqueUsername(ctx context.Context, name, email string) (string, error) {
	base := usernameBase(name, email)

	candidate := base
	for i := 0; i < usernameAttempts; i++ {
		taken, err := svc.reader.ExistsUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "_" + uuid.NewString()[:6]
	}
	return base + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12], nil
}

func usernameBase(name, email string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	if base == "" {
		base, _, _ = strings.Cut(email, "@")
	}
	base = strings.ToLower(strings.ReplaceAll(base, " ", "_"))
	base = usernameDisallowed.ReplaceAllString(base, "")
	if len(base) < 3 {
		base = "user" + base
	}
	if len(base) > maxUsernameLength {
		base = base[:maxUsernameLength]
	}
	return base
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
