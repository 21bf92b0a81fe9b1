package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gearted/gearted-backend/internal/jwt"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/gearted/gearted-backend/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOAuthService(t *testing.T, store *memoryUsers, verifier services.ProviderVerifier) *services.OAuthService {
	t.Helper()
	return services.NewOAuthService(
		store, store,
		jwt.New(jwt.WithSecretKey("test-secret")),
		map[models.Provider]services.ProviderVerifier{models.ProviderGoogle: verifier},
		time.Second,
	)
}

func TestOAuthService_CreateLinkAndReuse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newMemoryUsers()
	verifier := services.NewMockProviderVerifier(ctrl)
	svc := newOAuthService(t, store, verifier)
	ctx := context.Background()

	profile := &models.ExternalProfile{ID: "g-1", Email: "Jane@Example.com", EmailVerified: true, Name: "Jane Doe", Picture: "jane.jpg"}
	verifier.EXPECT().Verify(gomock.Any(), "tok").Return(profile, nil).Times(2)

	token, created, err := svc.LoginWithProvider(ctx, models.ProviderGoogle, "tok")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane_doe", created.Username)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.True(t, created.IsEmailVerified)
	assert.False(t, created.HasPassword())

	_, again, err := svc.LoginWithProvider(ctx, models.ProviderGoogle, "tok")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, again.UserID)
}

func TestOAuthService_LinksExistingEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newMemoryUsers()
	hash := "hash"
	existing, err := store.Create(context.Background(), models.NewUser{
		Username: "jane", Email: "jane@example.com", PasswordHash: &hash, Provider: models.ProviderLocal,
	})
	require.NoError(t, err)

	verifier := services.NewMockProviderVerifier(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), "tok").
		Return(&models.ExternalProfile{ID: "g-7", Email: "jane@example.com", EmailVerified: true, Picture: "p.jpg"}, nil)

	_, user, err := newOAuthService(t, store, verifier).LoginWithProvider(context.Background(), models.ProviderGoogle, "tok")
	require.NoError(t, err)
	assert.Equal(t, existing.UserID, user.UserID)
	id, ok := user.ProviderID(models.ProviderGoogle)
	assert.True(t, ok)
	assert.Equal(t, "g-7", id)
	assert.True(t, user.IsEmailVerified)
	assert.Equal(t, "p.jpg", user.ProfileImage.String)
	assert.True(t, user.HasPassword())
}

func TestOAuthService_UnverifiedEmailNotLinked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newMemoryUsers()
	hash := "hash"
	existing, err := store.Create(context.Background(), models.NewUser{
		Username: "jane", Email: "jane@example.com", PasswordHash: &hash, Provider: models.ProviderLocal,
	})
	require.NoError(t, err)

	verifier := services.NewMockProviderVerifier(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), "tok").
		Return(&models.ExternalProfile{ID: "g-8", Email: "Jane@example.com", EmailVerified: false}, nil)

	_, _, err = newOAuthService(t, store, verifier).LoginWithProvider(context.Background(), models.ProviderGoogle, "tok")
	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)

	stored, err := store.GetByID(context.Background(), existing.UserID)
	require.NoError(t, err)
	_, linked := stored.ProviderID(models.ProviderGoogle)
	assert.False(t, linked)
	assert.False(t, stored.IsEmailVerified)
}

func TestOAuthService_SuspendedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newMemoryUsers()
	verifier := services.NewMockProviderVerifier(ctrl)
	svc := newOAuthService(t, store, verifier)
	ctx := context.Background()

	profile := &models.ExternalProfile{ID: "g-9", Email: "sus@example.com", EmailVerified: true, Name: "Sus"}
	verifier.EXPECT().Verify(gomock.Any(), "tok").Return(profile, nil).Times(2)

	_, user, err := svc.LoginWithProvider(ctx, models.ProviderGoogle, "tok")
	require.NoError(t, err)
	store.suspend(user.UserID)

	token, _, err := svc.LoginWithProvider(ctx, models.ProviderGoogle, "tok")
	assert.ErrorIs(t, err, services.ErrAccountSuspended)
	assert.Empty(t, token)
}

func TestOAuthService_UsernameCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newMemoryUsers()
	hash := "hash"
	_, err := store.Create(context.Background(), models.NewUser{Username: "jane", Email: "other@example.com", PasswordHash: &hash})
	require.NoError(t, err)

	verifier := services.NewMockProviderVerifier(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).
		Return(&models.ExternalProfile{ID: "g-2", Email: "jane@example.com"}, nil)

	_, user, err := newOAuthService(t, store, verifier).LoginWithProvider(context.Background(), models.ProviderGoogle, "tok")
	require.NoError(t, err)
	assert.NotEqual(t, "jane", user.Username)
	assert.Contains(t, user.Username, "jane_")
}

func TestOAuthService_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := services.NewMockProviderVerifier(ctrl)
	svc := newOAuthService(t, newMemoryUsers(), verifier)
	ctx := context.Background()

	_, _, err := svc.LoginWithProvider(ctx, models.ProviderFacebook, "tok")
	assert.ErrorIs(t, err, services.ErrUnsupportedProvider)

	_, _, err = svc.LoginWithProvider(ctx, models.ProviderGoogle, " ")
	assert.ErrorIs(t, err, services.ErrMissingField)

	verifier.EXPECT().Verify(gomock.Any(), "rejected").Return(nil, nil)
	_, _, err = svc.LoginWithProvider(ctx, models.ProviderGoogle, "rejected")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	verifier.EXPECT().Verify(gomock.Any(), "broken").Return(nil, errors.New("provider answered 502"))
	_, _, err = svc.LoginWithProvider(ctx, models.ProviderGoogle, "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrUpstreamTimeout)
}

func TestOAuthService_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newMemoryUsers()
	verifier := services.NewMockProviderVerifier(ctrl)
	svc := services.NewOAuthService(store, store, jwt.New(jwt.WithSecretKey("s")),
		map[models.Provider]services.ProviderVerifier{models.ProviderGoogle: verifier},
		20*time.Millisecond,
	)

	verifier.EXPECT().Verify(gomock.Any(), "slow").
		DoAndReturn(func(ctx context.Context, _ string) (*models.ExternalProfile, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, _, err := svc.LoginWithProvider(context.Background(), models.ProviderGoogle, "slow")
	assert.ErrorIs(t, err, services.ErrUpstreamTimeout)
}
