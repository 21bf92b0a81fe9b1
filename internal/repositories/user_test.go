package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserReadRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserReadRepository(sqlx.NewDb(db, "sqlmock"))
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByProviderID_UnknownProvider(t *testing.T) {
	repo := NewUserReadRepository(nil)

	user, err := repo.GetByProviderID(context.Background(), models.ProviderLocal, "x")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestUserWriteRepository_Create(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)
	ctx := context.Background()

	alice, err := writer.Create(ctx, models.NewUser{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: strPtr("hash"),
		Provider:     models.ProviderLocal,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, alice.UserID)
	assert.True(t, alice.HasPassword())
	assert.False(t, alice.IsAdmin)

	bob, err := writer.Create(ctx, models.NewUser{
		Username:        "bob",
		Email:           "bob@example.com",
		Provider:        models.ProviderGoogle,
		ProviderID:      strPtr("g-123"),
		IsEmailVerified: true,
	})
	require.NoError(t, err)
	id, ok := bob.ProviderID(models.ProviderGoogle)
	assert.True(t, ok)
	assert.Equal(t, "g-123", id)

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := writer.Create(ctx, models.NewUser{
			Username:     "alice2",
			Email:        "alice@example.com",
			PasswordHash: strPtr("hash"),
			Provider:     models.ProviderLocal,
		})
		assert.ErrorIs(t, err, dbctx.ErrUniqueViolation)
	})

	t.Run("ByUsernameOrEmail", func(t *testing.T) {
		got, err := reader.GetByUsernameOrEmail(ctx, "nobody", "ALICE@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, alice.UserID, got.UserID)
	})

	t.Run("ByProviderID", func(t *testing.T) {
		got, err := reader.GetByProviderID(ctx, models.ProviderGoogle, "g-123")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "bob", got.Username)
	})

	t.Run("LinkProvider", func(t *testing.T) {
		linked, err := writer.LinkProvider(ctx, alice.UserID, models.ProviderFacebook, "fb-1", strPtr("avatar.jpg"))
		require.NoError(t, err)
		assert.True(t, linked.IsEmailVerified)
		assert.Equal(t, "avatar.jpg", linked.ProfileImage.String)

		again, err := writer.LinkProvider(ctx, alice.UserID, models.ProviderFacebook, "fb-1", strPtr("other.jpg"))
		require.NoError(t, err)
		assert.Equal(t, "avatar.jpg", again.ProfileImage.String)
	})

	t.Run("SetAdmin", func(t *testing.T) {
		updated, err := writer.SetAdmin(ctx, bob.UserID, true)
		require.NoError(t, err)
		assert.True(t, updated.IsAdmin)

		missing, err := writer.SetAdmin(ctx, uuid.New(), true)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Suspend", func(t *testing.T) {
		suspended, err := writer.Suspend(ctx, bob.UserID, "chargebacks")
		require.NoError(t, err)
		assert.True(t, suspended.IsSuspended)
		assert.True(t, suspended.SuspendedAt.Valid)
		assert.Equal(t, "chargebacks", suspended.SuspendReason.String)

		missing, err := writer.Suspend(ctx, uuid.New(), "")
		assert.NoError(t, err)
		assert.Nil(t, missing)

		deleted, err := writer.Delete(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("ListAndCount", func(t *testing.T) {
		users, err := reader.List(ctx, models.UserFilter{Page: 1, Limit: 1})
		require.NoError(t, err)
		assert.Len(t, users, 1)

		total, err := reader.Count(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		matched, err := reader.List(ctx, models.UserFilter{Search: "BO", Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "bob", matched[0].Username)

		exists, err := reader.ExistsUsername(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestUserWriteRepository_CredentialConstraint(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	_, err := NewUserWriteRepository(db).Create(context.Background(), models.NewUser{
		Username: "ghost",
		Email:    "ghost@example.com",
		Provider: models.ProviderLocal,
	})
	assert.Error(t, err)
}
