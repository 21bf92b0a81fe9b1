package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const userColumns = `id, username, email, password_hash, provider, google_id, facebook_id,
	instagram_id, profile_image, is_admin, is_email_verified, is_suspended, suspended_at,
	suspension_reason, created_at, updated_at`

// providerColumn maps an OAuth provider to the column holding its user id.
func providerColumn(p models.Provider) (string, error) {
	switch p {
	case models.ProviderGoogle:
		return "google_id", nil
	case models.ProviderFacebook:
		return "facebook_id", nil
	case models.ProviderInstagram:
		return "instagram_id", nil
	}
	return "", fmt.Errorf("no id column for provider %q", p)
}

// UserReadRepository reads user records.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := dbctx.From(ctx, r.db).GetContext(ctx, &user, query, args...)
	logQuery(query, args, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByUsernameOrEmail returns the first user matching either value.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 OR email = LOWER($2)
		ORDER BY created_at
		LIMIT 1
	`
	return r.getOne(ctx, query, username, email)
}

// GetByEmail returns the user with the given email, compared lower-cased.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = LOWER($1)`
	return r.getOne(ctx, query, email)
}

// GetByProviderID returns the user linked to an external provider account.
func (r *UserReadRepository) GetByProviderID(ctx context.Context, provider models.Provider, providerID string) (*models.UserDB, error) {
	column, err := providerColumn(provider)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1`
	return r.getOne(ctx, query, providerID)
}

// ExistsUsername reports whether a username is taken.
func (r *UserReadRepository) ExistsUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := dbctx.From(ctx, r.db).GetContext(ctx, &exists, query, username)
	logQuery(query, []any{username}, exists, err)

	return exists, err
}

func userSearch(b squirrel.SelectBuilder, search string) squirrel.SelectBuilder {
	if search == "" {
		return b
	}
	pattern := "%" + search + "%"
	return b.Where(squirrel.Or{
		squirrel.ILike{"username": pattern},
		squirrel.ILike{"email": pattern},
	})
}

// List returns one page of users, newest first.
func (r *UserReadRepository) List(ctx context.Context, filter models.UserFilter) ([]models.UserDB, error) {
	b := psql.Select(userColumns).
		From("users").
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64((filter.Page - 1) * filter.Limit))
	b = userSearch(b, filter.Search)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	users := []models.UserDB{}
	err = dbctx.From(ctx, r.db).SelectContext(ctx, &users, query, args...)
	logQuery(query, args, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the number of users matching search.
func (r *UserReadRepository) Count(ctx context.Context, search string) (int64, error) {
	query, args, err := userSearch(psql.Select("COUNT(*)").From("users"), search).ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	err = dbctx.From(ctx, r.db).GetContext(ctx, &total, query, args...)
	logQuery(query, args, total, err)

	return total, err
}

// UserWriteRepository writes user records.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

func (r *UserWriteRepository) returnOne(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := dbctx.From(ctx, r.db).QueryRowxContext(ctx, query, args...).StructScan(&user)
	logQuery(query, args, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbctx.MapError(err)
	}
	return &user, nil
}

// Create inserts a user and returns the stored record.
// A username or email collision yields dbctx.ErrUniqueViolation.
func (r *UserWriteRepository) Create(ctx context.Context, u models.NewUser) (*models.UserDB, error) {
	cols := []string{"username", "email", "password_hash", "provider", "profile_image", "is_email_verified"}
	vals := []any{u.Username, u.Email, u.PasswordHash, u.Provider, u.ProfileImage, u.IsEmailVerified}

	if u.ProviderID != nil && u.Provider != models.ProviderLocal {
		column, err := providerColumn(u.Provider)
		if err != nil {
			return nil, err
		}
		cols = append(cols, column)
		vals = append(vals, *u.ProviderID)
	}

	query, args, err := psql.Insert("users").
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.returnOne(ctx, query, args...)
}

// LinkProvider attaches an external account to an existing user, marks the
// email verified and fills a missing profile image.
func (r *UserWriteRepository) LinkProvider(ctx context.Context, userID uuid.UUID, provider models.Provider, providerID string, profileImage *string) (*models.UserDB, error) {
	column, err := providerColumn(provider)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE users
		SET ` + column + ` = $2,
		    provider = $3,
		    is_email_verified = TRUE,
		    profile_image = COALESCE(profile_image, $4),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	return r.returnOne(ctx, query, userID, providerID, provider, profileImage)
}

// SetAdmin updates the admin flag, returning nil when the user is absent.
func (r *UserWriteRepository) SetAdmin(ctx context.Context, userID uuid.UUID, isAdmin bool) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET is_admin = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	return r.returnOne(ctx, query, userID, isAdmin)
}

// Suspend marks the user suspended, returning nil when the user is absent.
func (r *UserWriteRepository) Suspend(ctx context.Context, userID uuid.UUID, reason string) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET is_suspended = TRUE,
		    suspended_at = NOW(),
		    suspension_reason = NULLIF($2, ''),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	return r.returnOne(ctx, query, userID, reason)
}

// Delete removes the user and, through the foreign keys, their listings.
// It reports whether a row was deleted.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) (bool, error) {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := dbctx.From(ctx, r.db).ExecContext(ctx, query, userID)
	if err != nil {
		logQuery(query, []any{userID}, nil, err)
		return false, err
	}
	n, err := res.RowsAffected()
	logQuery(query, []any{userID}, n, err)

	return n > 0, err
}
