package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// listingSelect selects a listing aliased l together with its seller u.
const listingSelect = `l.id, l.seller_id, l.title, l.description, l.price, l.condition,
	l.category, l.subcategory, l.tags, l.image_urls, l.is_exchangeable, l.is_sold, l.status,
	l.created_at, l.updated_at, u.username AS seller_username, u.profile_image AS seller_profile_image`

var listingSortColumns = map[models.ListingSort]string{
	models.SortCreatedAt: "l.created_at",
	models.SortPrice:     "l.price",
	models.SortTitle:     "l.title",
}

func listingWhere(b squirrel.SelectBuilder, f models.ListingFilter) squirrel.SelectBuilder {
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"l.title": pattern},
			squirrel.ILike{"l.description": pattern},
		})
	}
	if f.Category != "" {
		b = b.Where(squirrel.Eq{"l.category": f.Category})
	}
	if f.Subcategory != "" {
		b = b.Where(squirrel.Eq{"l.subcategory": f.Subcategory})
	}
	if f.Condition != "" {
		b = b.Where(squirrel.Eq{"l.condition": f.Condition})
	}
	if f.MinPrice != nil {
		b = b.Where(squirrel.GtOrEq{"l.price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		b = b.Where(squirrel.LtOrEq{"l.price": *f.MaxPrice})
	}
	if f.IsExchangeable != nil {
		b = b.Where(squirrel.Eq{"l.is_exchangeable": *f.IsExchangeable})
	}
	if f.SellerID != nil {
		b = b.Where(squirrel.Eq{"l.seller_id": *f.SellerID})
	}
	if f.Status != "" {
		b = b.Where(squirrel.Eq{"l.status": f.Status})
	}
	if !f.IncludeSold {
		b = b.Where(squirrel.Eq{"l.is_sold": false})
	}
	return b
}

func listingOrder(f models.ListingFilter) string {
	column, ok := listingSortColumns[f.SortBy]
	if !ok {
		column = listingSortColumns[models.SortCreatedAt]
	}
	if f.Ascending {
		return column + " ASC"
	}
	return column + " DESC"
}

// ListingReadRepository reads listings.
type ListingReadRepository struct {
	db *sqlx.DB
}

func NewListingReadRepository(db *sqlx.DB) *ListingReadRepository {
	return &ListingReadRepository{db: db}
}

// GetByID returns the listing with id, or nil when absent.
func (r *ListingReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ListingDB, error) {
	query := `SELECT ` + listingSelect + ` FROM listings l JOIN users u ON u.id = l.seller_id WHERE l.id = $1`

	var listing models.ListingDB
	err := dbctx.From(ctx, r.db).GetContext(ctx, &listing, query, id)
	logQuery(query, []any{id}, listing.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// Search returns one page of listings matching f.
func (r *ListingReadRepository) Search(ctx context.Context, f models.ListingFilter) ([]models.ListingDB, error) {
	b := psql.Select(listingSelect).
		From("listings l").
		Join("users u ON u.id = l.seller_id").
		OrderBy(listingOrder(f), "l.id").
		Limit(uint64(f.Limit)).
		Offset(uint64((f.Page - 1) * f.Limit))
	b = listingWhere(b, f)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	listings := []models.ListingDB{}
	err = dbctx.From(ctx, r.db).SelectContext(ctx, &listings, query, args...)
	logQuery(query, args, len(listings), err)

	if err != nil {
		return nil, err
	}
	return listings, nil
}

// CountMatching returns the number of listings matching f.
func (r *ListingReadRepository) CountMatching(ctx context.Context, f models.ListingFilter) (int64, error) {
	query, args, err := listingWhere(psql.Select("COUNT(*)").From("listings l"), f).ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	err = dbctx.From(ctx, r.db).GetContext(ctx, &total, query, args...)
	logQuery(query, args, total, err)

	return total, err
}

// Count returns the number of stored listings.
func (r *ListingReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM listings`

	var total int64
	err := dbctx.From(ctx, r.db).GetContext(ctx, &total, query)
	logQuery(query, nil, total, err)

	return total, err
}

// ListingWriteRepository writes listings.
type ListingWriteRepository struct {
	db *sqlx.DB
}

func NewListingWriteRepository(db *sqlx.DB) *ListingWriteRepository {
	return &ListingWriteRepository{db: db}
}

// returnJoined runs a data-modifying statement whose RETURNING * output is
// joined with the seller, yielding nil when no row was touched.
func (r *ListingWriteRepository) returnJoined(ctx context.Context, stmt string, args ...any) (*models.ListingDB, error) {
	query := `WITH l AS (` + stmt + ` RETURNING *)
		SELECT ` + listingSelect + ` FROM l JOIN users u ON u.id = l.seller_id`

	var listing models.ListingDB
	err := dbctx.From(ctx, r.db).QueryRowxContext(ctx, query, args...).StructScan(&listing)
	logQuery(query, args, listing.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbctx.MapError(err)
	}
	return &listing, nil
}

// Create inserts a listing owned by sellerID.
func (r *ListingWriteRepository) Create(ctx context.Context, sellerID uuid.UUID, in models.ListingInput) (*models.ListingDB, error) {
	stmt, args, err := psql.Insert("listings").
		Columns("seller_id", "title", "description", "price", "condition", "category",
			"subcategory", "tags", "image_urls", "is_exchangeable").
		Values(sellerID, in.Title, in.Description, *in.Price, in.Condition, in.Category,
			in.Subcategory, in.Tags, in.ImageURLs, in.IsExchangeable).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.returnJoined(ctx, stmt, args...)
}

// Update replaces the seller-editable fields of a listing.
func (r *ListingWriteRepository) Update(ctx context.Context, id uuid.UUID, in models.ListingInput) (*models.ListingDB, error) {
	stmt, args, err := psql.Update("listings").
		SetMap(map[string]any{
			"title":           in.Title,
			"description":     in.Description,
			"price":           *in.Price,
			"condition":       in.Condition,
			"category":        in.Category,
			"subcategory":     in.Subcategory,
			"tags":            in.Tags,
			"image_urls":      in.ImageURLs,
			"is_exchangeable": in.IsExchangeable,
			"updated_at":      squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.returnJoined(ctx, stmt, args...)
}

// MarkSold flags a listing as sold.
func (r *ListingWriteRepository) MarkSold(ctx context.Context, id uuid.UUID) (*models.ListingDB, error) {
	return r.returnJoined(ctx, `UPDATE listings SET is_sold = TRUE, updated_at = NOW() WHERE id = $1`, id)
}

// SetStatus changes the moderation status of a listing.
func (r *ListingWriteRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) (*models.ListingDB, error) {
	return r.returnJoined(ctx, `UPDATE listings SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
}

// SuspendBySeller suspends every active listing of sellerID.
func (r *ListingWriteRepository) SuspendBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	const query = `
		UPDATE listings
		SET status = 'SUSPENDED', updated_at = NOW()
		WHERE seller_id = $1 AND status = 'ACTIVE'
	`
	return r.exec(ctx, query, sellerID)
}

// Delete removes a listing, reporting whether it existed.
func (r *ListingWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	return n > 0, err
}

func (r *ListingWriteRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := dbctx.From(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		logQuery(query, args, nil, err)
		return 0, err
	}
	n, err := res.RowsAffected()
	logQuery(query, args, n, err)
	return n, err
}
