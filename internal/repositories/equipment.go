package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/jmoiron/sqlx"
)

// EquipmentReadRepository reads the equipment reference table.
type EquipmentReadRepository struct {
	db *sqlx.DB
}

func NewEquipmentReadRepository(db *sqlx.DB) *EquipmentReadRepository {
	return &EquipmentReadRepository{db: db}
}

// GetByID returns the equipment item, or nil when it does not exist.
func (r *EquipmentReadRepository) GetByID(ctx context.Context, id int64) (*models.EquipmentDB, error) {
	const query = `
		SELECT id, name, model, manufacturer_id, category_id, image_url
		FROM equipment
		WHERE id = $1
	`

	var item models.EquipmentDB
	err := dbctx.From(ctx, r.db).GetContext(ctx, &item, query, id)
	logQuery(query, []any{id}, item.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Count returns the size of the equipment catalogue.
func (r *EquipmentReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM equipment`

	var total int64
	err := dbctx.From(ctx, r.db).GetContext(ctx, &total, query)
	logQuery(query, nil, total, err)

	return total, err
}
