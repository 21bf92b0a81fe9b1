package repositories

import (
	"context"

	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/jmoiron/sqlx"
)

// AnalyticsWriteRepository appends lookup events.
type AnalyticsWriteRepository struct {
	db *sqlx.DB
}

func NewAnalyticsWriteRepository(db *sqlx.DB) *AnalyticsWriteRepository {
	return &AnalyticsWriteRepository{db: db}
}

// Insert appends one analytics row.
func (r *AnalyticsWriteRepository) Insert(ctx context.Context, event models.AnalyticsEvent) error {
	const query = `
		INSERT INTO compatibility_analytics
			(source_equipment_id, target_equipment_id, user_id, source, session_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{event.SourceEquipmentID, event.TargetEquipmentID, event.UserID, event.Source, event.SessionID}

	res, err := dbctx.From(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}
