package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/jmoiron/sqlx"
)

const ruleColumns = `id, source_equipment_id, target_equipment_id, compatibility_type,
	confidence_level, compatibility_percentage, notes, modification_required, source_type,
	created_by, check_count, last_checked_at, created_at, updated_at`

// CompatibilityReadRepository reads compatibility rules.
type CompatibilityReadRepository struct {
	db *sqlx.DB
}

func NewCompatibilityReadRepository(db *sqlx.DB) *CompatibilityReadRepository {
	return &CompatibilityReadRepository{db: db}
}

// FindRulesForPair returns every rule stored for the pair in either
// orientation, lowest id first.
func (r *CompatibilityReadRepository) FindRulesForPair(ctx context.Context, a, b int64) ([]models.RuleWithEquipmentDB, error) {
	const query = `
		SELECT r.id, r.source_equipment_id, r.target_equipment_id, r.compatibility_type,
		       r.confidence_level, r.compatibility_percentage, r.notes, r.modification_required,
		       r.source_type, r.created_by, r.check_count, r.last_checked_at, r.created_at, r.updated_at,
		       s.name AS source_name, s.model AS source_model, s.image_url AS source_image,
		       t.name AS target_name, t.model AS target_model, t.image_url AS target_image
		FROM compatibility_rules r
		JOIN equipment s ON r.source_equipment_id = s.id
		JOIN equipment t ON r.target_equipment_id = t.id
		WHERE (r.source_equipment_id = $1 AND r.target_equipment_id = $2)
		   OR (r.source_equipment_id = $2 AND r.target_equipment_id = $1)
		ORDER BY r.id
	`

	rules := []models.RuleWithEquipmentDB{}
	err := dbctx.From(ctx, r.db).SelectContext(ctx, &rules, query, a, b)
	logQuery(query, []any{a, b}, len(rules), err)

	if err != nil {
		return nil, err
	}
	return rules, nil
}

// ExistsForPair reports whether any rule exists for the unordered pair.
func (r *CompatibilityReadRepository) ExistsForPair(ctx context.Context, a, b int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM compatibility_rules
			WHERE LEAST(source_equipment_id, target_equipment_id) = LEAST($1::BIGINT, $2::BIGINT)
			  AND GREATEST(source_equipment_id, target_equipment_id) = GREATEST($1::BIGINT, $2::BIGINT)
		)
	`

	var exists bool
	err := dbctx.From(ctx, r.db).GetContext(ctx, &exists, query, a, b)
	logQuery(query, []any{a, b}, exists, err)

	return exists, err
}

// ListCompatible returns equipment linked to equipmentID by a COMPATIBLE or
// REQUIRES_MODIFICATION rule, best match first.
func (r *CompatibilityReadRepository) ListCompatible(ctx context.Context, equipmentID int64, categoryID *int64) ([]models.CompatibleItemDB, error) {
	b := psql.Select(
		"e.id", "e.name", "e.model", "e.image_url",
		"m.name AS manufacturer_name", "c.name AS category_name",
		"r.compatibility_type", "r.confidence_level", "r.compatibility_percentage",
	).
		From("compatibility_rules r").
		Join("equipment e ON ((r.source_equipment_id = ? AND r.target_equipment_id = e.id) OR (r.target_equipment_id = ? AND r.source_equipment_id = e.id))", equipmentID, equipmentID).
		Join("manufacturers m ON e.manufacturer_id = m.id").
		Join("equipment_categories c ON e.category_id = c.id").
		Where(squirrel.Eq{"r.compatibility_type": []models.CompatibilityType{
			models.CompatibilityCompatible,
			models.CompatibilityRequiresModification,
		}}).
		OrderBy("r.compatibility_percentage DESC", "e.name ASC")

	if categoryID != nil {
		b = b.Where(squirrel.Eq{"c.id": *categoryID})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	items := []models.CompatibleItemDB{}
	err = dbctx.From(ctx, r.db).SelectContext(ctx, &items, query, args...)
	logQuery(query, args, len(items), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of stored rules.
func (r *CompatibilityReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM compatibility_rules`

	var total int64
	err := dbctx.From(ctx, r.db).GetContext(ctx, &total, query)
	logQuery(query, nil, total, err)

	return total, err
}

// CompatibilityWriteRepository writes compatibility rules.
type CompatibilityWriteRepository struct {
	db *sqlx.DB
}

func NewCompatibilityWriteRepository(db *sqlx.DB) *CompatibilityWriteRepository {
	return &CompatibilityWriteRepository{db: db}
}

// Insert stores a rule exactly as given and returns the stored row.
// A collision on the unordered-pair index yields dbctx.ErrUniqueViolation.
func (r *CompatibilityWriteRepository) Insert(ctx context.Context, rule models.NewRule) (*models.RuleDB, error) {
	query := `
		INSERT INTO compatibility_rules (
			source_equipment_id, target_equipment_id, compatibility_type,
			confidence_level, compatibility_percentage, notes,
			modification_required, source_type, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + ruleColumns
	args := []any{
		rule.SourceID, rule.TargetID, rule.Type,
		rule.Confidence, rule.Percentage, rule.Notes,
		rule.Modification, rule.OriginTag, rule.CreatedBy,
	}

	var stored models.RuleDB
	err := dbctx.From(ctx, r.db).QueryRowxContext(ctx, query, args...).StructScan(&stored)
	logQuery(query, args, stored.ID, err)

	if err != nil {
		return nil, dbctx.MapError(err)
	}
	return &stored, nil
}

// Touch increments check_count and refreshes last_checked_at.
func (r *CompatibilityWriteRepository) Touch(ctx context.Context, ruleID int64) error {
	const query = `
		UPDATE compatibility_rules
		SET check_count = check_count + 1, last_checked_at = NOW()
		WHERE id = $1
	`

	res, err := dbctx.From(ctx, r.db).ExecContext(ctx, query, ruleID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{ruleID}, rowsAffected, err)

	return err
}
