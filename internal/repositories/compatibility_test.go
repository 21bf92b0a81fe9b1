package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibilityWriteRepository_Touch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCompatibilityWriteRepository(sqlx.NewDb(db, "sqlmock"))

	mock.ExpectExec("UPDATE compatibility_rules SET check_count = check_count \\+ 1").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Touch(context.Background(), 7))

	mock.ExpectExec("UPDATE compatibility_rules").
		WithArgs(int64(8)).
		WillReturnError(errors.New("conn reset"))
	assert.Error(t, repo.Touch(context.Background(), 8))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsWriteRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAnalyticsWriteRepository(sqlx.NewDb(db, "sqlmock"))
	event := models.AnalyticsEvent{SourceEquipmentID: 1, TargetEquipmentID: 2, Source: "API", SessionID: "s-1"}

	mock.ExpectExec("INSERT INTO compatibility_analytics").
		WithArgs(int64(1), int64(2), nil, "API", "s-1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.Insert(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompatibilityRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()
	seedCatalogue(t, db)

	reader := NewCompatibilityReadRepository(db)
	writer := NewCompatibilityWriteRepository(db)
	equipment := NewEquipmentReadRepository(db)
	ctx := context.Background()

	rule, err := writer.Insert(ctx, models.NewRule{
		SourceID:   1,
		TargetID:   2,
		Type:       models.CompatibilityCompatible,
		Confidence: models.ConfidenceHigh,
		Percentage: 90,
		OriginTag:  models.DefaultRuleOrigin,
		CreatedBy:  "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), rule.CheckCount)

	_, err = writer.Insert(ctx, models.NewRule{
		SourceID:   3,
		TargetID:   1,
		Type:       models.CompatibilityRequiresModification,
		Confidence: models.ConfidenceMedium,
		Percentage: 60,
		OriginTag:  models.DefaultRuleOrigin,
		CreatedBy:  "admin",
	})
	require.NoError(t, err)

	t.Run("SwappedPairViolatesUniqueIndex", func(t *testing.T) {
		_, err := writer.Insert(ctx, models.NewRule{
			SourceID:   2,
			TargetID:   1,
			Type:       models.CompatibilityIncompatible,
			Confidence: models.ConfidenceLow,
			OriginTag:  models.DefaultRuleOrigin,
			CreatedBy:  "admin",
		})
		assert.ErrorIs(t, err, dbctx.ErrUniqueViolation)
	})

	t.Run("FindEitherOrientation", func(t *testing.T) {
		for _, pair := range [][2]int64{{1, 2}, {2, 1}} {
			rules, err := reader.FindRulesForPair(ctx, pair[0], pair[1])
			require.NoError(t, err)
			require.Len(t, rules, 1)
			assert.Equal(t, rule.ID, rules[0].ID)
			assert.Equal(t, "M4A1", rules[0].SourceName)
			assert.Equal(t, "m4.jpg", rules[0].SourceImage.String)
		}

		exists, err := reader.ExistsForPair(ctx, 2, 1)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = reader.ExistsForPair(ctx, 1, 4)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Touch", func(t *testing.T) {
		require.NoError(t, writer.Touch(ctx, rule.ID))
		rules, err := reader.FindRulesForPair(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rules[0].CheckCount)
		assert.True(t, rules[0].LastCheckedAt.Valid)
	})

	t.Run("ListCompatible", func(t *testing.T) {
		items, err := reader.ListCompatible(ctx, 1, nil)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(2), items[0].ID)
		assert.Equal(t, 90, items[0].Percentage)
		assert.Equal(t, int64(3), items[1].ID)
		assert.Equal(t, "Tokyo Marui", items[1].ManufacturerName)

		category := int64(2)
		filtered, err := reader.ListCompatible(ctx, 1, &category)
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, "Internals", filtered[0].CategoryName)
	})

	t.Run("Equipment", func(t *testing.T) {
		item, err := equipment.GetByID(ctx, 4)
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.False(t, item.Model.Valid)

		missing, err := equipment.GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, missing)

		total, err := equipment.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)

		rules, err := reader.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), rules)
	})
}
