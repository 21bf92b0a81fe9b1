package services

//go:generate mockgen -source=compatibility.go -destination=compatibility_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gearted/gearted-backend/internal/besteffort"
	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/models"
)

// RuleReader reads compatibility rules.
type RuleReader interface {
	FindRulesForPair(ctx context.Context, a, b int64) ([]models.RuleWithEquipmentDB, error)
	ExistsForPair(ctx context.Context, a, b int64) (bool, error)
	ListCompatible(ctx context.Context, equipmentID int64, categoryID *int64) ([]models.CompatibleItemDB, error)
}

// RuleWriter writes compatibility rules.
type RuleWriter interface {
	Insert(ctx context.Context, rule models.NewRule) (*models.RuleDB, error)
	Touch(ctx context.Context, ruleID int64) error
}

// EquipmentReader reads the equipment reference table.
type EquipmentReader interface {
	GetByID(ctx context.Context, id int64) (*models.EquipmentDB, error)
}

// AnalyticsRecorder records lookup events.
type AnalyticsRecorder interface {
	Record(ctx context.Context, event models.AnalyticsEvent) error
}

// LookupOrigin describes who asked for a lookup.
type LookupOrigin struct {
	UserID    *string
	SessionID string
}

// CompatibilityService answers compatibility questions and manages rules.
type CompatibilityService struct {
	rules     RuleReader
	writer    RuleWriter
	equipment EquipmentReader
	analytics AnalyticsRecorder
	now       func() time.Time
}

// NewCompatibilityService creates a new CompatibilityService.
func NewCompatibilityService(rules RuleReader, writer RuleWriter, equipment EquipmentReader, analytics AnalyticsRecorder) *CompatibilityService {
	return &CompatibilityService{
		rules:     rules,
		writer:    writer,
		equipment: equipment,
		analytics: analytics,
		now:       time.Now,
	}
}

// Lookup returns the verdict for an unordered equipment pair.
func (svc *CompatibilityService) Lookup(ctx context.Context, idA, idB int64, origin LookupOrigin) (*models.Verdict, error) {
	sourceID, targetID := models.CanonicalPair(idA, idB)

	sessionID := origin.SessionID
	if sessionID == "" {
		sessionID = models.AnonymousSession
	}
	event := models.AnalyticsEvent{
		SourceEquipmentID: sourceID,
		TargetEquipmentID: targetID,
		UserID:            origin.UserID,
		Source:            models.AnalyticsOriginAPI,
		SessionID:         sessionID,
		CreatedAt:         svc.now().UTC(),
	}
	besteffort.Do(ctx, "record_analytics", func(ctx context.Context) error {
		return svc.analytics.Record(ctx, event)
	})

	rules, err := svc.rules.FindRulesForPair(ctx, sourceID, targetID)
	if err != nil {
		logger.Log.Errorw("failed to query compatibility rules", "source", sourceID, "target", targetID, "error", err)
		return nil, err
	}

	if len(rules) > 0 {
		if len(rules) > 1 {
			ids := make([]int64, 0, len(rules))
			for _, r := range rules {
				ids = append(ids, r.ID)
			}
			logger.Log.Warnw("multiple compatibility rules for one pair, using lowest id",
				"source", sourceID, "target", targetID, "rule_ids", ids)
		}

		rule := rules[0]
		besteffort.Do(ctx, "touch_rule", func(ctx context.Context) error {
			return svc.writer.Touch(ctx, rule.ID)
		})

		verdict := rule.Verdict()
		return &verdict, nil
	}

	source, err := svc.equipment.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	target, err := svc.equipment.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if source == nil || target == nil {
		return nil, ErrEquipmentNotFound
	}

	verdict := models.UnknownVerdict(source, target)
	return &verdict, nil
}

// CompatibleEquipment lists items known to work with equipmentID.
func (svc *CompatibilityService) CompatibleEquipment(ctx context.Context, equipmentID int64, categoryID *int64) ([]models.CompatibleItem, error) {
	rows, err := svc.rules.ListCompatible(ctx, equipmentID, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to list compatible equipment", "equipment_id", equipmentID, "error", err)
		return nil, err
	}

	items := make([]models.CompatibleItem, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].Item())
	}
	return items, nil
}

// AddRule validates and stores a new rule in canonical orientation.
func (svc *CompatibilityService) AddRule(ctx context.Context, rule models.NewRule) (*models.RuleDB, error) {
	if rule.SourceID == 0 || rule.TargetID == 0 || rule.Type == "" || rule.Confidence == "" {
		return nil, fmt.Errorf("%w: sourceId, targetId, compatibilityType and confidenceLevel are required", ErrMissingField)
	}
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	for _, id := range []int64{rule.SourceID, rule.TargetID} {
		item, err := svc.equipment.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("%w: %d", ErrEquipmentNotFound, id)
		}
	}

	rule.SourceID, rule.TargetID = models.CanonicalPair(rule.SourceID, rule.TargetID)
	if rule.OriginTag == "" {
		rule.OriginTag = models.DefaultRuleOrigin
	}
	if rule.CreatedBy == "" {
		rule.CreatedBy = "system"
	}

	exists, err := svc.rules.ExistsForPair(ctx, rule.SourceID, rule.TargetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateRule
	}

	stored, err := svc.writer.Insert(ctx, rule)
	if errors.Is(err, dbctx.ErrUniqueViolation) {
		return nil, ErrDuplicateRule
	}
	if err != nil {
		logger.Log.Errorw("failed to insert compatibility rule", "source", rule.SourceID, "target", rule.TargetID, "error", err)
		return nil, err
	}

	logger.Log.Infow("compatibility rule created", "rule_id", stored.ID, "created_by", rule.CreatedBy)
	return stored, nil
}

func validateRule(rule models.NewRule) error {
	if rule.SourceID < 0 || rule.TargetID < 0 {
		return fmt.Errorf("%w: equipment ids must be positive", ErrInvalidField)
	}
	if rule.SourceID == rule.TargetID {
		return fmt.Errorf("%w: an item cannot be paired with itself", ErrInvalidField)
	}
	if !rule.Type.Valid() {
		return fmt.Errorf("%w: unknown compatibilityType %q", ErrInvalidField, rule.Type)
	}
	if !rule.Confidence.Valid() {
		return fmt.Errorf("%w: unknown confidenceLevel %q", ErrInvalidField, rule.Confidence)
	}
	if rule.Percentage < 0 || rule.Percentage > 100 {
		return fmt.Errorf("%w: percentage must be within 0..100", ErrInvalidField)
	}
	return nil
}
