package models

import (
	"database/sql"
	"time"
)

// CompatibilityType is the verdict kind stored on a rule.
type CompatibilityType string

// Compatibility types
const (
	CompatibilityCompatible           CompatibilityType = "COMPATIBLE"
	CompatibilityRequiresModification CompatibilityType = "REQUIRES_MODIFICATION"
	CompatibilityIncompatible         CompatibilityType = "INCOMPATIBLE"
	CompatibilityUnknown              CompatibilityType = "UNKNOWN"
)

// Valid reports whether t is a known compatibility type.
func (t CompatibilityType) Valid() bool {
	switch t {
	case CompatibilityCompatible, CompatibilityRequiresModification, CompatibilityIncompatible, CompatibilityUnknown:
		return true
	}
	return false
}

// ConfidenceLevel expresses how reliable a rule is.
type ConfidenceLevel string

// Confidence levels
const (
	ConfidenceHigh   ConfidenceLevel = "HIGH"
	ConfidenceMedium ConfidenceLevel = "MEDIUM"
	ConfidenceLow    ConfidenceLevel = "LOW"
)

// Valid reports whether c is a known confidence level.
func (c ConfidenceLevel) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// DefaultRuleOrigin is the origin tag used when none is supplied.
const DefaultRuleOrigin = "USER_TESTED"

// UnknownCompatibilityNote is returned when no rule exists for a pair.
const UnknownCompatibilityNote = "No compatibility information available for these items"

// RuleDB represents a row of compatibility_rules.
type RuleDB struct {
	ID                   int64             `db:"id"`
	SourceEquipmentID    int64             `db:"source_equipment_id"`
	TargetEquipmentID    int64             `db:"target_equipment_id"`
	CompatibilityType    CompatibilityType `db:"compatibility_type"`
	ConfidenceLevel      ConfidenceLevel   `db:"confidence_level"`
	Percentage           int               `db:"compatibility_percentage"`
	Notes                sql.NullString    `db:"notes"`
	ModificationRequired sql.NullString    `db:"modification_required"`
	SourceType           string            `db:"source_type"`
	CreatedBy            string            `db:"created_by"`
	CheckCount           int64             `db:"check_count"`
	LastCheckedAt        sql.NullTime      `db:"last_checked_at"`
	CreatedAt            time.Time         `db:"created_at"`
	UpdatedAt            time.Time         `db:"updated_at"`
}

// View builds the API representation of the rule.
func (r *RuleDB) View() RuleView {
	v := RuleView{
		ID:                   r.ID,
		SourceEquipmentID:    r.SourceEquipmentID,
		TargetEquipmentID:    r.TargetEquipmentID,
		CompatibilityType:    r.CompatibilityType,
		ConfidenceLevel:      r.ConfidenceLevel,
		Percentage:           r.Percentage,
		Notes:                nullString(r.Notes),
		ModificationRequired: nullString(r.ModificationRequired),
		SourceType:           r.SourceType,
		CreatedBy:            r.CreatedBy,
		CheckCount:           r.CheckCount,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
	if r.LastCheckedAt.Valid {
		t := r.LastCheckedAt.Time
		v.LastCheckedAt = &t
	}
	return v
}

// RuleView is the rule representation returned by the API.
// swagger:model Rule
type RuleView struct {
	ID                   int64             `json:"id"`
	SourceEquipmentID    int64             `json:"sourceEquipmentId"`
	TargetEquipmentID    int64             `json:"targetEquipmentId"`
	CompatibilityType    CompatibilityType `json:"compatibilityType"`
	ConfidenceLevel      ConfidenceLevel   `json:"confidenceLevel"`
	Percentage           int               `json:"percentage"`
	Notes                *string           `json:"notes"`
	ModificationRequired *string           `json:"modificationRequired"`
	SourceType           string            `json:"sourceType"`
	CreatedBy            string            `json:"createdBy"`
	CheckCount           int64             `json:"checkCount"`
	LastCheckedAt        *time.Time        `json:"lastCheckedAt"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// RuleWithEquipmentDB is a rule joined with both equipment rows.
type RuleWithEquipmentDB struct {
	RuleDB
	SourceName  string         `db:"source_name"`
	SourceModel sql.NullString `db:"source_model"`
	SourceImage sql.NullString `db:"source_image"`
	TargetName  string         `db:"target_name"`
	TargetModel sql.NullString `db:"target_model"`
	TargetImage sql.NullString `db:"target_image"`
}

// Verdict builds the lookup response for this rule.
func (r *RuleWithEquipmentDB) Verdict() Verdict {
	return Verdict{
		Compatible:   r.CompatibilityType == CompatibilityCompatible,
		Type:         r.CompatibilityType,
		Confidence:   r.ConfidenceLevel,
		Percentage:   r.Percentage,
		Notes:        nullString(r.Notes),
		Modification: nullString(r.ModificationRequired),
		SourceEquipment: EquipmentSummary{
			ID:    r.SourceEquipmentID,
			Name:  r.SourceName,
			Model: nullString(r.SourceModel),
			Image: nullString(r.SourceImage),
		},
		TargetEquipment: EquipmentSummary{
			ID:    r.TargetEquipmentID,
			Name:  r.TargetName,
			Model: nullString(r.TargetModel),
			Image: nullString(r.TargetImage),
		},
	}
}

// Verdict is the answer to a compatibility lookup.
// swagger:model Verdict
type Verdict struct {
	Compatible      bool              `json:"compatible"`
	Type            CompatibilityType `json:"type"`
	Confidence      ConfidenceLevel   `json:"confidence"`
	Percentage      int               `json:"percentage"`
	Notes           *string           `json:"notes"`
	Modification    *string           `json:"modification"`
	SourceEquipment EquipmentSummary  `json:"sourceEquipment"`
	TargetEquipment EquipmentSummary  `json:"targetEquipment"`
}

// UnknownVerdict is returned when both items exist but no rule does.
func UnknownVerdict(source, target *EquipmentDB) Verdict {
	note := UnknownCompatibilityNote
	return Verdict{
		Compatible:      false,
		Type:            CompatibilityUnknown,
		Confidence:      ConfidenceLow,
		Percentage:      0,
		Notes:           &note,
		SourceEquipment: source.Summary(),
		TargetEquipment: target.Summary(),
	}
}

// CompatibleItemDB is a row of the compatible-equipment listing.
type CompatibleItemDB struct {
	ID                int64             `db:"id"`
	Name              string            `db:"name"`
	Model             sql.NullString    `db:"model"`
	ImageURL          sql.NullString    `db:"image_url"`
	ManufacturerName  string            `db:"manufacturer_name"`
	CategoryName      string            `db:"category_name"`
	CompatibilityType CompatibilityType `db:"compatibility_type"`
	ConfidenceLevel   ConfidenceLevel   `db:"confidence_level"`
	Percentage        int               `db:"compatibility_percentage"`
}

// Item converts the row into its API form.
func (c *CompatibleItemDB) Item() CompatibleItem {
	return CompatibleItem{
		ID:           c.ID,
		Name:         c.Name,
		Model:        nullString(c.Model),
		Manufacturer: c.ManufacturerName,
		Category:     c.CategoryName,
		Image:        nullString(c.ImageURL),
		Compatibility: CompatibilitySummary{
			Type:       c.CompatibilityType,
			Confidence: c.ConfidenceLevel,
			Percentage: c.Percentage,
		},
	}
}

// CompatibleItem is one entry of the compatible-equipment listing.
// swagger:model CompatibleItem
type CompatibleItem struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	Model         *string              `json:"model"`
	Manufacturer  string               `json:"manufacturer"`
	Category      string               `json:"category"`
	Image         *string              `json:"image"`
	Compatibility CompatibilitySummary `json:"compatibility"`
}

// CompatibilitySummary is the short rule view nested in CompatibleItem.
type CompatibilitySummary struct {
	Type       CompatibilityType `json:"type"`
	Confidence ConfidenceLevel   `json:"confidence"`
	Percentage int               `json:"percentage"`
}

// NewRule holds the input of rule creation.
type NewRule struct {
	SourceID     int64
	TargetID     int64
	Type         CompatibilityType
	Confidence   ConfidenceLevel
	Percentage   int
	Notes        *string
	Modification *string
	OriginTag    string
	CreatedBy    string
}

// CanonicalPair orders an unordered equipment pair ascending.
func CanonicalPair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}
