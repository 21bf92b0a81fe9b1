package models

import "database/sql"

// EquipmentDB represents a row of the equipment reference table.
type EquipmentDB struct {
	ID             int64          `db:"id"`
	Name           string         `db:"name"`
	Model          sql.NullString `db:"model"`
	ManufacturerID sql.NullInt64  `db:"manufacturer_id"`
	CategoryID     sql.NullInt64  `db:"category_id"`
	ImageURL       sql.NullString `db:"image_url"`
}

// Summary builds the denormalized view embedded in verdicts.
func (e *EquipmentDB) Summary() EquipmentSummary {
	return EquipmentSummary{
		ID:    e.ID,
		Name:  e.Name,
		Model: nullString(e.Model),
		Image: nullString(e.ImageURL),
	}
}

// EquipmentSummary is the equipment view embedded in a verdict.
// swagger:model EquipmentSummary
type EquipmentSummary struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Model *string `json:"model"`
	Image *string `json:"image"`
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
