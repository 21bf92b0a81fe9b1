package models

import "time"

// Origin tags written with analytics events
const (
	AnalyticsOriginAPI = "API"
)

// AnonymousSession is used when the caller sends no session id.
const AnonymousSession = "anonymous"

// AnalyticsEvent is an append-only record of one compatibility lookup.
type AnalyticsEvent struct {
	SourceEquipmentID int64     `json:"source_equipment_id" db:"source_equipment_id"`
	TargetEquipmentID int64     `json:"target_equipment_id" db:"target_equipment_id"`
	UserID            *string   `json:"user_id,omitempty" db:"user_id"`
	Source            string    `json:"source" db:"source"`
	SessionID         string    `json:"session_id" db:"session_id"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
