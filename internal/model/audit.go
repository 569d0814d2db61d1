package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionSettleReservation = "SETTLE_RESERVATION"
	ActionRefreshTaxRules   = "REFRESH_TAX_RULES"
)

// AuditLog tracks Who, What, and When for settlements and rule refreshes
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     string    `gorm:"type:varchar(100);index" json:"user_id"` // Token subject; empty for the scheduler
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string    `gorm:"type:varchar(100);index" json:"entity_id"`
	EntityName string    `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Details    string    `gorm:"type:jsonb" json:"details"` // Serialized JSON payload of the action
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
