package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeSnapshot freezes what a reservation was charged when it reached a
// settled status. Once written it is the authoritative total and is never
// recomputed from current tax rules.
type ChargeSnapshot struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReservationID string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"reservation_id"` // Backend reservation reference
	Status        string          `gorm:"type:varchar(20);not null;index" json:"status"`                // CHECKED_OUT, CANCELLED, NO_SHOW
	CheckInDate   string          `gorm:"type:varchar(10);not null" json:"check_in_date"`               // YYYY-MM-DD, never a timestamp
	CheckOutDate  string          `gorm:"type:varchar(10);not null" json:"check_out_date"`
	Nights        int             `gorm:"not null" json:"nights"`
	NightlyRate   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"nightly_rate"`
	RoomRate      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"room_rate"`
	ExtraCharges  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"extra_charges"`
	TotalTaxes    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total_taxes"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total_price"`
	TaxLines      string          `gorm:"type:jsonb" json:"tax_lines"` // Serialized []taxengine.Line in evaluation order
	SettledBy     string          `gorm:"type:varchar(100)" json:"settled_by"`
	SettledAt     time.Time       `gorm:"not null;index" json:"settled_at"`
	CreatedAt     time.Time       `json:"created_at"`
}
