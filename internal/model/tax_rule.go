package model

import (
	"time"

	"frontdesk/internal/taxengine"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRule is a row of the backend-owned tax configuration. This service
// only reads it, in Position order.
type TaxRule struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	IsEnabled bool            `gorm:"not null;default:true;index" json:"is_enabled"`
	TaxType   string          `gorm:"type:varchar(20);not null" json:"tax_type"`   // PERCENTAGE, FIXED
	Rate      decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"rate"`     // 10 = 10% for PERCENTAGE, amount per night for FIXED
	AppliesTo string          `gorm:"type:varchar(20);not null" json:"applies_to"` // ROOM_RATE, SUBTOTAL, TOTAL
	Position  int             `gorm:"not null;default:0;index" json:"position"`    // Evaluation order, ascending
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// EngineRule converts the row into the calculator's rule shape
func (r TaxRule) EngineRule() taxengine.Rule {
	return taxengine.Rule{
		Name:      r.Name,
		Enabled:   r.IsEnabled,
		Type:      r.TaxType,
		Rate:      r.Rate,
		AppliesTo: r.AppliesTo,
	}
}
