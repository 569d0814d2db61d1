// Package taxengine computes ordered tax breakdowns for hotel stays.
package taxengine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TaxType enum constants
const (
	TypePercentage = "PERCENTAGE"
	TypeFixed      = "FIXED"
)

// AppliesTo enum constants
const (
	AppliesToRoomRate = "ROOM_RATE"
	AppliesToSubtotal = "SUBTOTAL"
	AppliesToTotal    = "TOTAL"
)

// Rule is one tax as configured by the backend. Order in a rule list is
// significant: SUBTOTAL and TOTAL bases see earlier results.
type Rule struct {
	Name      string          `json:"name"`
	Enabled   bool            `json:"is_enabled"`
	Type      string          `json:"tax_type"`
	Rate      decimal.Decimal `json:"rate"`
	AppliesTo string          `json:"applies_to"`
}

type Line struct {
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	AppliesTo string          `json:"applies_to"`
}

// Breakdown is computed fresh on every call and never persisted here.
type Breakdown struct {
	NightlyRate  decimal.Decimal `json:"nightly_rate"`
	Nights       int             `json:"nights"`
	RoomRate     decimal.Decimal `json:"room_rate"` // nightly rate * nights
	ExtraCharges decimal.Decimal `json:"extra_charges"`
	Subtotal     decimal.Decimal `json:"subtotal"` // room rate only, taxes never feed it
	Taxes        []Line          `json:"taxes"`
	TotalTaxes   decimal.Decimal `json:"total_taxes"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// Calculate applies rules in order to a stay of nights at roomRate per night.
//
// A zero rate, zero nights or an empty rule list yields a tax-free total.
// Disabled rules and rules with an unknown type or base are skipped.
// FIXED rates are charged per night.
func Calculate(roomRate decimal.Decimal, nights int, extraCharges decimal.Decimal, rules []Rule) Breakdown {
	n := decimal.NewFromInt(int64(nights))
	totalRoomRate := roomRate.Mul(n)

	b := Breakdown{
		NightlyRate:  roomRate,
		Nights:       nights,
		RoomRate:     totalRoomRate,
		ExtraCharges: extraCharges,
		Subtotal:     totalRoomRate,
		Taxes:        []Line{},
		TotalTaxes:   decimal.Zero,
	}

	if roomRate.IsZero() || nights == 0 || len(rules) == 0 {
		b.GrandTotal = totalRoomRate.Add(extraCharges)
		return b
	}

	subtotal := totalRoomRate
	totalTaxes := decimal.Zero

	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}

		var base decimal.Decimal
		switch strings.ToUpper(rule.AppliesTo) {
		case AppliesToRoomRate:
			base = totalRoomRate
		case AppliesToSubtotal:
			base = subtotal.Add(extraCharges)
		case AppliesToTotal:
			base = subtotal.Add(extraCharges).Add(totalTaxes)
		default:
			continue
		}

		var amount decimal.Decimal
		switch strings.ToUpper(rule.Type) {
		case TypePercentage:
			amount = base.Mul(rule.Rate).Div(decimal.NewFromInt(100))
		case TypeFixed:
			amount = rule.Rate.Mul(n)
		default:
			continue
		}
		amount = RoundMoney(amount)

		totalTaxes = totalTaxes.Add(amount)
		b.Taxes = append(b.Taxes, Line{
			Name:      rule.Name,
			Type:      strings.ToUpper(rule.Type),
			Rate:      rule.Rate,
			Amount:    amount,
			AppliesTo: strings.ToUpper(rule.AppliesTo),
		})
	}

	b.TotalTaxes = totalTaxes
	b.GrandTotal = totalRoomRate.Add(extraCharges).Add(totalTaxes)
	return b
}

var halfCent = decimal.New(5, -1)

// RoundMoney rounds to cents, half up: floor(cents + 0.5). Negative halves
// move toward zero, so -0.005 becomes 0.00.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Add(halfCent).Floor().Shift(-2)
}
