package service

import (
	"context"
	"encoding/json"
	"time"

	"frontdesk/internal/model"
	"frontdesk/internal/repository"
	"frontdesk/internal/taxengine"
)

// Notifier pushes change hints to connected views (the websocket hub)
type Notifier interface {
	Notify(eventType string, payload interface{})
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, interface{}) {}

// --- Shared DTOs ---

type TaxLineResponse struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Rate      string `json:"rate"`
	Amount    string `json:"amount"`
	AppliesTo string `json:"applies_to"`
}

type BreakdownResponse struct {
	NightlyRate  string            `json:"nightly_rate"`
	Nights       int               `json:"nights"`
	RoomRate     string            `json:"room_rate"`
	ExtraCharges string            `json:"extra_charges"`
	Subtotal     string            `json:"subtotal"`
	Taxes        []TaxLineResponse `json:"taxes"`
	TotalTaxes   string            `json:"total_taxes"`
	GrandTotal   string            `json:"grand_total"`
}

// --- Mapping ---

func toTaxLineResponses(lines []taxengine.Line) []TaxLineResponse {
	res := make([]TaxLineResponse, 0, len(lines))
	for _, l := range lines {
		res = append(res, TaxLineResponse{
			Name:      l.Name,
			Type:      l.Type,
			Rate:      l.Rate.StringFixed(4),
			Amount:    l.Amount.StringFixed(2),
			AppliesTo: l.AppliesTo,
		})
	}
	return res
}

func toBreakdownResponse(b taxengine.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		NightlyRate:  b.NightlyRate.StringFixed(2),
		Nights:       b.Nights,
		RoomRate:     b.RoomRate.StringFixed(2),
		ExtraCharges: b.ExtraCharges.StringFixed(2),
		Subtotal:     b.Subtotal.StringFixed(2),
		Taxes:        toTaxLineResponses(b.Taxes),
		TotalTaxes:   b.TotalTaxes.StringFixed(2),
		GrandTotal:   b.GrandTotal.StringFixed(2),
	}
}

// writeAuditLog records one entry. Callers decide whether a failure is fatal.
func writeAuditLog(ctx context.Context, repo repository.AuditRepository, userID, action, entityID, entityName string, details interface{}) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	return repo.Log(ctx, &model.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(detailsJSON),
		CreatedAt:  time.Now(),
	})
}
