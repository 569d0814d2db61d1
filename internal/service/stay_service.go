package service

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/internal/apperror"
	"frontdesk/internal/datemath"
	"frontdesk/internal/metrics"
	"frontdesk/internal/repository"
	"frontdesk/internal/taxengine"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Rule list origins reported on a quote
const (
	RulesSourceConfigured = "configured"
	RulesSourceRequest    = "request"
)

// --- DTOs ---

type StayRequest struct {
	CheckInDate       string `json:"check_in_date"`
	CheckOutDate      string `json:"check_out_date"`
	CheckInTime       string `json:"check_in_time"`
	CheckOutTime      string `json:"check_out_time"`
	SkipPastDateCheck bool   `json:"skip_past_date_check"`
}

type QuoteRequest struct {
	StayRequest
	RoomRate     decimal.Decimal  `json:"room_rate" swaggertype:"string"`
	ExtraCharges decimal.Decimal  `json:"extra_charges" swaggertype:"string"`
	Rules        []taxengine.Rule `json:"rules"` // nil means the configured rules
}

type QuoteResponse struct {
	CheckInDate  string            `json:"check_in_date"`
	CheckOutDate string            `json:"check_out_date"`
	Nights       int               `json:"nights"`
	RulesSource  string            `json:"rules_source"`
	Breakdown    BreakdownResponse `json:"breakdown"`
}

type ReservationTotalRequest struct {
	ReservationID string           `json:"reservation_id"`
	Status        string           `json:"status" binding:"required"`
	CheckInDate   string           `json:"check_in_date" binding:"omitempty,ymd"` // required for active statuses
	CheckOutDate  string           `json:"check_out_date" binding:"omitempty,ymd"`
	RoomRate      decimal.Decimal  `json:"room_rate" swaggertype:"string"`
	ExtraCharges  decimal.Decimal  `json:"extra_charges" swaggertype:"string"`
	TotalPrice    *decimal.Decimal `json:"total_price,omitempty" swaggertype:"string"` // stored total, used for settled reservations without a snapshot
}

type ReservationTotalResponse struct {
	ReservationID string             `json:"reservation_id,omitempty"`
	Status        string             `json:"status"`
	Source        string             `json:"source"`
	Amount        string             `json:"amount"`
	Breakdown     *BreakdownResponse `json:"breakdown,omitempty"`
}

// --- Interface ---

type StayService interface {
	Validate(req StayRequest) datemath.StayValidation
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error)
	ReservationTotal(ctx context.Context, req ReservationTotalRequest) (*ReservationTotalResponse, error)
}

type stayService struct {
	taxService   TaxRuleService
	snapshotRepo repository.SnapshotRepository
	timezone     string
	clock        datemath.Clock
}

func NewStayService(
	taxService TaxRuleService,
	snapshotRepo repository.SnapshotRepository,
	timezone string,
	clock datemath.Clock,
) StayService {
	if timezone == "" {
		timezone = datemath.DefaultTimezone
	}
	if clock == nil {
		clock = datemath.SystemClock{}
	}
	return &stayService{taxService: taxService, snapshotRepo: snapshotRepo, timezone: timezone, clock: clock}
}

// --- Implementation ---

func (s *stayService) Validate(req StayRequest) datemath.StayValidation {
	return datemath.ValidateStayAt(datemath.StayInput{
		CheckInDate:       req.CheckInDate,
		CheckOutDate:      req.CheckOutDate,
		CheckInTime:       req.CheckInTime,
		CheckOutTime:      req.CheckOutTime,
		Timezone:          s.timezone,
		SkipPastDateCheck: req.SkipPastDateCheck,
	}, s.clock.Now())
}

func (s *stayService) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	result := s.Validate(req.StayRequest)
	if !result.OK {
		metrics.Quotes.WithLabelValues("invalid").Inc()
		return nil, apperror.Validation("invalid stay", result.Errors)
	}

	fields := validateAmounts(req.RoomRate, req.ExtraCharges)
	for i, rule := range req.Rules {
		if rule.Rate.IsNegative() {
			fields[fmt.Sprintf("rules[%d].rate", i)] = "Tax rate cannot be negative"
		}
	}
	if len(fields) > 0 {
		metrics.Quotes.WithLabelValues("invalid").Inc()
		return nil, apperror.Validation("invalid amounts", fields)
	}

	rules := req.Rules
	source := RulesSourceRequest
	if rules == nil {
		var err error
		if rules, err = s.taxService.ActiveRules(ctx); err != nil {
			return nil, err
		}
		source = RulesSourceConfigured
	}

	checkIn := datemath.Canonical(req.CheckInDate)
	checkOut := datemath.Canonical(req.CheckOutDate)
	nights := datemath.NightsBetween(checkIn, checkOut)
	breakdown := taxengine.Calculate(req.RoomRate, nights, req.ExtraCharges, rules)

	metrics.Quotes.WithLabelValues("ok").Inc()
	return &QuoteResponse{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Nights:       nights,
		RulesSource:  source,
		Breakdown:    toBreakdownResponse(breakdown),
	}, nil
}

// ReservationTotal shows the frozen amount for settled reservations and a
// live computation against current rules for all others.
func (s *stayService) ReservationTotal(ctx context.Context, req ReservationTotalRequest) (*ReservationTotalResponse, error) {
	status := taxengine.NormalizeStatus(req.Status)
	if !taxengine.IsKnownStatus(status) {
		return nil, apperror.New(apperror.CodeInvalidStatus, req.Status, apperror.ErrUnknownStatus)
	}

	resp := &ReservationTotalResponse{ReservationID: req.ReservationID, Status: status}

	if taxengine.IsSettled(status) {
		stored, err := s.storedTotal(ctx, req)
		if err != nil {
			return nil, err
		}
		total := taxengine.ResolveTotal(status, stored, nil)
		resp.Source = total.Source
		resp.Amount = total.Amount.StringFixed(2)
		return resp, nil
	}

	fields := validateAmounts(req.RoomRate, req.ExtraCharges)
	if req.CheckInDate == "" {
		fields[datemath.FieldCheckInDate] = "Check-in date is required"
	}
	if req.CheckOutDate == "" {
		fields[datemath.FieldCheckOutDate] = "Check-out date is required"
	}
	if len(fields) > 0 {
		return nil, apperror.Validation("invalid reservation", fields)
	}

	rules, err := s.taxService.ActiveRules(ctx)
	if err != nil {
		return nil, err
	}

	total := taxengine.ResolveTotal(status, decimal.Zero, func() taxengine.Breakdown {
		nights := datemath.NightsBetween(req.CheckInDate, req.CheckOutDate)
		return taxengine.Calculate(req.RoomRate, nights, req.ExtraCharges, rules)
	})

	breakdown := toBreakdownResponse(*total.Breakdown)
	resp.Source = total.Source
	resp.Amount = total.Amount.StringFixed(2)
	resp.Breakdown = &breakdown
	return resp, nil
}

// storedTotal prefers the snapshot written at settlement over the caller's figure
func (s *stayService) storedTotal(ctx context.Context, req ReservationTotalRequest) (decimal.Decimal, error) {
	if req.ReservationID != "" {
		snapshot, err := s.snapshotRepo.FindByReservationID(ctx, req.ReservationID)
		switch {
		case err == nil:
			return snapshot.TotalPrice, nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return decimal.Zero, apperror.New(apperror.CodeDBError, "failed to fetch charge snapshot", err)
		}
	}

	if req.TotalPrice != nil {
		return *req.TotalPrice, nil
	}

	return decimal.Zero, apperror.Validation("settled reservation has no stored total", map[string]string{
		"total_price": "Stored total is required for a settled reservation without a snapshot",
	})
}

func validateAmounts(roomRate, extraCharges decimal.Decimal) map[string]string {
	fields := make(map[string]string)
	if roomRate.IsNegative() {
		fields["room_rate"] = "Room rate cannot be negative"
	}
	if extraCharges.IsNegative() {
		fields["extra_charges"] = "Extra charges cannot be negative"
	}
	return fields
}
