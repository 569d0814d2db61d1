package service

import (
	"context"

	"frontdesk/internal/apperror"
	"frontdesk/internal/datemath"
	"frontdesk/internal/repository"
	"frontdesk/internal/taxengine"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

type RevenueDataPoint struct {
	Period       string `json:"period"`
	Reservations int64  `json:"reservations"`
	RoomRevenue  string `json:"room_revenue"`
	ExtraCharges string `json:"extra_charges"`
	TotalTaxes   string `json:"total_taxes"`
	TotalPrice   string `json:"total_price"`
}

type RevenueFilter struct {
	GroupBy  string // day, week, month, quarter, year
	FromDate string // YYYY-MM-DD, inclusive
	ToDate   string // YYYY-MM-DD, inclusive
	Status   string // settled status or empty
}

type RevenueReport struct {
	GroupBy      string             `json:"group_by"`
	FromDate     string             `json:"from_date"`
	ToDate       string             `json:"to_date"`
	Status       string             `json:"status,omitempty"`
	Points       []RevenueDataPoint `json:"points"`
	Reservations int64              `json:"reservations"`
	TotalTaxes   string             `json:"total_taxes"`
	TotalPrice   string             `json:"total_price"`
}

// --- Interface ---

type RevenueService interface {
	GetSettledRevenue(ctx context.Context, filter RevenueFilter) (*RevenueReport, error)
}

type revenueService struct {
	repo     repository.RevenueRepository
	calendar CalendarService
}

func NewRevenueService(repo repository.RevenueRepository, calendar CalendarService) RevenueService {
	return &revenueService{repo: repo, calendar: calendar}
}

// --- Implementation ---

// GetSettledRevenue sums frozen snapshots by check-out period. The range
// defaults to the current month up to today at the hotel.
func (s *revenueService) GetSettledRevenue(ctx context.Context, filter RevenueFilter) (*RevenueReport, error) {
	fields := make(map[string]string)

	groupBy := filter.GroupBy
	switch groupBy {
	case "day", "week", "month", "quarter", "year":
	case "":
		groupBy = "month"
	default:
		fields["group_by"] = "Group by must be one of day, week, month, quarter, year"
	}

	today := s.calendar.Today().Today
	from, to := filter.FromDate, filter.ToDate
	if to == "" {
		to = today
	}
	if from == "" {
		anchor, ok := datemath.Parse(to)
		if !ok {
			anchor, _ = datemath.Parse(today)
		}
		from = datemath.Format(anchor.AddDate(0, 0, 1-anchor.Day()))
	}

	from, to = datemath.Canonical(from), datemath.Canonical(to)
	if from == "" {
		fields["from_date"] = "Invalid from date"
	}
	if to == "" {
		fields["to_date"] = "Invalid to date"
	}
	if datemath.IsAfter(from, to) {
		fields["to_date"] = "To date cannot be before from date"
	}

	status := filter.Status
	if status != "" {
		status = taxengine.NormalizeStatus(status)
		if !taxengine.IsSettled(status) {
			fields["status"] = "Status must be a settled status"
		}
	}

	if len(fields) > 0 {
		return nil, apperror.Validation("invalid revenue filter", fields)
	}

	rows, err := s.repo.GetSettledRevenue(ctx, groupBy, from, to, status)
	if err != nil {
		return nil, apperror.New(apperror.CodeDBError, "failed to query settled revenue", err)
	}

	report := &RevenueReport{
		GroupBy:  groupBy,
		FromDate: from,
		ToDate:   to,
		Status:   status,
		Points:   make([]RevenueDataPoint, 0, len(rows)),
	}

	totalTaxes, totalPrice := decimal.Zero, decimal.Zero
	for _, r := range rows {
		report.Points = append(report.Points, RevenueDataPoint{
			Period:       r.Period,
			Reservations: r.Reservations,
			RoomRevenue:  r.RoomRevenue.StringFixed(2),
			ExtraCharges: r.ExtraCharges.StringFixed(2),
			TotalTaxes:   r.TotalTaxes.StringFixed(2),
			TotalPrice:   r.TotalPrice.StringFixed(2),
		})
		report.Reservations += r.Reservations
		totalTaxes = totalTaxes.Add(r.TotalTaxes)
		totalPrice = totalPrice.Add(r.TotalPrice)
	}
	report.TotalTaxes = totalTaxes.StringFixed(2)
	report.TotalPrice = totalPrice.StringFixed(2)

	return report, nil
}
