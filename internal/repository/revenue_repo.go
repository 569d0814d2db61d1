package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RevenueDataRow is one period bucket of settled charges
type RevenueDataRow struct {
	Period       string          `gorm:"column:period"`
	Reservations int64           `gorm:"column:reservations"`
	RoomRevenue  decimal.Decimal `gorm:"column:room_revenue"`
	ExtraCharges decimal.Decimal `gorm:"column:extra_charges"`
	TotalTaxes   decimal.Decimal `gorm:"column:total_taxes"`
	TotalPrice   decimal.Decimal `gorm:"column:total_price"`
}

type RevenueRepository interface {
	GetSettledRevenue(ctx context.Context, groupBy, fromDate, toDate, status string) ([]RevenueDataRow, error)
}

type revenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

// GetSettledRevenue buckets snapshots by check-out day. fromDate and toDate are
// inclusive CalendarDates; the string comparison is valid because both sides
// are zero-padded YYYY-MM-DD. An empty status means every settled status.
func (r *revenueRepository) GetSettledRevenue(ctx context.Context, groupBy, fromDate, toDate, status string) ([]RevenueDataRow, error) {
	query := `
		SELECT
			TO_CHAR(DATE_TRUNC($1, s.check_out_date::date), 'YYYY-MM-DD') AS period,
			COUNT(*) AS reservations,
			COALESCE(SUM(s.room_rate), 0) AS room_revenue,
			COALESCE(SUM(s.extra_charges), 0) AS extra_charges,
			COALESCE(SUM(s.total_taxes), 0) AS total_taxes,
			COALESCE(SUM(s.total_price), 0) AS total_price
		FROM charge_snapshots s
		WHERE s.check_out_date >= $2
		  AND s.check_out_date <= $3
		  AND ($4 = '' OR s.status = $4)
		GROUP BY DATE_TRUNC($1, s.check_out_date::date)
		ORDER BY period
	`

	var rows []RevenueDataRow
	if err := GetDB(ctx, r.db).Raw(query, groupBy, fromDate, toDate, status).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query settled revenue: %w", err)
	}

	return rows, nil
}
