package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"frontdesk/internal/apperror"
	"frontdesk/internal/datemath"
	"frontdesk/internal/events"
	"frontdesk/internal/metrics"
	"frontdesk/internal/model"
	"frontdesk/internal/repository"
	"frontdesk/internal/taxengine"
	"frontdesk/internal/websocket"
	"frontdesk/pkg/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type SettleRequest struct {
	Status       string          `json:"status" binding:"required"`
	CheckInDate  string          `json:"check_in_date" binding:"required,ymd"`
	CheckOutDate string          `json:"check_out_date" binding:"required,ymd"`
	RoomRate     decimal.Decimal `json:"room_rate" swaggertype:"string"`
	ExtraCharges decimal.Decimal `json:"extra_charges" swaggertype:"string"`
}

type SnapshotResponse struct {
	ID            string            `json:"id"`
	ReservationID string            `json:"reservation_id"`
	Status        string            `json:"status"`
	CheckInDate   string            `json:"check_in_date"`
	CheckOutDate  string            `json:"check_out_date"`
	Nights        int               `json:"nights"`
	NightlyRate   string            `json:"nightly_rate"`
	RoomRate      string            `json:"room_rate"`
	ExtraCharges  string            `json:"extra_charges"`
	Taxes         []TaxLineResponse `json:"taxes"`
	TotalTaxes    string            `json:"total_taxes"`
	TotalPrice    string            `json:"total_price"`
	SettledBy     string            `json:"settled_by"`
	SettledAt     string            `json:"settled_at"`
}

// --- Interface ---

// SettlementService freezes a reservation's charges when it reaches a
// settled status. Settling twice returns the first snapshot unchanged.
type SettlementService interface {
	Settle(ctx context.Context, reservationID string, req SettleRequest, userID string) (*SnapshotResponse, bool, error)
	GetSnapshot(ctx context.Context, reservationID string) (*SnapshotResponse, error)
	ListSnapshots(ctx context.Context, status string, page, limit int) ([]SnapshotResponse, int64, error)
}

type settlementService struct {
	snapshotRepo repository.SnapshotRepository
	auditRepo    repository.AuditRepository
	txManager    repository.TransactionManager
	taxService   TaxRuleService
	publisher    events.SettlementPublisher
	notifier     Notifier
	logger       logger.Logger
}

func NewSettlementService(
	snapshotRepo repository.SnapshotRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	taxService TaxRuleService,
	publisher events.SettlementPublisher,
	notifier Notifier,
	log logger.Logger,
) SettlementService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &settlementService{
		snapshotRepo: snapshotRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		taxService:   taxService,
		publisher:    publisher,
		notifier:     notifier,
		logger:       log,
	}
}

// --- Implementation ---

func (s *settlementService) Settle(ctx context.Context, reservationID string, req SettleRequest, userID string) (*SnapshotResponse, bool, error) {
	if reservationID == "" {
		return nil, false, apperror.Validation("reservation id is required", map[string]string{"reservation_id": "Reservation id is required"})
	}

	status := taxengine.NormalizeStatus(req.Status)
	if !taxengine.IsKnownStatus(status) {
		return nil, false, apperror.New(apperror.CodeInvalidStatus, req.Status, apperror.ErrUnknownStatus)
	}
	if !taxengine.IsSettled(status) {
		return nil, false, apperror.New(apperror.CodeInvalidStatus, status, apperror.ErrNotSettled)
	}

	nights, err := datemath.StayNights(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, false, apperror.Validation("invalid stay dates", stayDateFields(req.CheckInDate, req.CheckOutDate, err))
	}
	if fields := validateAmounts(req.RoomRate, req.ExtraCharges); len(fields) > 0 {
		return nil, false, apperror.Validation("invalid amounts", fields)
	}

	rules, err := s.taxService.ActiveRules(ctx)
	if err != nil {
		return nil, false, err
	}
	breakdown := taxengine.Calculate(req.RoomRate, nights, req.ExtraCharges, rules)

	taxLines, err := json.Marshal(breakdown.Taxes)
	if err != nil {
		return nil, false, apperror.New(apperror.CodeInternal, "failed to encode tax lines", err)
	}

	var snapshot *model.ChargeSnapshot
	created := false

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.snapshotRepo.FindByReservationID(txCtx, reservationID)
		if err == nil {
			snapshot = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.CodeDBError, "failed to fetch charge snapshot", err)
		}

		snapshot = &model.ChargeSnapshot{
			ReservationID: reservationID,
			Status:        status,
			CheckInDate:   datemath.Canonical(req.CheckInDate),
			CheckOutDate:  datemath.Canonical(req.CheckOutDate),
			Nights:        breakdown.Nights,
			NightlyRate:   breakdown.NightlyRate,
			RoomRate:      breakdown.RoomRate,
			ExtraCharges:  breakdown.ExtraCharges,
			TotalTaxes:    breakdown.TotalTaxes,
			TotalPrice:    breakdown.GrandTotal,
			TaxLines:      string(taxLines),
			SettledBy:     userID,
			SettledAt:     time.Now().UTC(),
		}
		if err := s.snapshotRepo.Create(txCtx, snapshot); err != nil {
			return apperror.New(apperror.CodeDBError, "failed to create charge snapshot", err)
		}

		details := map[string]string{
			"status":      status,
			"total_price": breakdown.GrandTotal.StringFixed(2),
		}
		if err := writeAuditLog(txCtx, s.auditRepo, userID, model.ActionSettleReservation, reservationID, status, details); err != nil {
			return apperror.New(apperror.CodeDBError, "failed to write audit log", err)
		}

		created = true
		return nil
	})
	if err != nil {
		// A concurrent settle may have won the unique index
		existing, findErr := s.snapshotRepo.FindByReservationID(ctx, reservationID)
		if findErr != nil {
			return nil, false, err
		}
		snapshot, created = existing, false
	}

	metrics.Settlements.WithLabelValues(snapshot.Status, strconv.FormatBool(created)).Inc()

	if created {
		if err := s.publisher.PublishSettled(ctx, snapshot); err != nil {
			s.logger.Error("settlement of %s committed but event publish failed: %v", reservationID, err)
		}
		s.notifier.Notify(websocket.EventReservationSettled, map[string]string{
			"reservation_id": snapshot.ReservationID,
			"status":         snapshot.Status,
			"total_price":    snapshot.TotalPrice.StringFixed(2),
		})
		s.logger.Info("reservation %s settled as %s by %s", reservationID, status, userID)
	}

	res := s.toSnapshotResponse(snapshot)
	return &res, created, nil
}

func (s *settlementService) GetSnapshot(ctx context.Context, reservationID string) (*SnapshotResponse, error) {
	snapshot, err := s.snapshotRepo.FindByReservationID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrSnapshotNotFound
		}
		return nil, apperror.New(apperror.CodeDBError, "failed to fetch charge snapshot", err)
	}
	res := s.toSnapshotResponse(snapshot)
	return &res, nil
}

func (s *settlementService) ListSnapshots(ctx context.Context, status string, page, limit int) ([]SnapshotResponse, int64, error) {
	if status != "" {
		status = taxengine.NormalizeStatus(status)
		if !taxengine.IsSettled(status) {
			return nil, 0, apperror.New(apperror.CodeInvalidStatus, status, apperror.ErrNotSettled)
		}
	}

	snapshots, total, err := s.snapshotRepo.List(ctx, repository.SnapshotListFilter{Status: status, Page: page, Limit: limit})
	if err != nil {
		return nil, 0, apperror.New(apperror.CodeDBError, "failed to list charge snapshots", err)
	}

	res := make([]SnapshotResponse, 0, len(snapshots))
	for i := range snapshots {
		res = append(res, s.toSnapshotResponse(&snapshots[i]))
	}
	return res, total, nil
}

func (s *settlementService) toSnapshotResponse(snapshot *model.ChargeSnapshot) SnapshotResponse {
	var lines []taxengine.Line
	if snapshot.TaxLines != "" {
		if err := json.Unmarshal([]byte(snapshot.TaxLines), &lines); err != nil {
			s.logger.Error("snapshot %s has unreadable tax lines: %v", snapshot.ReservationID, err)
		}
	}

	return SnapshotResponse{
		ID:            snapshot.ID.String(),
		ReservationID: snapshot.ReservationID,
		Status:        snapshot.Status,
		CheckInDate:   snapshot.CheckInDate,
		CheckOutDate:  snapshot.CheckOutDate,
		Nights:        snapshot.Nights,
		NightlyRate:   snapshot.NightlyRate.StringFixed(2),
		RoomRate:      snapshot.RoomRate.StringFixed(2),
		ExtraCharges:  snapshot.ExtraCharges.StringFixed(2),
		Taxes:         toTaxLineResponses(lines),
		TotalTaxes:    snapshot.TotalTaxes.StringFixed(2),
		TotalPrice:    snapshot.TotalPrice.StringFixed(2),
		SettledBy:     snapshot.SettledBy,
		SettledAt:     snapshot.SettledAt.Format(time.RFC3339),
	}
}

func stayDateFields(checkIn, checkOut string, err error) map[string]string {
	if errors.Is(err, datemath.ErrInvalidRange) {
		return map[string]string{datemath.FieldCheckOutDate: "Check-out date must be after check-in date"}
	}

	fields := make(map[string]string)
	if _, err := datemath.ParseStrict(checkIn); err != nil {
		fields[datemath.FieldCheckInDate] = "Check-in date is invalid"
	}
	if _, err := datemath.ParseStrict(checkOut); err != nil {
		fields[datemath.FieldCheckOutDate] = "Check-out date is invalid"
	}
	return fields
}
