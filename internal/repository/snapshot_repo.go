package repository

import (
	"context"

	"frontdesk/internal/model"

	"gorm.io/gorm"
)

type SnapshotListFilter struct {
	Status string // CHECKED_OUT, CANCELLED, NO_SHOW or empty for all
	Page   int
	Limit  int
}

type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *model.ChargeSnapshot) error
	FindByReservationID(ctx context.Context, reservationID string) (*model.ChargeSnapshot, error)
	List(ctx context.Context, filter SnapshotListFilter) ([]model.ChargeSnapshot, int64, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Create(ctx context.Context, snapshot *model.ChargeSnapshot) error {
	return GetDB(ctx, r.db).Create(snapshot).Error
}

// FindByReservationID returns gorm.ErrRecordNotFound when nothing was settled yet
func (r *snapshotRepository) FindByReservationID(ctx context.Context, reservationID string) (*model.ChargeSnapshot, error) {
	var snapshot model.ChargeSnapshot
	if err := GetDB(ctx, r.db).First(&snapshot, "reservation_id = ?", reservationID).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *snapshotRepository) List(ctx context.Context, filter SnapshotListFilter) ([]model.ChargeSnapshot, int64, error) {
	var snapshots []model.ChargeSnapshot
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.ChargeSnapshot{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	fetchQuery := db.Model(&model.ChargeSnapshot{})
	if filter.Status != "" {
		fetchQuery = fetchQuery.Where("status = ?", filter.Status)
	}
	if err := fetchQuery.Order("settled_at desc").Offset(offset).Limit(filter.Limit).Find(&snapshots).Error; err != nil {
		return nil, 0, err
	}

	return snapshots, total, nil
}
