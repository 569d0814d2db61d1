package service

import (
	"context"
	"time"

	"frontdesk/internal/model"
	"frontdesk/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeTaxRuleRepo struct {
	rows  []model.TaxRule
	err   error
	calls int
}

func (r *fakeTaxRuleRepo) ListOrdered(context.Context) ([]model.TaxRule, error) {
	r.calls++
	return r.rows, r.err
}

type fakeCache struct {
	rows          []model.TaxRule
	hit           bool
	getErr        error
	sets          int
	invalidations int
}

func (c *fakeCache) Get(context.Context) ([]model.TaxRule, bool, error) {
	return c.rows, c.hit, c.getErr
}

func (c *fakeCache) Set(_ context.Context, rows []model.TaxRule) error {
	c.sets++
	c.rows, c.hit = rows, true
	return nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidations++
	c.rows, c.hit = nil, false
	return nil
}

type fakeAuditRepo struct {
	entries    []model.AuditLog
	err        error
	lastFilter repository.AuditListFilter
}

func (r *fakeAuditRepo) Log(_ context.Context, entry *model.AuditLog) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, filter repository.AuditListFilter) ([]model.AuditLog, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	r.lastFilter = filter
	var res []model.AuditLog
	for _, e := range r.entries {
		if (filter.Action == "" || e.Action == filter.Action) && (filter.EntityID == "" || e.EntityID == filter.EntityID) {
			res = append(res, e)
		}
	}
	return res, int64(len(res)), nil
}

type fakeSnapshotRepo struct {
	byReservation map[string]*model.ChargeSnapshot
	createErr     error
	findErr       error
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{byReservation: make(map[string]*model.ChargeSnapshot)}
}

func (r *fakeSnapshotRepo) Create(_ context.Context, snapshot *model.ChargeSnapshot) error {
	if r.createErr != nil {
		return r.createErr
	}
	snapshot.ID = uuid.New()
	snapshot.CreatedAt = time.Now()
	r.byReservation[snapshot.ReservationID] = snapshot
	return nil
}

func (r *fakeSnapshotRepo) FindByReservationID(_ context.Context, reservationID string) (*model.ChargeSnapshot, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	snapshot, ok := r.byReservation[reservationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return snapshot, nil
}

func (r *fakeSnapshotRepo) List(_ context.Context, filter repository.SnapshotListFilter) ([]model.ChargeSnapshot, int64, error) {
	var res []model.ChargeSnapshot
	for _, s := range r.byReservation {
		if filter.Status == "" || s.Status == filter.Status {
			res = append(res, *s)
		}
	}
	return res, int64(len(res)), nil
}

// fakeTxManager rolls the snapshot map back when fn fails
type fakeTxManager struct {
	snapshots *fakeSnapshotRepo
}

func (m *fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	saved := make(map[string]*model.ChargeSnapshot, len(m.snapshots.byReservation))
	for k, v := range m.snapshots.byReservation {
		saved[k] = v
	}
	if err := fn(ctx); err != nil {
		m.snapshots.byReservation = saved
		return err
	}
	return nil
}

type fakeNotifier struct {
	events []string
}

func (n *fakeNotifier) Notify(eventType string, _ interface{}) {
	n.events = append(n.events, eventType)
}

type fakePublisher struct {
	published []string
	err       error
}

func (p *fakePublisher) PublishSettled(_ context.Context, snapshot *model.ChargeSnapshot) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, snapshot.ReservationID)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

type fakeRevenueRepo struct {
	rows                      []repository.RevenueDataRow
	groupBy, from, to, status string
	calls                     int
}

func (r *fakeRevenueRepo) GetSettledRevenue(_ context.Context, groupBy, fromDate, toDate, status string) ([]repository.RevenueDataRow, error) {
	r.calls++
	r.groupBy, r.from, r.to, r.status = groupBy, fromDate, toDate, status
	return r.rows, nil
}

func vatRule() model.TaxRule {
	return model.TaxRule{ID: uuid.New(), Name: "VAT", IsEnabled: true, TaxType: "PERCENTAGE", Rate: dec("10"), AppliesTo: "ROOM_RATE", Position: 1}
}
