package service

import (
	"context"
	"fmt"
	"time"

	"frontdesk/internal/apperror"
	"frontdesk/internal/metrics"
	"frontdesk/internal/model"
	"frontdesk/internal/repository"
	"frontdesk/internal/taxengine"
	"frontdesk/internal/websocket"
	"frontdesk/pkg/logger"
)

// --- DTOs ---

type TaxRuleResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsEnabled bool   `json:"is_enabled"`
	TaxType   string `json:"tax_type"`
	Rate      string `json:"rate"`
	AppliesTo string `json:"applies_to"`
	Position  int    `json:"position"`
	UpdatedAt string `json:"updated_at"`
}

// --- Interface ---

// TaxRuleService is the only place rules are fetched. Calculators receive the
// resolved list and hold no rule state of their own.
type TaxRuleService interface {
	ActiveRules(ctx context.Context) ([]taxengine.Rule, error)
	ListRules(ctx context.Context) ([]TaxRuleResponse, error)
	Refresh(ctx context.Context, userID string) ([]TaxRuleResponse, error)
	Invalidate(ctx context.Context) error
}

type taxService struct {
	repo      repository.TaxRuleRepository
	cache     repository.TaxRuleCache
	auditRepo repository.AuditRepository
	notifier  Notifier
	logger    logger.Logger
}

func NewTaxService(
	repo repository.TaxRuleRepository,
	cache repository.TaxRuleCache,
	auditRepo repository.AuditRepository,
	notifier Notifier,
	log logger.Logger,
) TaxRuleService {
	if cache == nil {
		cache = repository.NoopTaxRuleCache{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &taxService{repo: repo, cache: cache, auditRepo: auditRepo, notifier: notifier, logger: log}
}

// --- Implementation ---

func (s *taxService) ActiveRules(ctx context.Context) ([]taxengine.Rule, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	rules := make([]taxengine.Rule, 0, len(rows))
	for _, r := range rows {
		rules = append(rules, r.EngineRule())
	}
	return rules, nil
}

func (s *taxService) ListRules(ctx context.Context) ([]TaxRuleResponse, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return toTaxRuleResponses(rows), nil
}

// Refresh drops the cached list, reloads it from the database and tells
// open views to re-fetch.
func (s *taxService) Refresh(ctx context.Context, userID string) ([]TaxRuleResponse, error) {
	if err := s.Invalidate(ctx); err != nil {
		s.logger.Error("failed to invalidate tax rule cache: %v", err)
	}

	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := writeAuditLog(ctx, s.auditRepo, userID, model.ActionRefreshTaxRules, "tax_rules", fmt.Sprintf("%d rules", len(rows)), map[string]int{"rules": len(rows)}); err != nil {
		s.logger.Error("failed to write audit log for tax rule refresh: %v", err)
	}

	s.notifier.Notify(websocket.EventTaxRulesChanged, map[string]int{"rules": len(rows)})
	return toTaxRuleResponses(rows), nil
}

func (s *taxService) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}

func (s *taxService) load(ctx context.Context) ([]model.TaxRule, error) {
	rows, hit, err := s.cache.Get(ctx)
	switch {
	case err != nil:
		metrics.TaxRuleCacheLookups.WithLabelValues("error").Inc()
		s.logger.Error("tax rule cache unavailable, reading database: %v", err)
	case hit:
		metrics.TaxRuleCacheLookups.WithLabelValues("hit").Inc()
		return rows, nil
	default:
		metrics.TaxRuleCacheLookups.WithLabelValues("miss").Inc()
	}

	rows, err = s.repo.ListOrdered(ctx)
	if err != nil {
		return nil, apperror.New(apperror.CodeDBError, "failed to fetch tax rules", err)
	}

	if err := s.cache.Set(ctx, rows); err != nil {
		s.logger.Error("failed to cache tax rules: %v", err)
	}
	return rows, nil
}

func toTaxRuleResponses(rows []model.TaxRule) []TaxRuleResponse {
	res := make([]TaxRuleResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, TaxRuleResponse{
			ID:        r.ID.String(),
			Name:      r.Name,
			IsEnabled: r.IsEnabled,
			TaxType:   r.TaxType,
			Rate:      r.Rate.StringFixed(4),
			AppliesTo: r.AppliesTo,
			Position:  r.Position,
			UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
		})
	}
	return res
}
