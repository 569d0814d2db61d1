package service

import (
	"context"
	"strings"

	"frontdesk/internal/apperror"
	"frontdesk/internal/model"
	"frontdesk/internal/repository"
)

type AuditLogResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

type AuditLogFilter struct {
	Action   string
	EntityID string
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, filter AuditLogFilter, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

// GetAuditLogs returns settlement and refresh entries, newest first
func (s *auditService) GetAuditLogs(ctx context.Context, filter AuditLogFilter, page, limit int) ([]AuditLogResponse, int64, error) {
	action := strings.ToUpper(strings.TrimSpace(filter.Action))
	switch action {
	case "", model.ActionSettleReservation, model.ActionRefreshTaxRules:
	default:
		return nil, 0, apperror.Validation("invalid audit filter", map[string]string{
			"action": "Action must be SETTLE_RESERVATION or REFRESH_TAX_RULES",
		})
	}

	logs, total, err := s.repo.List(ctx, repository.AuditListFilter{
		Action:   action,
		EntityID: strings.TrimSpace(filter.EntityID),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, 0, apperror.New(apperror.CodeDBError, "failed to fetch audit logs", err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		userID := l.UserID
		if userID == "" {
			userID = "system"
		}

		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			UserID:     userID,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total, nil
}
