package repository

import (
	"context"

	"frontdesk/internal/model"

	"gorm.io/gorm"
)

// TaxRuleRepository reads the backend's tax configuration. There are no
// write methods: rule administration belongs to the backend.
type TaxRuleRepository interface {
	ListOrdered(ctx context.Context) ([]model.TaxRule, error)
}

type taxRuleRepository struct {
	db *gorm.DB
}

func NewTaxRuleRepository(db *gorm.DB) TaxRuleRepository {
	return &taxRuleRepository{db: db}
}

// ListOrdered returns every rule, enabled or not, in evaluation order
func (r *taxRuleRepository) ListOrdered(ctx context.Context) ([]model.TaxRule, error) {
	var rules []model.TaxRule
	if err := GetDB(ctx, r.db).Order("position ASC").Order("created_at ASC").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}
