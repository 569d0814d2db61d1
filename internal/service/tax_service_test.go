package service

import (
	"context"
	"errors"
	"testing"

	"frontdesk/internal/apperror"
	"frontdesk/internal/model"
	"frontdesk/internal/websocket"
	"frontdesk/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveRulesReadsThroughCache(t *testing.T) {
	repo := &fakeTaxRuleRepo{rows: []model.TaxRule{vatRule()}}
	cache := &fakeCache{}
	svc := NewTaxService(repo, cache, &fakeAuditRepo{}, nil, logger.Nop{})

	rules, err := svc.ActiveRules(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "VAT", rules[0].Name)
	assert.True(t, rules[0].Enabled)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.sets)

	_, err = svc.ActiveRules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "second lookup should be served from cache")
}

func TestActiveRulesFallsBackWhenCacheFails(t *testing.T) {
	repo := &fakeTaxRuleRepo{rows: []model.TaxRule{vatRule()}}
	cache := &fakeCache{getErr: errors.New("connection refused")}
	svc := NewTaxService(repo, cache, &fakeAuditRepo{}, nil, logger.Nop{})

	rules, err := svc.ActiveRules(context.Background())
	require.NoError(t, err)
	assert.Len(t, rules, 1)
	assert.Equal(t, 1, repo.calls)
}

func TestActiveRulesWrapsRepositoryError(t *testing.T) {
	svc := NewTaxService(&fakeTaxRuleRepo{err: errors.New("db down")}, nil, &fakeAuditRepo{}, nil, logger.Nop{})

	_, err := svc.ActiveRules(context.Background())
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDBError, appErr.Code)
}

func TestRefreshInvalidatesAuditsAndNotifies(t *testing.T) {
	repo := &fakeTaxRuleRepo{rows: []model.TaxRule{vatRule()}}
	cache := &fakeCache{rows: []model.TaxRule{}, hit: true}
	audit := &fakeAuditRepo{}
	notifier := &fakeNotifier{}
	svc := NewTaxService(repo, cache, audit, notifier, logger.Nop{})

	rules, err := svc.Refresh(context.Background(), "user-7")
	require.NoError(t, err)

	require.Len(t, rules, 1)
	assert.Equal(t, "10.0000", rules[0].Rate)
	assert.Equal(t, 1, cache.invalidations)
	assert.Equal(t, 1, repo.calls)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, model.ActionRefreshTaxRules, audit.entries[0].Action)
	assert.Equal(t, "user-7", audit.entries[0].UserID)
	assert.JSONEq(t, `{"rules":1}`, audit.entries[0].Details)

	assert.Equal(t, []string{websocket.EventTaxRulesChanged}, notifier.events)
}

func TestRefreshSurvivesAuditFailure(t *testing.T) {
	repo := &fakeTaxRuleRepo{rows: []model.TaxRule{vatRule()}}
	svc := NewTaxService(repo, &fakeCache{}, &fakeAuditRepo{err: errors.New("audit down")}, nil, logger.Nop{})

	rules, err := svc.Refresh(context.Background(), "user-7")
	require.NoError(t, err)
	assert.Len(t, rules, 1)
}
