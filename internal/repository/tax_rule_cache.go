package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"frontdesk/internal/model"
	"frontdesk/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	taxRulesKey        = "frontdesk:tax_rules:ordered"
	defaultTaxRulesTTL = 5 * time.Minute
)

// TaxRuleCache holds the ordered rule list between DB reads
type TaxRuleCache interface {
	Get(ctx context.Context) ([]model.TaxRule, bool, error)
	Set(ctx context.Context, rules []model.TaxRule) error
	Invalidate(ctx context.Context) error
}

// RedisTaxRuleCache implements TaxRuleCache using Redis
type RedisTaxRuleCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisTaxRuleCache(client *redis.Client, ttl time.Duration, log logger.Logger) *RedisTaxRuleCache {
	if ttl <= 0 {
		ttl = defaultTaxRulesTTL
	}
	return &RedisTaxRuleCache{client: client, ttl: ttl, logger: log}
}

func (c *RedisTaxRuleCache) Get(ctx context.Context) ([]model.TaxRule, bool, error) {
	data, err := c.client.Get(ctx, taxRulesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.Debug("tax rules cache miss")
		return nil, false, nil
	}
	if err != nil {
		c.logger.Error("tax rules cache get error: %v", err)
		return nil, false, err
	}

	var rules []model.TaxRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, false, err
	}

	c.logger.Debug("tax rules cache hit (%d rules)", len(rules))
	return rules, true, nil
}

func (c *RedisTaxRuleCache) Set(ctx context.Context, rules []model.TaxRule) error {
	data, err := json.Marshal(rules)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, taxRulesKey, data, c.ttl).Err(); err != nil {
		c.logger.Error("tax rules cache set error: %v", err)
		return err
	}
	return nil
}

func (c *RedisTaxRuleCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, taxRulesKey).Err()
}

// NoopTaxRuleCache is used when no Redis address is configured
type NoopTaxRuleCache struct{}

func (NoopTaxRuleCache) Get(context.Context) ([]model.TaxRule, bool, error) { return nil, false, nil }
func (NoopTaxRuleCache) Set(context.Context, []model.TaxRule) error          { return nil }
func (NoopTaxRuleCache) Invalidate(context.Context) error                    { return nil }
