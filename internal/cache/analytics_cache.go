package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pulsesurvey/internal/model"
)

// AnalyticsCache handles Redis caching of computed survey analytics.
// Entries are invalidated per organization whenever a new submission lands.
type AnalyticsCache interface {
	Get(ctx context.Context, organizationID, surveyTypeID string) (*model.SurveyAnalytics, error)
	Set(ctx context.Context, organizationID, surveyTypeID string, analytics *model.SurveyAnalytics) error
	InvalidateOrganization(ctx context.Context, organizationID string) error
}

type analyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalyticsCache creates a new analytics cache
func NewAnalyticsCache(client *redis.Client) AnalyticsCache {
	return &analyticsCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *analyticsCache) key(organizationID, surveyTypeID string) string {
	if surveyTypeID == "" {
		surveyTypeID = "legacy"
	}
	if organizationID == "" {
		organizationID = "all"
	}
	return fmt.Sprintf("analytics:%s:%s", organizationID, surveyTypeID)
}

func (c *analyticsCache) Get(ctx context.Context, organizationID, surveyTypeID string) (*model.SurveyAnalytics, error) {
	data, err := c.client.Get(ctx, c.key(organizationID, surveyTypeID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var analytics model.SurveyAnalytics
	if err := json.Unmarshal([]byte(data), &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (c *analyticsCache) Set(ctx context.Context, organizationID, surveyTypeID string, analytics *model.SurveyAnalytics) error {
	data, err := json.Marshal(analytics)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(organizationID, surveyTypeID), data, c.ttl).Err()
}

func (c *analyticsCache) InvalidateOrganization(ctx context.Context, organizationID string) error {
	if organizationID == "" {
		organizationID = "all"
	}
	pattern := fmt.Sprintf("analytics:%s:*", organizationID)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
