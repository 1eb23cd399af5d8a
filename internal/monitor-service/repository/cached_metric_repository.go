package repository

import (
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cachedMetricRepository keeps the newest sample per server in redis so that
// dashboard subscribe replies do not hit postgres. Inserts write through;
// reads fall back to the underlying repository on a miss.
type cachedMetricRepository struct {
	redis    *redis.Client
	repo     MetricRepository
	cacheTTL time.Duration
}

func (*cachedMetricRepository) latestSampleKey(serverName string) string {
	return fmt.Sprintf("latest_sample:%s", serverName)
}

func (c *cachedMetricRepository) InsertSample(ctx context.Context, sample model.MetricSample) (model.MetricSample, error) {
	inserted, err := c.repo.InsertSample(ctx, sample)
	if err != nil {
		return inserted, err
	}
	var buf bytes.Buffer
	if e := gob.NewEncoder(&buf).Encode(inserted); e == nil {
		c.redis.Set(ctx, c.latestSampleKey(inserted.ServerName), buf.Bytes(), c.cacheTTL)
	}
	return inserted, nil
}

func (c *cachedMetricRepository) GetHistory(ctx context.Context, serverName string, since time.Time) ([]model.MetricSample, error) {
	return c.repo.GetHistory(ctx, serverName, since)
}

func (c *cachedMetricRepository) GetLatestSample(ctx context.Context, serverName string) (model.MetricSample, bool, error) {
	data, err := c.redis.Get(ctx, c.latestSampleKey(serverName)).Bytes()
	if err == nil {
		var sample model.MetricSample
		if e := gob.NewDecoder(bytes.NewReader(data)).Decode(&sample); e == nil {
			return sample, true, nil
		}
	}
	sample, found, err := c.repo.GetLatestSample(ctx, serverName)
	if err != nil {
		return sample, found, fmt.Errorf("cachedMetricRepository.GetLatestSample: %w", err)
	}
	if found {
		var buf bytes.Buffer
		if e := gob.NewEncoder(&buf).Encode(sample); e == nil {
			c.redis.Set(ctx, c.latestSampleKey(serverName), buf.Bytes(), c.cacheTTL)
		}
	}
	return sample, found, nil
}

func NewCachedMetricRepository(redis *redis.Client, repo MetricRepository, cacheTTL time.Duration) MetricRepository {
	return &cachedMetricRepository{
		redis:    redis,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
