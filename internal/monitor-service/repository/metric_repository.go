package repository

import (
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type MetricRepository interface {
	InsertSample(ctx context.Context, sample model.MetricSample) (model.MetricSample, error)
	GetHistory(ctx context.Context, serverName string, since time.Time) ([]model.MetricSample, error)
	GetLatestSample(ctx context.Context, serverName string) (model.MetricSample, bool, error)
}

type metricRepository struct {
	db *gorm.DB
}

func (m *metricRepository) InsertSample(ctx context.Context, sample model.MetricSample) (model.MetricSample, error) {
	result := m.db.WithContext(ctx).Create(&sample)
	if result.Error != nil {
		return sample, fmt.Errorf("MetricRepository.InsertSample: %w", result.Error)
	}
	return sample, nil
}

func (m *metricRepository) GetHistory(ctx context.Context, serverName string, since time.Time) ([]model.MetricSample, error) {
	var samples []model.MetricSample
	result := m.db.WithContext(ctx).
		Where("server_name = ? AND timestamp > ?", serverName, since).
		Order("timestamp asc").
		Find(&samples)
	if result.Error != nil {
		return nil, fmt.Errorf("MetricRepository.GetHistory: %w", result.Error)
	}
	return samples, nil
}

// GetLatestSample returns the newest row for a server; the bool reports
// whether one exists.
func (m *metricRepository) GetLatestSample(ctx context.Context, serverName string) (model.MetricSample, bool, error) {
	var sample model.MetricSample
	result := m.db.WithContext(ctx).
		Where("server_name = ?", serverName).
		Order("timestamp desc").
		First(&sample)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return sample, false, nil
		}
		return sample, false, fmt.Errorf("MetricRepository.GetLatestSample: %w", result.Error)
	}
	return sample, true, nil
}

func NewMetricRepository(db *gorm.DB) MetricRepository {
	return &metricRepository{
		db: db,
	}
}
