package repository

import (
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type RetentionRepository interface {
	PurgeMetricSamples(ctx context.Context, olderThan time.Time) (int64, error)
	PurgeConnectivityResults(ctx context.Context, olderThan time.Time) (int64, error)
	PurgeOperationLogs(ctx context.Context, olderThan time.Time) (int64, error)
}

type retentionRepository struct {
	db *gorm.DB
}

func (r *retentionRepository) PurgeMetricSamples(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("timestamp < ?", olderThan).Delete(&model.MetricSample{})
	if result.Error != nil {
		return 0, fmt.Errorf("RetentionRepository.PurgeMetricSamples: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *retentionRepository) PurgeConnectivityResults(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("timestamp < ?", olderThan).Delete(&model.ConnectivityResult{})
	if result.Error != nil {
		return 0, fmt.Errorf("RetentionRepository.PurgeConnectivityResults: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *retentionRepository) PurgeOperationLogs(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("timestamp < ?", olderThan).Delete(&model.OperationLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("RetentionRepository.PurgeOperationLogs: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func NewRetentionRepository(db *gorm.DB) RetentionRepository {
	return &retentionRepository{
		db: db,
	}
}
