package sweep

import (
	"VPS_Fleet_Monitor/internal/monitor-service/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type PurgeStats struct {
	MetricSamples       int64
	ConnectivityResults int64
	OperationLogs       int64
}

type Retention interface {
	// Purge deletes time-series and log rows older than maxAge. The three
	// tables are purged independently: one failing table is reported but
	// never stops the others. Server records are never touched.
	Purge(ctx context.Context, maxAge time.Duration) (PurgeStats, error)
}

type retention struct {
	retentionRepo repository.RetentionRepository
	logger        *zap.Logger
}

func (r *retention) Purge(ctx context.Context, maxAge time.Duration) (PurgeStats, error) {
	cutoff := time.Now().Add(-maxAge)
	var stats PurgeStats
	var errs []error

	n, err := r.retentionRepo.PurgeMetricSamples(ctx, cutoff)
	if err != nil {
		err = fmt.Errorf("Retention.Purge monitor_data: %w", err)
		r.logger.Error("purge failed", zap.Error(err))
		errs = append(errs, err)
	}
	stats.MetricSamples = n

	n, err = r.retentionRepo.PurgeConnectivityResults(ctx, cutoff)
	if err != nil {
		err = fmt.Errorf("Retention.Purge connectivity_tests: %w", err)
		r.logger.Error("purge failed", zap.Error(err))
		errs = append(errs, err)
	}
	stats.ConnectivityResults = n

	n, err = r.retentionRepo.PurgeOperationLogs(ctx, cutoff)
	if err != nil {
		err = fmt.Errorf("Retention.Purge operation_logs: %w", err)
		r.logger.Error("purge failed", zap.Error(err))
		errs = append(errs, err)
	}
	stats.OperationLogs = n

	return stats, errors.Join(errs...)
}

func NewRetention(retentionRepo repository.RetentionRepository, logger *zap.Logger) Retention {
	return &retention{
		retentionRepo: retentionRepo,
		logger:        logger,
	}
}
