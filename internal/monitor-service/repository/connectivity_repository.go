package repository

import (
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type ConnectivityRepository interface {
	InsertResult(ctx context.Context, result model.ConnectivityResult) (model.ConnectivityResult, error)
	GetResults(ctx context.Context, serverName string, since time.Time) ([]model.ConnectivityResult, error)
}

type connectivityRepository struct {
	db *gorm.DB
}

func (c *connectivityRepository) InsertResult(ctx context.Context, result model.ConnectivityResult) (model.ConnectivityResult, error) {
	res := c.db.WithContext(ctx).Create(&result)
	if res.Error != nil {
		return result, fmt.Errorf("ConnectivityRepository.InsertResult: %w", res.Error)
	}
	return result, nil
}

func (c *connectivityRepository) GetResults(ctx context.Context, serverName string, since time.Time) ([]model.ConnectivityResult, error) {
	var results []model.ConnectivityResult
	query := c.db.WithContext(ctx).Where("timestamp > ?", since)
	if serverName != "" {
		query = query.Where("server_name = ?", serverName)
	}
	res := query.Order("timestamp desc").Find(&results)
	if res.Error != nil {
		return nil, fmt.Errorf("ConnectivityRepository.GetResults: %w", res.Error)
	}
	return results, nil
}

func NewConnectivityRepository(db *gorm.DB) ConnectivityRepository {
	return &connectivityRepository{
		db: db,
	}
}
