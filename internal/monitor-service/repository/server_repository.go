package repository

import (
	apperrors "VPS_Fleet_Monitor/internal/monitor-service/errors"
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ServerRepository interface {
	UpsertServer(ctx context.Context, server model.Server) (model.Server, error)
	CreateServer(ctx context.Context, server model.Server) (model.Server, error)
	GetServers(ctx context.Context) ([]model.Server, error)
	GetServerByName(ctx context.Context, name string) (model.Server, error)
	UpdateServer(ctx context.Context, updatedData model.Server) (model.Server, error)
	UpdateServerStatus(ctx context.Context, name string, status string, dataSource string) error
	DeleteServerByName(ctx context.Context, name string) error
}

type serverRepository struct {
	db *gorm.DB
}

func (s *serverRepository) UpsertServer(ctx context.Context, server model.Server) (model.Server, error) {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"ip_address", "port", "monitor_method", "monitor_interval",
			"encrypted_credentials", "location", "region", "seller", "price",
			"due_time", "buy_url", "updated_at",
		}),
	}).Create(&server)
	if result.Error != nil {
		return server, fmt.Errorf("ServerRepository.UpsertServer: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	result := s.db.WithContext(ctx).Create(&server)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return server, fmt.Errorf("ServerRepository.CreateServer: %w", apperrors.ErrServerNameAlreadyExists)
		}
		return server, fmt.Errorf("ServerRepository.CreateServer: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) GetServers(ctx context.Context) ([]model.Server, error) {
	var servers []model.Server
	result := s.db.WithContext(ctx).Order("name asc").Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetServers: %w", result.Error)
	}
	return servers, nil
}

func (s *serverRepository) GetServerByName(ctx context.Context, name string) (model.Server, error) {
	var server model.Server
	result := s.db.WithContext(ctx).First(&server, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return server, fmt.Errorf("ServerRepository.GetServerByName: %w", apperrors.ErrServerNotFound)
		}
		return server, fmt.Errorf("ServerRepository.GetServerByName: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) UpdateServer(ctx context.Context, updatedData model.Server) (model.Server, error) {
	var server model.Server
	result := s.db.WithContext(ctx).Model(&server).Clauses(clause.Returning{}).Where("name = ?", updatedData.Name).Updates(updatedData)
	if result.Error != nil {
		return server, fmt.Errorf("ServerRepository.UpdateServer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return server, fmt.Errorf("ServerRepository.UpdateServer: %w", apperrors.ErrServerNotFound)
	}
	return server, nil
}

// UpdateServerStatus flips the status and, when the change comes from a data
// source (agent or ssh), refreshes last_seen plus the source-specific column.
// Status-only callers (offline sweep, disconnects) pass an empty source so
// the staleness timestamps keep their real values. Repeated calls with the
// same status are harmless.
func (s *serverRepository) UpdateServerStatus(ctx context.Context, name string, status string, dataSource string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status": status,
	}
	switch dataSource {
	case model.DataSourceAgent:
		updates["last_seen"] = now
		updates["last_agent_seen"] = now
	case model.DataSourceSSH:
		updates["last_seen"] = now
		updates["last_ssh_check"] = now
	}
	result := s.db.WithContext(ctx).Model(&model.Server{}).Where("name = ?", name).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.UpdateServerStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.UpdateServerStatus: %w", apperrors.ErrServerNotFound)
	}
	return nil
}

func (s *serverRepository) DeleteServerByName(ctx context.Context, name string) error {
	result := s.db.WithContext(ctx).Where("name = ?", name).Delete(&model.Server{})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.DeleteServerByName: %w", result.Error)
	}
	return nil
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db: db,
	}
}
