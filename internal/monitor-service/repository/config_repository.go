package repository

import (
	apperrors "VPS_Fleet_Monitor/internal/monitor-service/errors"
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepository interface {
	GetConfig(ctx context.Context, key string) (interface{}, error)
	SetConfig(ctx context.Context, key string, value string, configType string) error
}

type configRepository struct {
	db *gorm.DB
}

// GetConfig decodes the stored value according to its declared type:
// number -> float64, boolean -> bool, json -> interface{}, string -> string.
func (c *configRepository) GetConfig(ctx context.Context, key string) (interface{}, error) {
	var entry model.ConfigEntry
	result := c.db.WithContext(ctx).First(&entry, "config_key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ConfigRepository.GetConfig: %w", apperrors.ErrConfigKeyNotFound)
		}
		return nil, fmt.Errorf("ConfigRepository.GetConfig: %w", result.Error)
	}
	switch entry.ConfigType {
	case model.ConfigTypeNumber:
		v, err := strconv.ParseFloat(entry.ConfigValue, 64)
		if err != nil {
			return nil, fmt.Errorf("ConfigRepository.GetConfig: %w", err)
		}
		return v, nil
	case model.ConfigTypeBoolean:
		return entry.ConfigValue == "true", nil
	case model.ConfigTypeJSON:
		var v interface{}
		if err := json.Unmarshal([]byte(entry.ConfigValue), &v); err != nil {
			return nil, fmt.Errorf("ConfigRepository.GetConfig: %w", err)
		}
		return v, nil
	default:
		return entry.ConfigValue, nil
	}
}

func (c *configRepository) SetConfig(ctx context.Context, key string, value string, configType string) error {
	entry := model.ConfigEntry{
		ConfigKey:   key,
		ConfigValue: value,
		ConfigType:  configType,
	}
	result := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"config_value", "config_type", "updated_at"}),
	}).Create(&entry)
	if result.Error != nil {
		return fmt.Errorf("ConfigRepository.SetConfig: %w", result.Error)
	}
	return nil
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{
		db: db,
	}
}
