package model

import "time"

const (
	ConfigTypeString  = "string"
	ConfigTypeNumber  = "number"
	ConfigTypeBoolean = "boolean"
	ConfigTypeJSON    = "json"
)

type ConfigEntry struct {
	ConfigKey   string `gorm:"primaryKey"`
	ConfigValue string
	ConfigType  string
	UpdatedAt   time.Time
}

func (ConfigEntry) TableName() string {
	return "system_config"
}
