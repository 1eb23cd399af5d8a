package model

import "time"

type OperationLog struct {
	ID            uint `gorm:"primaryKey;autoIncrement"`
	OperationType string
	TargetType    string
	TargetID      string
	OperationData string
	Result        string
	ErrorMessage  string
	IPAddress     string
	UserAgent     string
	Timestamp     time.Time
}

func (OperationLog) TableName() string {
	return "operation_logs"
}
