package model

import "time"

const (
	DataSourceAgent = "agent"
	DataSourceSSH   = "ssh"
)

// MetricSample is an append-only monitor_data row. Rows are never updated
// after insert; only the retention sweep deletes them.
type MetricSample struct {
	ID                 uint `gorm:"primaryKey;autoIncrement"`
	ServerName         string
	Timestamp          time.Time
	Platform           string
	PlatformVersion    string
	Arch               string
	CPUUsage           float64
	CPUCores           int
	MemoryTotal        uint64
	MemoryUsed         uint64
	MemoryUsage        float64
	SwapTotal          uint64
	SwapUsed           uint64
	DiskTotal          uint64
	DiskUsed           uint64
	DiskUsage          float64
	NetworkInTransfer  uint64
	NetworkOutTransfer uint64
	NetworkInSpeed     uint64
	NetworkOutSpeed    uint64
	Load1              float64
	Load5              float64
	Load15             float64
	Uptime             uint64
	ProcessCount       int
	DataSource         string
}

func (MetricSample) TableName() string {
	return "monitor_data"
}
