package response

import (
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"time"
)

type MetricSampleResponse struct {
	ServerName         string    `json:"server_name"`
	Timestamp          time.Time `json:"timestamp"`
	Platform           string    `json:"platform,omitempty"`
	PlatformVersion    string    `json:"platform_version,omitempty"`
	Arch               string    `json:"arch,omitempty"`
	CPUUsage           float64   `json:"cpu_usage"`
	CPUCores           int       `json:"cpu_cores,omitempty"`
	MemoryTotal        uint64    `json:"memory_total"`
	MemoryUsed         uint64    `json:"memory_used"`
	MemoryUsage        float64   `json:"memory_usage"`
	SwapTotal          uint64    `json:"swap_total"`
	SwapUsed           uint64    `json:"swap_used"`
	DiskTotal          uint64    `json:"disk_total"`
	DiskUsed           uint64    `json:"disk_used"`
	DiskUsage          float64   `json:"disk_usage"`
	NetworkInTransfer  uint64    `json:"network_in_transfer"`
	NetworkOutTransfer uint64    `json:"network_out_transfer"`
	NetworkInSpeed     uint64    `json:"network_in_speed"`
	NetworkOutSpeed    uint64    `json:"network_out_speed"`
	Load1              float64   `json:"load_1"`
	Load5              float64   `json:"load_5"`
	Load15             float64   `json:"load_15"`
	Uptime             uint64    `json:"uptime"`
	ProcessCount       int       `json:"process_count"`
	DataSource         string    `json:"data_source"`
}

func NewMetricSampleResponse(sample model.MetricSample) MetricSampleResponse {
	return MetricSampleResponse{
		ServerName:         sample.ServerName,
		Timestamp:          sample.Timestamp,
		Platform:           sample.Platform,
		PlatformVersion:    sample.PlatformVersion,
		Arch:               sample.Arch,
		CPUUsage:           sample.CPUUsage,
		CPUCores:           sample.CPUCores,
		MemoryTotal:        sample.MemoryTotal,
		MemoryUsed:         sample.MemoryUsed,
		MemoryUsage:        sample.MemoryUsage,
		SwapTotal:          sample.SwapTotal,
		SwapUsed:           sample.SwapUsed,
		DiskTotal:          sample.DiskTotal,
		DiskUsed:           sample.DiskUsed,
		DiskUsage:          sample.DiskUsage,
		NetworkInTransfer:  sample.NetworkInTransfer,
		NetworkOutTransfer: sample.NetworkOutTransfer,
		NetworkInSpeed:     sample.NetworkInSpeed,
		NetworkOutSpeed:    sample.NetworkOutSpeed,
		Load1:              sample.Load1,
		Load5:              sample.Load5,
		Load15:             sample.Load15,
		Uptime:             sample.Uptime,
		ProcessCount:       sample.ProcessCount,
		DataSource:         sample.DataSource,
	}
}
