package service

import (
	apperrors "VPS_Fleet_Monitor/internal/monitor-service/errors"
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"VPS_Fleet_Monitor/internal/monitor-service/repository"
	"context"
	"fmt"
	"time"
)

// MetricPayload is the flat metric envelope pushed by agents over the live
// connection and by the REST ingest endpoint.
type MetricPayload struct {
	ServerName         string    `json:"server_name,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
	Platform           string    `json:"platform,omitempty"`
	PlatformVersion    string    `json:"platform_version,omitempty"`
	Arch               string    `json:"arch,omitempty"`
	CPUUsage           float64   `json:"cpu_usage"`
	CPUCores           int       `json:"cpu_cores,omitempty"`
	MemoryTotal        uint64    `json:"memory_total,omitempty"`
	MemoryUsed         uint64    `json:"memory_used,omitempty"`
	MemoryUsage        float64   `json:"memory_usage"`
	SwapTotal          uint64    `json:"swap_total,omitempty"`
	SwapUsed           uint64    `json:"swap_used,omitempty"`
	DiskTotal          uint64    `json:"disk_total,omitempty"`
	DiskUsed           uint64    `json:"disk_used,omitempty"`
	DiskUsage          float64   `json:"disk_usage"`
	NetworkInTransfer  uint64    `json:"network_in_transfer,omitempty"`
	NetworkOutTransfer uint64    `json:"network_out_transfer,omitempty"`
	NetworkInSpeed     uint64    `json:"network_in_speed,omitempty"`
	NetworkOutSpeed    uint64    `json:"network_out_speed,omitempty"`
	Load1              float64   `json:"load_1"`
	Load5              float64   `json:"load_5"`
	Load15             float64   `json:"load_15"`
	Uptime             uint64    `json:"uptime,omitempty"`
	ProcessCount       int       `json:"process_count,omitempty"`
	DataSource         string    `json:"data_source,omitempty"`
}

// PayloadFromSample rebuilds the wire envelope for a stored sample, used
// when pushing stored data back out to dashboards.
func PayloadFromSample(sample model.MetricSample) MetricPayload {
	return MetricPayload{
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

type IngestService interface {
	// Ingest validates and persists a metric payload for serverName, then
	// flips the server online. It returns only after both writes succeeded;
	// callers broadcast afterwards, never before.
	Ingest(ctx context.Context, serverName string, payload MetricPayload) (model.MetricSample, error)
	LatestSample(ctx context.Context, serverName string) (model.MetricSample, bool, error)
}

type ingestService struct {
	serverRepo repository.ServerRepository
	metricRepo repository.MetricRepository
}

func (s *ingestService) Ingest(ctx context.Context, serverName string, payload MetricPayload) (model.MetricSample, error) {
	if payload.Timestamp.IsZero() {
		return model.MetricSample{}, fmt.Errorf("IngestService.Ingest: missing timestamp: %w", apperrors.ErrInvalidPayload)
	}
	if payload.ServerName != "" && payload.ServerName != serverName {
		return model.MetricSample{}, fmt.Errorf("IngestService.Ingest: server name mismatch: %w", apperrors.ErrInvalidPayload)
	}
	source := payload.DataSource
	if source == "" {
		source = model.DataSourceAgent
	}
	if source != model.DataSourceAgent && source != model.DataSourceSSH {
		return model.MetricSample{}, fmt.Errorf("IngestService.Ingest: unknown data source %q: %w", source, apperrors.ErrInvalidPayload)
	}

	sample := model.MetricSample{
		ServerName:         serverName,
		Timestamp:          payload.Timestamp,
		Platform:           payload.Platform,
		PlatformVersion:    payload.PlatformVersion,
		Arch:               payload.Arch,
		CPUUsage:           payload.CPUUsage,
		CPUCores:           payload.CPUCores,
		MemoryTotal:        payload.MemoryTotal,
		MemoryUsed:         payload.MemoryUsed,
		MemoryUsage:        payload.MemoryUsage,
		SwapTotal:          payload.SwapTotal,
		SwapUsed:           payload.SwapUsed,
		DiskTotal:          payload.DiskTotal,
		DiskUsed:           payload.DiskUsed,
		DiskUsage:          payload.DiskUsage,
		NetworkInTransfer:  payload.NetworkInTransfer,
		NetworkOutTransfer: payload.NetworkOutTransfer,
		NetworkInSpeed:     payload.NetworkInSpeed,
		NetworkOutSpeed:    payload.NetworkOutSpeed,
		Load1:              payload.Load1,
		Load5:              payload.Load5,
		Load15:             payload.Load15,
		Uptime:             payload.Uptime,
		ProcessCount:       payload.ProcessCount,
		DataSource:         source,
	}
	inserted, err := s.metricRepo.InsertSample(ctx, sample)
	if err != nil {
		return model.MetricSample{}, fmt.Errorf("IngestService.Ingest: %w", err)
	}
	if err = s.serverRepo.UpdateServerStatus(ctx, serverName, model.ServerStatusOnline, source); err != nil {
		return model.MetricSample{}, fmt.Errorf("IngestService.Ingest: %w", err)
	}
	return inserted, nil
}

func (s *ingestService) LatestSample(ctx context.Context, serverName string) (model.MetricSample, bool, error) {
	sample, found, err := s.metricRepo.GetLatestSample(ctx, serverName)
	if err != nil {
		return sample, found, fmt.Errorf("IngestService.LatestSample: %w", err)
	}
	return sample, found, nil
}

func NewIngestService(serverRepo repository.ServerRepository, metricRepo repository.MetricRepository) IngestService {
	return &ingestService{
		serverRepo: serverRepo,
		metricRepo: metricRepo,
	}
}
