package sweep

import (
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"VPS_Fleet_Monitor/internal/monitor-service/repository"
	"VPS_Fleet_Monitor/internal/monitor-service/service"
	"VPS_Fleet_Monitor/internal/monitor-service/sshprobe"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MonitorBroadcaster pushes a freshly collected sample to the dashboards.
// The session registry satisfies it.
type MonitorBroadcaster interface {
	BroadcastMonitorUpdate(serverName string, sample model.MetricSample)
}

// minPullInterval floors the collection cadence; the sweep itself runs on a
// one-minute cron, so anything shorter cannot be honored anyway.
const minPullInterval = time.Minute

type PullMonitor interface {
	// Sweep collects metrics over ssh from every pull-monitored server
	// whose interval has elapsed and feeds them through the ingest
	// pipeline, refreshing last_seen the same way an agent push would.
	// It returns how many servers were collected successfully.
	Sweep(ctx context.Context) (int, error)
}

type pullMonitor struct {
	serverRepo  repository.ServerRepository
	collector   sshprobe.Collector
	ingest      service.IngestService
	broadcaster MonitorBroadcaster
	logger      *zap.Logger
	workers     int
	now         func() time.Time
}

func (m *pullMonitor) Sweep(ctx context.Context) (int, error) {
	servers, err := m.serverRepo.GetServers(ctx)
	if err != nil {
		return 0, fmt.Errorf("PullMonitor.Sweep: %w", err)
	}
	now := m.now()

	sem := make(chan struct{}, m.workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	collected := 0

	for _, server := range servers {
		if !m.due(server, now) {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(server model.Server) {
			defer wg.Done()
			defer func() { <-sem }()
			if m.collect(ctx, server) {
				mu.Lock()
				collected++
				mu.Unlock()
			}
		}(server)
	}
	wg.Wait()
	return collected, nil
}

// due reports whether a collection is owed. The cadence keys off
// last_ssh_check so the push half of a both-monitored server never delays
// its pull schedule.
func (m *pullMonitor) due(server model.Server, now time.Time) bool {
	if server.MonitorMethod != model.MonitorMethodPull && server.MonitorMethod != model.MonitorMethodBoth {
		return false
	}
	if server.IPAddress == "" || server.EncryptedCredentials == "" {
		return false
	}
	if server.LastSSHCheck == nil {
		return true
	}
	interval := time.Duration(server.MonitorInterval) * time.Second
	if interval < minPullInterval {
		interval = minPullInterval
	}
	return now.Sub(*server.LastSSHCheck) >= interval
}

func (m *pullMonitor) collect(ctx context.Context, server model.Server) bool {
	payload, err := m.collector.Collect(ctx, server)
	if err != nil {
		// An unreachable host is routine here; the offline sweep decides
		// what to do with a server that keeps failing.
		m.logger.Warn("ssh collection failed",
			zap.String("server_name", server.Name),
			zap.Error(fmt.Errorf("PullMonitor.collect: %w", err)))
		return false
	}
	sample, err := m.ingest.Ingest(ctx, server.Name, payload)
	if err != nil {
		m.logger.Error("failed to ingest collected metrics",
			zap.String("server_name", server.Name),
			zap.Error(fmt.Errorf("PullMonitor.collect: %w", err)))
		return false
	}
	m.broadcaster.BroadcastMonitorUpdate(server.Name, sample)
	return true
}

func NewPullMonitor(serverRepo repository.ServerRepository, collector sshprobe.Collector, ingest service.IngestService, broadcaster MonitorBroadcaster, logger *zap.Logger, workers int) PullMonitor {
	if workers <= 0 {
		workers = 1
	}
	return &pullMonitor{
		serverRepo:  serverRepo,
		collector:   collector,
		ingest:      ingest,
		broadcaster: broadcaster,
		logger:      logger,
		workers:     workers,
		now:         time.Now,
	}
}
