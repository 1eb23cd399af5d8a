package sweep

import (
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"VPS_Fleet_Monitor/internal/monitor-service/repository"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type dialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// probeAttempts dials per probe; packet_loss is the failed share and
// latency averages over the successful dials.
const probeAttempts = 3

type ConnectivityProber interface {
	// RunAll probes every server with an address and persists one result
	// row per server, failures included. Probes run concurrently, each
	// dial under its own timeout; one slow target never stalls the sweep.
	RunAll(ctx context.Context) ([]model.ConnectivityResult, error)
	// RunFor probes a single server on demand.
	RunFor(ctx context.Context, serverName string) ([]model.ConnectivityResult, error)
}

type connectivityProber struct {
	serverRepo repository.ServerRepository
	connRepo   repository.ConnectivityRepository
	logger     *zap.Logger
	timeout    time.Duration
	workers    int
	node       string
	region     string
	dial       dialFunc
}

func (p *connectivityProber) RunAll(ctx context.Context) ([]model.ConnectivityResult, error) {
	servers, err := p.serverRepo.GetServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("ConnectivityProber.RunAll: %w", err)
	}
	return p.probeServers(ctx, servers), nil
}

func (p *connectivityProber) RunFor(ctx context.Context, serverName string) ([]model.ConnectivityResult, error) {
	server, err := p.serverRepo.GetServerByName(ctx, serverName)
	if err != nil {
		return nil, fmt.Errorf("ConnectivityProber.RunFor: %w", err)
	}
	return p.probeServers(ctx, []model.Server{server}), nil
}

func (p *connectivityProber) probeServers(ctx context.Context, servers []model.Server) []model.ConnectivityResult {
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var results []model.ConnectivityResult

	for _, server := range servers {
		if server.IPAddress == "" {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(server model.Server) {
			defer wg.Done()
			defer func() { <-sem }()

			result := p.probe(ctx, server)
			if _, err := p.connRepo.InsertResult(ctx, result); err != nil {
				// The probe outcome is data; losing the row is the error.
				p.logger.Error("failed to persist connectivity result",
					zap.String("server_name", server.Name),
					zap.Error(fmt.Errorf("ConnectivityProber.probeServers: %w", err)))
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(server)
	}
	wg.Wait()
	return results
}

func (p *connectivityProber) probe(ctx context.Context, server model.Server) model.ConnectivityResult {
	port := server.Port
	if port == 0 {
		port = 22
	}
	address := net.JoinHostPort(server.IPAddress, fmt.Sprintf("%d", port))
	result := model.ConnectivityResult{
		ServerName: server.Name,
		TestType:   model.ConnectivityTestTCP,
		TestTarget: server.IPAddress,
		TestPort:   port,
		TestNode:   p.node,
		TestRegion: p.region,
		Timestamp:  time.Now(),
	}

	var lastErr error
	succeeded := 0
	var latencySum time.Duration
	for i := 0; i < probeAttempts; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, p.timeout)
		start := time.Now()
		conn, err := p.dial(attemptCtx, "tcp", address)
		elapsed := time.Since(start)
		cancel()
		if err != nil {
			lastErr = err
			continue
		}
		conn.Close()
		succeeded++
		latencySum += elapsed
	}
	result.PacketLoss = float64(probeAttempts-succeeded) * 100 / probeAttempts

	if succeeded > 0 {
		result.LatencyMs = (latencySum / time.Duration(succeeded)).Milliseconds()
		result.Status = model.ConnectivityStatusSuccess
		return result
	}

	result.ErrorMessage = lastErr.Error()
	switch {
	case errors.Is(lastErr, context.DeadlineExceeded), os.IsTimeout(lastErr):
		result.Status = model.ConnectivityStatusTimeout
	case errors.Is(lastErr, syscall.ECONNREFUSED), errors.Is(lastErr, syscall.EHOSTUNREACH):
		result.Status = model.ConnectivityStatusFailed
	default:
		var netErr net.Error
		if errors.As(lastErr, &netErr) && netErr.Timeout() {
			result.Status = model.ConnectivityStatusTimeout
		} else {
			result.Status = model.ConnectivityStatusError
		}
	}
	return result
}

func NewConnectivityProber(serverRepo repository.ServerRepository, connRepo repository.ConnectivityRepository, logger *zap.Logger, timeout time.Duration, workers int, node string, region string) ConnectivityProber {
	if workers <= 0 {
		workers = 1
	}
	dialer := &net.Dialer{}
	return &connectivityProber{
		serverRepo: serverRepo,
		connRepo:   connRepo,
		logger:     logger,
		timeout:    timeout,
		workers:    workers,
		node:       node,
		region:     region,
		dial:       dialer.DialContext,
	}
}
