package sweep

import (
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"VPS_Fleet_Monitor/internal/monitor-service/repository"
	"VPS_Fleet_Monitor/pkg/mail"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// StatusBroadcaster pushes a status flip to the dashboards so they do not
// poll. The session registry satisfies it.
type StatusBroadcaster interface {
	BroadcastServerStatus(serverName string, status string)
	BroadcastAlert(message string)
}

// minOfflineThreshold keeps very short monitor intervals from flapping.
const minOfflineThreshold = time.Minute

type OfflineDetector interface {
	// Sweep marks servers whose last_seen is older than
	// monitor_interval x multiplier as offline and returns how many were
	// flipped. Running it twice back to back flips nothing the second
	// time.
	Sweep(ctx context.Context) (int, error)
}

type offlineDetector struct {
	serverRepo  repository.ServerRepository
	broadcaster StatusBroadcaster
	mailSender  mail.Sender // nil disables alert mail
	alertMail   string
	multiplier  int
	logger      *zap.Logger
	now         func() time.Time
}

func (d *offlineDetector) Sweep(ctx context.Context) (int, error) {
	servers, err := d.serverRepo.GetServers(ctx)
	if err != nil {
		return 0, fmt.Errorf("OfflineDetector.Sweep: %w", err)
	}
	now := d.now()
	var flipped []string
	for _, server := range servers {
		if server.Status == model.ServerStatusOffline {
			continue
		}
		if server.LastSeen == nil {
			// Never reported; leave it unknown rather than offline.
			continue
		}
		threshold := time.Duration(server.MonitorInterval*d.multiplier) * time.Second
		if threshold < minOfflineThreshold {
			threshold = minOfflineThreshold
		}
		if now.Sub(*server.LastSeen) <= threshold {
			continue
		}
		if e := d.serverRepo.UpdateServerStatus(ctx, server.Name, model.ServerStatusOffline, ""); e != nil {
			// One stuck row must not stop the pass.
			d.logger.Error("failed to mark server offline",
				zap.String("server_name", server.Name),
				zap.Error(fmt.Errorf("OfflineDetector.Sweep: %w", e)))
			continue
		}
		d.broadcaster.BroadcastServerStatus(server.Name, model.ServerStatusOffline)
		flipped = append(flipped, server.Name)
	}
	if len(flipped) > 0 {
		d.broadcaster.BroadcastAlert(fmt.Sprintf("%d server(s) went offline: %s", len(flipped), strings.Join(flipped, ", ")))
		d.sendAlertMail(flipped)
	}
	return len(flipped), nil
}

func (d *offlineDetector) sendAlertMail(names []string) {
	if d.mailSender == nil || d.alertMail == "" {
		return
	}
	subject := fmt.Sprintf("[vps-monitor] %d server(s) offline", len(names))
	textBody := fmt.Sprintf("The following servers stopped reporting and were marked offline:\n%s", strings.Join(names, "\n"))
	var htmlItems strings.Builder
	for _, name := range names {
		htmlItems.WriteString(fmt.Sprintf("<li>%s</li>", name))
	}
	htmlBody := fmt.Sprintf("<body><p>The following servers stopped reporting and were marked offline:</p><ul>%s</ul></body>", htmlItems.String())
	if err := d.mailSender.SendMail([]string{d.alertMail}, subject, htmlBody, textBody); err != nil {
		d.logger.Error("failed to send offline alert mail", zap.Error(fmt.Errorf("OfflineDetector.sendAlertMail: %w", err)))
	}
}

func NewOfflineDetector(serverRepo repository.ServerRepository, broadcaster StatusBroadcaster, mailSender mail.Sender, alertMail string, multiplier int, logger *zap.Logger) OfflineDetector {
	return &offlineDetector{
		serverRepo:  serverRepo,
		broadcaster: broadcaster,
		mailSender:  mailSender,
		alertMail:   alertMail,
		multiplier:  multiplier,
		logger:      logger,
		now:         time.Now,
	}
}
