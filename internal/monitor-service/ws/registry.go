package ws

import (
	"context"
	"sync"

	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"VPS_Fleet_Monitor/internal/monitor-service/service"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const broadcastQueueSize = 256

type broadcastJob struct {
	frame []byte
	// serverName filters monitor_update delivery by subscription; empty
	// means every dashboard session.
	serverName string
	filtered   bool
}

// Registry is the process-wide directory of live sessions. It is the single
// shared-mutable-state boundary: the session map is guarded by a mutex, and
// fan-out runs on a dedicated loop fed by a buffered queue so state changes
// never block on slow receivers.
type Registry struct {
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	queue chan broadcastJob
}

func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		logger:   logger.With(zap.String("component", "session_registry")),
		sessions: make(map[string]*Session),
		queue:    make(chan broadcastJob, broadcastQueueSize),
	}
}

// Run drains the broadcast queue until ctx is cancelled.
func (r *Registry) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-r.queue:
			r.deliver(job)
		}
	}
}

func (r *Registry) Register(session *Session) {
	r.mu.Lock()
	r.sessions[session.ID()] = session
	count := len(r.sessions)
	r.mu.Unlock()
	r.logger.Debug("session registered", zap.String("session_id", session.ID()), zap.Int("sessions", count))
}

// Deregister removes a session; unknown ids are a no-op. The session close
// happens outside the lock.
func (r *Registry) Deregister(sessionID string) {
	r.mu.Lock()
	session, ok := r.sessions[sessionID]
	if ok {
		delete(r.sessions, sessionID)
	}
	r.mu.Unlock()
	if !ok {
		return
	}
	session.close(websocket.CloseNormalClosure, "")
	r.logger.Debug("session deregistered", zap.String("session_id", sessionID))
}

func (r *Registry) SessionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// BroadcastMonitorUpdate fans a persisted sample out to the dashboard
// sessions subscribed to the server (sessions with no subscriptions receive
// everything).
func (r *Registry) BroadcastMonitorUpdate(serverName string, sample model.MetricSample) {
	frame, err := encodeMessage(MessageTypeMonitorUpdate, MonitorUpdateData{
		ServerName: serverName,
		Data:       service.PayloadFromSample(sample),
		Timestamp:  sample.Timestamp,
	})
	if err != nil {
		r.logger.Error("failed to encode monitor_update", zap.Error(err))
		return
	}
	r.enqueue(broadcastJob{frame: frame, serverName: serverName, filtered: true})
}

// BroadcastServerStatus notifies every dashboard of a status flip.
func (r *Registry) BroadcastServerStatus(serverName string, status string) {
	frame, err := encodeMessage(MessageTypeServerStatus, ServerStatusData{
		ServerName: serverName,
		Status:     status,
	})
	if err != nil {
		r.logger.Error("failed to encode server_status", zap.Error(err))
		return
	}
	r.enqueue(broadcastJob{frame: frame})
}

// BroadcastAlert sends an out-of-band warning to every dashboard.
func (r *Registry) BroadcastAlert(message string) {
	frame, err := encodeMessage(MessageTypeAlert, AlertData{Message: message})
	if err != nil {
		r.logger.Error("failed to encode alert", zap.Error(err))
		return
	}
	r.enqueue(broadcastJob{frame: frame})
}

func (r *Registry) enqueue(job broadcastJob) {
	select {
	case r.queue <- job:
	default:
		r.logger.Warn("broadcast queue full, dropping message")
	}
}

// deliver is best-effort: a receiver that is closed or has a full buffer is
// dropped from the registry, and delivery continues to the rest.
func (r *Registry) deliver(job broadcastJob) {
	r.mu.RLock()
	targets := make([]*Session, 0, len(r.sessions))
	for _, session := range r.sessions {
		if job.filtered {
			if session.wantsMonitorUpdate(job.serverName) {
				targets = append(targets, session)
			}
		} else if session.isDashboard() {
			targets = append(targets, session)
		}
	}
	r.mu.RUnlock()

	var failed []string
	for _, session := range targets {
		if !session.safeSend(job.frame) {
			failed = append(failed, session.ID())
		}
	}
	for _, id := range failed {
		r.logger.Warn("send failed, removing session", zap.String("session_id", id))
		r.Deregister(id)
	}
}
