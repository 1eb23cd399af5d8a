package ws

import (
	apperrors "VPS_Fleet_Monitor/internal/monitor-service/errors"
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"VPS_Fleet_Monitor/internal/monitor-service/repository"
	"VPS_Fleet_Monitor/internal/monitor-service/service"
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard is served from arbitrary origins; auth happens on the
	// first frame, not at upgrade time.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades connections and drives the per-session protocol state
// machine. All store calls run under a bounded timeout so a stuck store
// fails the operation instead of hanging the session.
type Handler struct {
	logger       *zap.Logger
	authSecret   string
	storeTimeout time.Duration
	registry     *Registry
	ingest       service.IngestService
	serverRepo   repository.ServerRepository

	// Heartbeat timings for new sessions; tests shorten them.
	pingInterval     time.Duration
	heartbeatTimeout time.Duration
}

func NewHandler(logger *zap.Logger, authSecret string, storeTimeout time.Duration, registry *Registry, ingest service.IngestService, serverRepo repository.ServerRepository) *Handler {
	return &Handler{
		logger:           logger.With(zap.String("component", "ws_handler")),
		authSecret:       authSecret,
		storeTimeout:     storeTimeout,
		registry:         registry,
		ingest:           ingest,
		serverRepo:       serverRepo,
		pingInterval:     defaultPingInterval,
		heartbeatTimeout: defaultHeartbeatTimeout,
	}
}

func (h *Handler) ServeWS() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}
		session := newSession(uuid.NewString(), conn, h, h.logger)
		h.registry.Register(session)

		go session.writePump()
		session.sendMessage(MessageTypeWelcome, WelcomeData{SessionID: session.ID()})
		go session.readPump()
	}
}

func (h *Handler) storeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), h.storeTimeout)
}

// handleMessage dispatches one inbound frame. Errors on a session never
// reach other sessions; a malformed frame gets an error reply and the
// connection stays open.
func (h *Handler) handleMessage(session *Session, data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		session.sendError("invalid message format")
		return
	}
	switch msg.Type {
	case MessageTypeAuth:
		h.handleAuth(session, msg.Data)
	case MessageTypeMonitorData:
		h.handleMonitorData(session, msg.Data)
	case MessageTypeSubscribe:
		h.handleSubscribe(session, msg.Data)
	case MessageTypePing:
		session.touchPing()
		session.sendMessage(MessageTypePong, PingData{Timestamp: time.Now().UTC()})
	case MessageTypePong:
		session.touchPing()
	default:
		session.sendError("unknown message type")
	}
}

func (h *Handler) handleAuth(session *Session, data json.RawMessage) {
	if session.Role() != "" {
		session.sendError("already authenticated")
		return
	}
	var req AuthRequest
	if err := json.Unmarshal(data, &req); err != nil {
		session.sendError("invalid auth payload")
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.authSecret)) != 1 {
		session.sendMessage(MessageTypeAuthFailed, AuthResultData{Message: "invalid authentication credentials"})
		session.close(websocket.ClosePolicyViolation, "authentication failed")
		return
	}

	switch req.Role {
	case RoleAgent:
		if req.ServerName == "" {
			session.sendError("agent auth requires server_name")
			return
		}
		if !session.bindAgent(req.ServerName) {
			session.sendError("already authenticated")
			return
		}
		ctx, cancel := h.storeContext()
		err := h.serverRepo.UpdateServerStatus(ctx, req.ServerName, model.ServerStatusOnline, model.DataSourceAgent)
		cancel()
		if err != nil {
			// The agent stays connected; the next ingest heals the status.
			h.logger.Error("failed to mark server online", zap.String("server_name", req.ServerName), zap.Error(err))
		}
		session.sendMessage(MessageTypeAuthSuccess, AuthResultData{
			Message:    "authentication successful",
			Role:       RoleAgent,
			ServerName: req.ServerName,
		})
		h.logger.Info("agent authenticated", zap.String("server_name", req.ServerName), zap.String("session_id", session.ID()))
	case RoleDashboard:
		if !session.bindDashboard() {
			session.sendError("already authenticated")
			return
		}
		session.sendMessage(MessageTypeAuthSuccess, AuthResultData{
			Message: "authentication successful",
			Role:    RoleDashboard,
		})
		h.sendServerList(session)
	default:
		session.sendError("unknown role")
	}
}

func (h *Handler) sendServerList(session *Session) {
	ctx, cancel := h.storeContext()
	servers, err := h.serverRepo.GetServers(ctx)
	cancel()
	if err != nil {
		h.logger.Error("failed to load server list", zap.Error(err))
		return
	}
	summaries := make([]ServerSummary, 0, len(servers))
	for _, server := range servers {
		summaries = append(summaries, newServerSummary(server))
	}
	session.sendMessage(MessageTypeServerList, ServerListData{Servers: summaries})
}

func (h *Handler) handleMonitorData(session *Session, data json.RawMessage) {
	if session.Role() != RoleAgent {
		session.sendError("not authorized for monitor data")
		return
	}
	var payload service.MetricPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		session.sendError("invalid monitor payload")
		return
	}
	ctx, cancel := h.storeContext()
	sample, err := h.ingest.Ingest(ctx, session.ServerName(), payload)
	cancel()
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPayload) {
			session.sendError("invalid monitor payload")
		} else {
			h.logger.Error("failed to ingest monitor data", zap.String("server_name", session.ServerName()), zap.Error(err))
			session.sendError("failed to save monitor data")
		}
		return
	}
	// Persistence succeeded above; only now does the update fan out.
	h.registry.BroadcastMonitorUpdate(session.ServerName(), sample)
}

func (h *Handler) handleSubscribe(session *Session, data json.RawMessage) {
	if session.Role() != RoleDashboard {
		session.sendError("not authorized for subscription")
		return
	}
	var req SubscribeRequest
	if err := json.Unmarshal(data, &req); err != nil || req.ServerName == "" {
		session.sendError("invalid subscribe payload")
		return
	}
	session.subscribe(req.ServerName)

	ctx, cancel := h.storeContext()
	sample, found, err := h.ingest.LatestSample(ctx, req.ServerName)
	cancel()
	if err != nil {
		h.logger.Error("failed to load latest sample", zap.String("server_name", req.ServerName), zap.Error(err))
		return
	}
	if found {
		session.sendMessage(MessageTypeMonitorUpdate, MonitorUpdateData{
			ServerName: req.ServerName,
			Data:       service.PayloadFromSample(sample),
			Timestamp:  sample.Timestamp,
		})
	}
}

// handleDisconnect runs when a session's read loop exits for any reason. An
// agent disconnect flips its server offline and tells the dashboards.
func (h *Handler) handleDisconnect(session *Session) {
	h.registry.Deregister(session.ID())

	if session.Role() == RoleAgent {
		serverName := session.ServerName()
		ctx, cancel := h.storeContext()
		err := h.serverRepo.UpdateServerStatus(ctx, serverName, model.ServerStatusOffline, "")
		cancel()
		if err != nil {
			h.logger.Error("failed to mark server offline", zap.String("server_name", serverName), zap.Error(err))
		}
		h.registry.BroadcastServerStatus(serverName, model.ServerStatusOffline)
		h.logger.Info("agent disconnected", zap.String("server_name", serverName), zap.String("session_id", session.ID()))
	}
}
