package ws

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a frame to the peer.
	writeWait = 10 * time.Second

	// Server-side ping cadence; peers answer with pong, peers' pings
	// get a pong back. A session with no ping received for the
	// heartbeat timeout is force-closed.
	defaultPingInterval     = 30 * time.Second
	defaultHeartbeatTimeout = 60 * time.Second

	maxMessageSize = 256 * 1024

	sendBufferSize = 64
)

// Session is one live connection, agent or dashboard. It starts
// unauthenticated; the role is bound at most once by the auth handshake and
// never rebinds.
type Session struct {
	id      string
	conn    *websocket.Conn
	send    chan []byte
	handler *Handler
	logger  *zap.Logger

	pingInterval     time.Duration
	heartbeatTimeout time.Duration

	mu            sync.Mutex
	role          string // "" until authenticated
	serverName    string
	subscriptions map[string]struct{}
	lastPing      time.Time

	closeOnce   sync.Once
	closed      atomic.Bool
	closeCode   int
	closeReason string
}

func newSession(id string, conn *websocket.Conn, handler *Handler, logger *zap.Logger) *Session {
	s := &Session{
		id:               id,
		conn:             conn,
		send:             make(chan []byte, sendBufferSize),
		handler:          handler,
		logger:           logger.With(zap.String("session_id", id)),
		pingInterval:     defaultPingInterval,
		heartbeatTimeout: defaultHeartbeatTimeout,
		subscriptions:    make(map[string]struct{}),
		lastPing:         time.Now(),
		closeCode:        websocket.CloseNormalClosure,
	}
	if handler != nil {
		s.pingInterval = handler.pingInterval
		s.heartbeatTimeout = handler.heartbeatTimeout
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

func (s *Session) ServerName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serverName
}

// bindAgent sets the agent role and server name. It reports false if the
// session already holds a role; the binding is immutable for the session's
// lifetime.
func (s *Session) bindAgent(serverName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.role != "" {
		return false
	}
	s.role = RoleAgent
	s.serverName = serverName
	return true
}

func (s *Session) bindDashboard() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.role != "" {
		return false
	}
	s.role = RoleDashboard
	return true
}

func (s *Session) subscribe(serverName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions[serverName] = struct{}{}
}

// wantsMonitorUpdate reports whether a monitor_update for serverName should
// reach this session. Dashboards with an empty subscription set receive
// everything.
func (s *Session) wantsMonitorUpdate(serverName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.role != RoleDashboard {
		return false
	}
	if len(s.subscriptions) == 0 {
		return true
	}
	_, ok := s.subscriptions[serverName]
	return ok
}

func (s *Session) isDashboard() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role == RoleDashboard
}

func (s *Session) touchPing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPing = time.Now()
}

func (s *Session) heartbeatExpired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastPing) > s.heartbeatTimeout
}

// safeSend queues a frame without panicking on a concurrently closed
// channel. It reports false when the session is closed or its buffer full.
func (s *Session) safeSend(data []byte) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			sent = false
		}
	}()

	if s.closed.Load() {
		return false
	}
	select {
	case s.send <- data:
		return true
	default:
		return false
	}
}

func (s *Session) sendMessage(msgType MessageType, data interface{}) {
	frame, err := encodeMessage(msgType, data)
	if err != nil {
		s.logger.Error("failed to encode message", zap.String("type", string(msgType)), zap.Error(err))
		return
	}
	if !s.safeSend(frame) {
		s.logger.Warn("dropped outbound message", zap.String("type", string(msgType)))
	}
}

func (s *Session) sendError(message string) {
	s.sendMessage(MessageTypeError, ErrorData{Message: message})
}

// close shuts the send channel exactly once; writePump drains what is
// already queued, writes the close frame and tears the connection down.
func (s *Session) close(code int, reason string) {
	s.closeOnce.Do(func() {
		s.closeCode = code
		s.closeReason = reason
		s.closed.Store(true)
		close(s.send)
	})
}

// readPump processes inbound frames one at a time, preserving per-session
// ordering. It exits on any transport error and triggers disconnect
// handling.
func (s *Session) readPump() {
	defer s.handler.handleDisconnect(s)

	s.conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("connection closed unexpectedly", zap.Error(err))
			}
			return
		}
		s.handler.handleMessage(s, data)
	}
}

// writePump is the sole writer on the connection. It also drives the
// server-side heartbeat.
func (s *Session) writePump() {
	ticker := time.NewTicker(s.pingInterval)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-s.send:
			if !ok {
				deadline := time.Now().Add(writeWait)
				closeFrame := websocket.FormatCloseMessage(s.closeCode, s.closeReason)
				s.conn.WriteControl(websocket.CloseMessage, closeFrame, deadline)
				return
			}
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				s.logger.Debug("write failed", zap.Error(err))
				return
			}
		case now := <-ticker.C:
			if s.heartbeatExpired(now) {
				s.logger.Info("heartbeat timeout, closing session")
				deadline := now.Add(writeWait)
				closeFrame := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "heartbeat timeout")
				s.conn.WriteControl(websocket.CloseMessage, closeFrame, deadline)
				return
			}
			frame, err := encodeMessage(MessageTypePing, PingData{Timestamp: now.UTC()})
			if err != nil {
				continue
			}
			s.conn.SetWriteDeadline(now.Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		}
	}
}
