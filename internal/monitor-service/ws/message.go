package ws

import (
	"encoding/json"
	"fmt"
	"time"

	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"VPS_Fleet_Monitor/internal/monitor-service/service"
)

// MessageType is the closed set of frame types on the live connection.
// Unknown types get an error reply, never a panic.
type MessageType string

const (
	MessageTypeWelcome       MessageType = "welcome"
	MessageTypeAuth          MessageType = "auth"
	MessageTypeAuthSuccess   MessageType = "auth_success"
	MessageTypeAuthFailed    MessageType = "auth_failed"
	MessageTypeMonitorData   MessageType = "monitor_data"
	MessageTypeMonitorUpdate MessageType = "monitor_update"
	MessageTypeSubscribe     MessageType = "subscribe"
	MessageTypeServerList    MessageType = "server_list"
	MessageTypeServerStatus  MessageType = "server_status"
	MessageTypePing          MessageType = "ping"
	MessageTypePong          MessageType = "pong"
	MessageTypeAlert         MessageType = "alert"
	MessageTypeError         MessageType = "error"
)

const (
	RoleAgent     = "agent"
	RoleDashboard = "dashboard"
)

// Message is one frame: {type, data, timestamp}.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

func encodeMessage(msgType MessageType, data interface{}) ([]byte, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("ws.encodeMessage: %w", err)
		}
		raw = b
	}
	return json.Marshal(Message{
		Type:      msgType,
		Data:      raw,
		Timestamp: time.Now().UTC(),
	})
}

type AuthRequest struct {
	Secret     string `json:"secret"`
	Role       string `json:"role"`
	ServerName string `json:"server_name,omitempty"`
}

type AuthResultData struct {
	Message    string `json:"message"`
	Role       string `json:"role,omitempty"`
	ServerName string `json:"server_name,omitempty"`
}

type SubscribeRequest struct {
	ServerName string `json:"server_name"`
}

type MonitorUpdateData struct {
	ServerName string                `json:"server_name"`
	Data       service.MetricPayload `json:"data"`
	Timestamp  time.Time             `json:"timestamp"`
}

type ServerStatusData struct {
	ServerName string `json:"server_name"`
	Status     string `json:"status"`
}

type ServerListData struct {
	Servers []ServerSummary `json:"servers"`
}

// ServerSummary is the sanitized server row sent to dashboards. Credential
// blobs never leave the store through this path.
type ServerSummary struct {
	Name            string     `json:"name"`
	IPAddress       string     `json:"ip_address"`
	Port            int        `json:"port"`
	MonitorMethod   string     `json:"monitor_method"`
	MonitorInterval int        `json:"monitor_interval"`
	Status          string     `json:"status"`
	LastSeen        *time.Time `json:"last_seen,omitempty"`
	Location        string     `json:"location,omitempty"`
	Region          string     `json:"region,omitempty"`
}

func newServerSummary(server model.Server) ServerSummary {
	return ServerSummary{
		Name:            server.Name,
		IPAddress:       server.IPAddress,
		Port:            server.Port,
		MonitorMethod:   server.MonitorMethod,
		MonitorInterval: server.MonitorInterval,
		Status:          server.Status,
		LastSeen:        server.LastSeen,
		Location:        server.Location,
		Region:          server.Region,
	}
}

type WelcomeData struct {
	SessionID string `json:"session_id"`
}

type PingData struct {
	Timestamp time.Time `json:"timestamp"`
}

type AlertData struct {
	Message string `json:"message"`
}

type ErrorData struct {
	Message string `json:"message"`
}
