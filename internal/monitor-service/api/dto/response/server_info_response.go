package response

import (
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"time"
)

// ServerInfoResponse is the sanitized server row returned by the REST API.
// Encrypted credential blobs are never serialized, only their presence.
type ServerInfoResponse struct {
	Name            string     `json:"name"`
	IPAddress       string     `json:"ip_address"`
	Port            int        `json:"port"`
	MonitorMethod   string     `json:"monitor_method"`
	MonitorInterval int        `json:"monitor_interval"`
	Status          string     `json:"status"`
	LastSeen        *time.Time `json:"last_seen,omitempty"`
	LastAgentSeen   *time.Time `json:"last_agent_seen,omitempty"`
	LastSSHCheck    *time.Time `json:"last_ssh_check,omitempty"`
	HasCredentials  bool       `json:"has_credentials"`
	Location        string     `json:"location,omitempty"`
	Region          string     `json:"region,omitempty"`
	Seller          string     `json:"seller,omitempty"`
	Price           string     `json:"price,omitempty"`
	DueTime         *time.Time `json:"due_time,omitempty"`
	BuyURL          string     `json:"buy_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func NewServerInfoResponse(server model.Server) ServerInfoResponse {
	return ServerInfoResponse{
		Name:            server.Name,
		IPAddress:       server.IPAddress,
		Port:            server.Port,
		MonitorMethod:   server.MonitorMethod,
		MonitorInterval: server.MonitorInterval,
		Status:          server.Status,
		LastSeen:        server.LastSeen,
		LastAgentSeen:   server.LastAgentSeen,
		LastSSHCheck:    server.LastSSHCheck,
		HasCredentials:  server.EncryptedCredentials != "",
		Location:        server.Location,
		Region:          server.Region,
		Seller:          server.Seller,
		Price:           server.Price,
		DueTime:         server.DueTime,
		BuyURL:          server.BuyURL,
		CreatedAt:       server.CreatedAt,
		UpdatedAt:       server.UpdatedAt,
	}
}
