package response

import (
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"time"
)

type ConnectivityResultResponse struct {
	ServerName   string    `json:"server_name"`
	TestType     string    `json:"test_type"`
	TestTarget   string    `json:"test_target"`
	TestPort     int       `json:"test_port"`
	TestNode     string    `json:"test_node,omitempty"`
	TestRegion   string    `json:"test_region,omitempty"`
	Status       string    `json:"status"`
	LatencyMs    int64     `json:"latency_ms"`
	PacketLoss   float64   `json:"packet_loss"`
	ErrorMessage string    `json:"error_message,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewConnectivityResultResponse(result model.ConnectivityResult) ConnectivityResultResponse {
	return ConnectivityResultResponse{
		ServerName:   result.ServerName,
		TestType:     result.TestType,
		TestTarget:   result.TestTarget,
		TestPort:     result.TestPort,
		TestNode:     result.TestNode,
		TestRegion:   result.TestRegion,
		Status:       result.Status,
		LatencyMs:    result.LatencyMs,
		PacketLoss:   result.PacketLoss,
		ErrorMessage: result.ErrorMessage,
		Timestamp:    result.Timestamp,
	}
}
