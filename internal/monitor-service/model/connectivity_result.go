package model

import "time"

const (
	ConnectivityStatusSuccess = "success"
	ConnectivityStatusFailed  = "failed"
	ConnectivityStatusTimeout = "timeout"
	ConnectivityStatusError   = "error"
)

const (
	ConnectivityTestTCP = "tcp"
)

// ConnectivityResult is an append-only connectivity_tests row. One row is
// written per probed server, failures included; a probe makes several dial
// attempts and packet_loss is the failed share.
type ConnectivityResult struct {
	ID           uint `gorm:"primaryKey;autoIncrement"`
	ServerName   string
	TestType     string
	TestTarget   string
	TestPort     int
	TestNode     string
	TestRegion   string
	Status       string
	LatencyMs    int64
	PacketLoss   float64
	ErrorMessage string
	Timestamp    time.Time
}

func (ConnectivityResult) TableName() string {
	return "connectivity_tests"
}
