package model

import "time"

const (
	ServerStatusOnline  = "online"
	ServerStatusOffline = "offline"
	ServerStatusUnknown = "unknown"
)

const (
	MonitorMethodPush = "push"
	MonitorMethodPull = "pull"
	MonitorMethodBoth = "both"
)

type Server struct {
	Name                 string `gorm:"primaryKey"`
	IPAddress            string
	Port                 int
	MonitorMethod        string
	MonitorInterval      int // seconds
	Status               string
	LastSeen             *time.Time
	LastAgentSeen        *time.Time
	LastSSHCheck         *time.Time
	EncryptedCredentials string
	Location             string
	Region               string
	Seller               string
	Price                string
	DueTime              *time.Time
	BuyURL               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Server) TableName() string {
	return "servers"
}
