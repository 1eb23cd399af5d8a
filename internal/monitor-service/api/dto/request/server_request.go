package request

import "time"

type CredentialsRequest struct {
	Username   string `json:"username" binding:"required" validate:"required"`
	Password   string `json:"password"`
	PrivateKey string `json:"private_key"`
}

type UpsertServerRequest struct {
	Name            string              `json:"name" binding:"required" validate:"required"`
	IPAddress       string              `json:"ip_address" binding:"omitempty,ip|hostname" validate:"omitempty,ip|hostname"`
	Port            *int                `json:"port" binding:"omitempty,gte=1,lte=65535" validate:"omitempty,gte=1,lte=65535"`
	MonitorMethod   string              `json:"monitor_method" binding:"omitempty,oneof=push pull both" validate:"omitempty,oneof=push pull both"`
	MonitorInterval *int                `json:"monitor_interval" binding:"omitempty,gte=10" validate:"omitempty,gte=10"`
	Credentials     *CredentialsRequest `json:"credentials"`
	Location        string              `json:"location"`
	Region          string              `json:"region"`
	Seller          string              `json:"seller"`
	Price           string              `json:"price"`
	BuyURL          string              `json:"buy_url"`
	DueTime         *time.Time          `json:"due_time"`
}

type UpdateServerRequest struct {
	IPAddress       string              `json:"ip_address" binding:"omitempty,ip|hostname"`
	Port            *int                `json:"port" binding:"omitempty,gte=1,lte=65535"`
	MonitorMethod   string              `json:"monitor_method" binding:"omitempty,oneof=push pull both"`
	MonitorInterval *int                `json:"monitor_interval" binding:"omitempty,gte=10"`
	Credentials     *CredentialsRequest `json:"credentials"`
	Location        string              `json:"location"`
	Region          string              `json:"region"`
	Seller          string              `json:"seller"`
	Price           string              `json:"price"`
	BuyURL          string              `json:"buy_url"`
	DueTime         *time.Time          `json:"due_time"`
}
