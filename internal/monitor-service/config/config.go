package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Mail     MailConfig
	Monitor  MonitorConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// Shared secret checked on the websocket auth handshake and on
	// mutating REST routes.
	AuthSecret string `envconfig:"AUTH_SECRET" required:"true"`
	// 64 hex chars, AES-256 key for credential blobs at rest.
	EncryptionKey string `envconfig:"ENCRYPTION_KEY" required:"true"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type RedisConfig struct {
	Host string `envconfig:"REDIS_HOST" default:"localhost"`
	Port int    `envconfig:"REDIS_PORT" default:"6379"`
}

// MailConfig is optional: offline alert mail is disabled when Email is empty.
type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL"`
	Password         string `envconfig:"MAIL_PASSWORD"`
	Host             string `envconfig:"MAIL_HOST"`
	Port             int    `envconfig:"MAIL_PORT"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL"`
}

type MonitorConfig struct {
	RetentionMaxAge    time.Duration `envconfig:"RETENTION_MAX_AGE" default:"720h"`
	OfflineMultiplier  int           `envconfig:"OFFLINE_THRESHOLD_MULTIPLIER" default:"3"`
	ProbeTimeout       time.Duration `envconfig:"PROBE_TIMEOUT" default:"10s"`
	ProbeWorkers       int           `envconfig:"PROBE_WORKERS" default:"10"`
	ProbeNode          string        `envconfig:"PROBE_NODE" default:"default"`
	ProbeRegion        string        `envconfig:"PROBE_REGION" default:"default"`
	LatestSampleTTL    time.Duration `envconfig:"LATEST_SAMPLE_CACHE_TTL" default:"10m"`
	StoreTimeout       time.Duration `envconfig:"STORE_TIMEOUT" default:"10s"`
	OfflineSweepSpec   string        `envconfig:"OFFLINE_SWEEP_CRON" default:"*/5 * * * *"`
	PullSweepSpec      string        `envconfig:"PULL_SWEEP_CRON" default:"* * * * *"`
	ConnectivitySpec   string        `envconfig:"CONNECTIVITY_SWEEP_CRON" default:"*/10 * * * *"`
	RetentionSweepSpec string        `envconfig:"RETENTION_SWEEP_CRON" default:"0 */6 * * *"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
