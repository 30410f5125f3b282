package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	NSQ        NSQConfig
	Settlement SettlementConfig
	Limits     LimitsConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
	APIKey     APIKeyConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ daemon configuration for the retry queue
type NSQConfig struct {
	Address       string
	LookupAddress string
	RetryTopic    string
	RetryChannel  string
}

// SettlementConfig contains settlement engine tuning
type SettlementConfig struct {
	MaxRetryAttempts     int     // attempt budget before MaxRetriesExceeded
	RetryBaseIntervalSec int     // backoff = attempt * base, capped
	RetryMaxIntervalSec  int     // backoff ceiling
	StalenessWindowSec   int     // processing transactions older than this are re-driven
	SweepIntervalSec     int     // background sweep period
	FeePercent           float64 // default fee when the rate oracle has no override
	InternalCurrency     string  // the bridge unit of account
}

// LimitsConfig contains per-user transfer limit configuration
type LimitsConfig struct {
	DailyTransferLimit float64 // per wallet per day, in source currency units
	RiskScoreThreshold float64 // validation fails at or above this score
}

// NewRelicConfig contains New Relic configuration
type NewRelicConfig struct {
	LicenseKey   string
	AppName      string
	Enabled      bool
	LogsEnabled  bool
	ForwardLogs  bool
	LogsEndpoint string
	LogsAPIKey   string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}

// APIKeyConfig contains API key auth for internal service endpoints
type APIKeyConfig struct {
	WalletService     string
	SettlementService string
}
