package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-canvas/internal/canvas"
	"github.com/feral-file/ff-canvas/internal/collab"
	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/fee"
	"github.com/feral-file/ff-canvas/internal/rarity"
	"github.com/feral-file/ff-canvas/internal/store"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	Path            string        `mapstructure:"path"`               // sqlite file path, ":memory:" for a throwaway database
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// CatalogConfig holds the trait catalog bootstrap configuration
type CatalogConfig struct {
	SeedPath    string `mapstructure:"seed_path"`
	SeedCreator string `mapstructure:"seed_creator"`
}

// PolicyConfig holds the pricing and collaboration policy
type PolicyConfig struct {
	MintFee                 uint64 `mapstructure:"mint_fee"`
	CustomizationFee        uint64 `mapstructure:"customization_fee"`
	DemandMultiplierPercent uint64 `mapstructure:"demand_multiplier_percent"`
	FeeSink                 string `mapstructure:"fee_sink"`

	ApprovalThreshold uint64 `mapstructure:"approval_threshold"`
	ConflictLimit     uint64 `mapstructure:"conflict_limit"`
	ArtisticThreshold uint64 `mapstructure:"artistic_threshold"`
	BoostPercent      uint64 `mapstructure:"boost_percent"`
	CooldownSeconds   int64  `mapstructure:"cooldown_seconds"`
	BoostPolicy       string `mapstructure:"boost_policy"` // compounding or ledger

	RewardPoolPercent     uint64 `mapstructure:"reward_pool_percent"`
	RewardParticipants    uint64 `mapstructure:"reward_participants"`
	RoyaltyPercent        uint64 `mapstructure:"royalty_percent"`
	CommunityBonusDivisor uint64 `mapstructure:"community_bonus_divisor"`
}

// MetricsConfig holds prometheus configuration
type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
	Path      string `mapstructure:"path"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Catalog    CatalogConfig  `mapstructure:"catalog"`
	Policy     PolicyConfig   `mapstructure:"policy"`
	Metrics    MetricsConfig  `mapstructure:"metrics"`
}

// EventRelaySweeperConfig holds configuration of the outbox relay loop
type EventRelaySweeperConfig struct {
	BatchSize            int           `mapstructure:"batch_size"`
	IdleInterval         time.Duration `mapstructure:"idle_interval"`
	RetryInitialInterval time.Duration `mapstructure:"retry_initial_interval"`
	RetryMaxInterval     time.Duration `mapstructure:"retry_max_interval"`
	RetryMaxElapsedTime  time.Duration `mapstructure:"retry_max_elapsed_time"`
	Worker               WorkerConfig  `mapstructure:"worker"`
}

// EventRelayConfig holds configuration for the event relay program
type EventRelayConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig          `mapstructure:"database"`
	NATS       NATSConfig              `mapstructure:"nats"`
	Relay      EventRelaySweeperConfig `mapstructure:"relay"`
	Metrics    MetricsConfig           `mapstructure:"metrics"`
	// MetricsAddr is the listen address of the /metrics endpoint, empty disables it
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// setDatabaseDefaults sets the defaults shared by every program
func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", store.DriverPostgres)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("metrics.namespace", "ff_canvas")
	v.SetDefault("metrics.path", "/metrics")
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)

	defaults := fee.DefaultPolicy()
	thresholds := collab.DefaultThresholds()
	rewards := collab.DefaultRewardPolicy()
	v.SetDefault("policy.mint_fee", uint64(defaults.MintFee))
	v.SetDefault("policy.customization_fee", uint64(defaults.CustomizationFee))
	v.SetDefault("policy.demand_multiplier_percent", defaults.DemandMultiplierPercent)
	v.SetDefault("policy.fee_sink", string(defaults.FeeSink))
	v.SetDefault("policy.approval_threshold", thresholds.ApprovalThreshold)
	v.SetDefault("policy.conflict_limit", thresholds.ConflictLimit)
	v.SetDefault("policy.artistic_threshold", thresholds.ArtisticThreshold)
	v.SetDefault("policy.boost_percent", thresholds.BoostPercent)
	v.SetDefault("policy.cooldown_seconds", thresholds.CooldownSeconds)
	v.SetDefault("policy.boost_policy", "compounding")
	v.SetDefault("policy.reward_pool_percent", rewards.PoolPercent)
	v.SetDefault("policy.reward_participants", rewards.Participants)
	v.SetDefault("policy.royalty_percent", rewards.RoyaltyPercent)
	v.SetDefault("policy.community_bonus_divisor", rewards.CommunityBonusDivisor)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Policy.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadEventRelayConfig loads configuration for the event relay program
func LoadEventRelayConfig(configFile string, envPath string) (*EventRelayConfig, error) {
	v := configureViper("event-relay", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "CANVAS_EVENTS")
	v.SetDefault("nats.connection_name", "ff-canvas-event-relay")
	v.SetDefault("relay.batch_size", 100)
	v.SetDefault("relay.idle_interval", "5s")
	v.SetDefault("relay.retry_initial_interval", "500ms")
	v.SetDefault("relay.retry_max_interval", "30s")
	v.SetDefault("relay.retry_max_elapsed_time", "2m")
	v.SetDefault("relay.worker.pool_size", 8)
	v.SetDefault("relay.worker.queue_size", 100)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg EventRelayConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.NATS.URL == "" {
		return nil, errors.New("nats.url is required")
	}

	return &cfg, nil
}

// Validate checks the policy values that would make operations meaningless
func (c PolicyConfig) Validate() error {
	switch c.BoostPolicy {
	case "", "compounding", "ledger":
	default:
		return fmt.Errorf("policy.boost_policy must be compounding or ledger, got %q", c.BoostPolicy)
	}
	if c.FeeSink != "" && !domain.NormalizeAccount(c.FeeSink).Valid() {
		return fmt.Errorf("policy.fee_sink is not a valid account: %q", c.FeeSink)
	}
	if c.RewardPoolPercent > 100 || c.RoyaltyPercent > 100 {
		return errors.New("policy reward percentages must not exceed 100")
	}
	return nil
}

// CanvasConfig translates the policy into the service configuration
func (c PolicyConfig) CanvasConfig() canvas.Config {
	cfg := canvas.DefaultConfig()

	cfg.Fees = fee.Policy{
		MintFee:                 domain.Amount(c.MintFee),
		CustomizationFee:        domain.Amount(c.CustomizationFee),
		DemandMultiplierPercent: c.DemandMultiplierPercent,
		FeeSink:                 domain.NormalizeAccount(c.FeeSink),
	}
	if cfg.Fees.FeeSink == "" {
		cfg.Fees.FeeSink = fee.DefaultPolicy().FeeSink
	}

	cfg.Collab.Thresholds = collab.Thresholds{
		ApprovalThreshold: c.ApprovalThreshold,
		ConflictLimit:     c.ConflictLimit,
		ArtisticThreshold: c.ArtisticThreshold,
		BoostPercent:      c.BoostPercent,
		CooldownSeconds:   c.CooldownSeconds,
	}
	cfg.Collab.Rewards = collab.RewardPolicy{
		PoolPercent:           c.RewardPoolPercent,
		Participants:          c.RewardParticipants,
		RoyaltyPercent:        c.RoyaltyPercent,
		CommunityBonusDivisor: c.CommunityBonusDivisor,
	}
	cfg.Collab.Boost = rarity.PolicyByName(c.BoostPolicy)

	return cfg
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/event-relay/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_CANVAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.driver",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.path",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Catalog
		"catalog.seed_path",
		"catalog.seed_creator",
		// Policy
		"policy.mint_fee",
		"policy.customization_fee",
		"policy.demand_multiplier_percent",
		"policy.fee_sink",
		"policy.approval_threshold",
		"policy.conflict_limit",
		"policy.artistic_threshold",
		"policy.boost_percent",
		"policy.cooldown_seconds",
		"policy.boost_policy",
		"policy.reward_pool_percent",
		"policy.reward_participants",
		"policy.royalty_percent",
		"policy.community_bonus_divisor",
		// Metrics
		"metrics.namespace",
		"metrics.path",
		"metrics_addr",
		// Relay
		"relay.batch_size",
		"relay.idle_interval",
		"relay.retry_initial_interval",
		"relay.retry_max_interval",
		"relay.retry_max_elapsed_time",
		"relay.worker.pool_size",
		"relay.worker.queue_size",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string for the configured driver
func (c *DatabaseConfig) DSN() string {
	if c.Driver == store.DriverSQLite {
		if c.Path == "" {
			return ":memory:"
		}
		return c.Path
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
