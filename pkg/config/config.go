package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported text analysis backends
const (
	NLPBackendProse = "prose"
	NLPBackendSpacy = "spacy"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NLP      NLPConfig
	Storage  StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:8081"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" default:"localhost"`
	Port           string        `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" default:"postgres"`
	Password       string        `envconfig:"DB_PASSWORD" default:"postgres"`
	Name           string        `envconfig:"DB_NAME" default:"voice_assistant"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns       int           `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns       int           `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate    bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"30s"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// NLPConfig selects and tunes the text analysis backend
type NLPConfig struct {
	Backend      string        `envconfig:"NLP_BACKEND" default:"prose"`
	SpacyURL     string        `envconfig:"SPACY_URL" default:""`
	SpacyTimeout time.Duration `envconfig:"SPACY_TIMEOUT" default:"10s"`
	ReadyTimeout time.Duration `envconfig:"NLP_READY_TIMEOUT" default:"30s"`
	CacheEnabled bool          `envconfig:"NLP_CACHE_ENABLED" default:"true"`
	CacheTTL     time.Duration `envconfig:"NLP_CACHE_TTL" default:"1h"`
}

// StorageConfig holds transcript archive configuration
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"voice-assistant"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch strings.ToLower(c.NLP.Backend) {
	case NLPBackendProse:
	case NLPBackendSpacy:
		if c.NLP.SpacyURL == "" {
			return fmt.Errorf("SPACY_URL is required when NLP_BACKEND=spacy")
		}
	default:
		return fmt.Errorf("unsupported NLP_BACKEND %q (want %q or %q)", c.NLP.Backend, NLPBackendProse, NLPBackendSpacy)
	}
	if c.Database.AutoMigrate && c.IsProduction() {
		return fmt.Errorf("DB_AUTO_MIGRATE must be disabled in production; run cmd/migrate instead")
	}
	if c.Storage.Enabled && c.Storage.BucketName == "" {
		return fmt.Errorf("STORAGE_BUCKET is required when STORAGE_ENABLED=true")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
