package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the kanban service
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTConfig        `yaml:"jwt"`
	AuthAPI    AuthAPIConfig    `yaml:"auth_api"`
	Logger     LoggerConfig     `yaml:"logger"`
	S3         S3Config         `yaml:"s3"`
	Invitation InvitationConfig `yaml:"invitation"`
	Jobs       JobsConfig       `yaml:"jobs"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string        `yaml:"port"`
	Mode            string        `yaml:"mode"`
	BasePath        string        `yaml:"base_path"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL             string        `yaml:"url"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	DBName          string        `yaml:"dbname"`
	SSLMode         string        `yaml:"sslmode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// GetDSN returns the PostgreSQL connection string.
// DATABASE_URL style values take precedence over the discrete fields.
func (d DatabaseConfig) GetDSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Addr returns host:port for the Redis server
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// AuthAPIConfig holds auth-service configuration.
// When BaseURL is empty tokens are validated locally with the JWT secret.
type AuthAPIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level string `yaml:"level"`
}

// S3Config holds S3 configuration used for board exports
type S3Config struct {
	Bucket        string        `yaml:"bucket"`
	Region        string        `yaml:"region"`
	AccessKey     string        `yaml:"access_key"`
	SecretKey     string        `yaml:"secret_key"`
	Endpoint      string        `yaml:"endpoint"`
	PresignExpiry time.Duration `yaml:"presign_expiry"`
}

// InvitationConfig holds invitation code and redemption settings
type InvitationConfig struct {
	CodeLength       int           `yaml:"code_length"`
	RedeemRateLimit  int           `yaml:"redeem_rate_limit"`
	RedeemRateWindow time.Duration `yaml:"redeem_rate_window"`
}

// JobsConfig holds cron schedules
type JobsConfig struct {
	MetricsCron string `yaml:"metrics_cron"`
}

// Default returns the configuration used when no file or env override is present
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			Mode:            "debug",
			BasePath:        "/api/kanban",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			DBName:          "kanban",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: 6379,
			DB:   0,
		},
		AuthAPI: AuthAPIConfig{
			Timeout: 5 * time.Second,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		S3: S3Config{
			PresignExpiry: 15 * time.Minute,
		},
		Invitation: InvitationConfig{
			CodeLength:       12,
			RedeemRateLimit:  10,
			RedeemRateWindow: time.Minute,
		},
		Jobs: JobsConfig{
			MetricsCron: "@every 1m",
		},
	}
}

// Load reads configuration from a yaml file (if it exists) and applies
// environment variable overrides on top of it
func Load(path string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Invitation codes are stored in a varchar(64) column
const (
	minInvitationCodeLength = 8
	maxInvitationCodeLength = 64
)

// Validate checks values that would make the service unusable
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Invitation.CodeLength < minInvitationCodeLength || c.Invitation.CodeLength > maxInvitationCodeLength {
		return fmt.Errorf("invitation code length must be between %d and %d, got %d",
			minInvitationCodeLength, maxInvitationCodeLength, c.Invitation.CodeLength)
	}
	if c.JWT.Secret == "" && c.AuthAPI.BaseURL == "" {
		return fmt.Errorf("either jwt secret or auth api base url must be configured")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}
	if env := os.Getenv("ENV"); env == "production" {
		cfg.Server.Mode = "release"
	}
	if basePath := os.Getenv("SERVER_BASE_PATH"); basePath != "" {
		cfg.Server.BasePath = basePath
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.Logger.Level = logLevel
	}

	// Database
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Database.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Database.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Database.DBName = name
	}

	// Redis
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		cfg.Redis.Host = redisHost
	}
	if redisPort := os.Getenv("REDIS_PORT"); redisPort != "" {
		if p, err := strconv.Atoi(redisPort); err == nil {
			cfg.Redis.Port = p
		}
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}

	// Auth
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if authURL := os.Getenv("AUTH_SERVICE_URL"); authURL != "" {
		cfg.AuthAPI.BaseURL = authURL
	}

	// S3
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		cfg.S3.Bucket = bucket
	}
	if region := os.Getenv("S3_REGION"); region != "" {
		cfg.S3.Region = region
	}
	if accessKey := os.Getenv("S3_ACCESS_KEY"); accessKey != "" {
		cfg.S3.AccessKey = accessKey
	}
	if secretKey := os.Getenv("S3_SECRET_KEY"); secretKey != "" {
		cfg.S3.SecretKey = secretKey
	}
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		cfg.S3.Endpoint = endpoint
	}

	// Invitations
	if length := os.Getenv("INVITATION_CODE_LENGTH"); length != "" {
		if l, err := strconv.Atoi(length); err == nil {
			cfg.Invitation.CodeLength = l
		}
	}
	if limit := os.Getenv("REDEEM_RATE_LIMIT"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			cfg.Invitation.RedeemRateLimit = l
		}
	}

	// Jobs
	if spec := os.Getenv("METRICS_CRON"); spec != "" {
		cfg.Jobs.MetricsCron = spec
	}
}
