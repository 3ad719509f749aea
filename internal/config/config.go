package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port        string `yaml:"port" env:"SERVER_PORT"`
		Mode        string `yaml:"mode" env:"SERVER_MODE"`
		BaseURL     string `yaml:"base_url" env:"SERVER_BASE_URL"`
		StoragePath string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	JWT struct {
		Secret                 string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration  string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		RefreshTokenExpiration string `yaml:"refresh_token_expiration" env:"JWT_REFRESH_TOKEN_EXPIRATION"`
		Issuer                 string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Mailer struct {
		Provider  string `yaml:"provider" env:"MAILER_PROVIDER"` // sendgrid or console
		APIKey    string `yaml:"api_key" env:"SENDGRID_API_KEY"`
		FromName  string `yaml:"from_name" env:"MAILER_FROM_NAME"`
		FromEmail string `yaml:"from_email" env:"MAILER_FROM_EMAIL"`
	} `yaml:"mailer"`

	Media struct {
		Backend string `yaml:"backend" env:"MEDIA_BACKEND"` // local or oss
		OSS     struct {
			Endpoint        string `yaml:"endpoint" env:"OSS_ENDPOINT"`
			Bucket          string `yaml:"bucket" env:"OSS_BUCKET"`
			AccessKeyID     string `yaml:"access_key_id" env:"OSS_ACCESS_KEY_ID"`
			AccessKeySecret string `yaml:"access_key_secret" env:"OSS_ACCESS_KEY_SECRET"`
			PublicBaseURL   string `yaml:"public_base_url" env:"OSS_PUBLIC_BASE_URL"`
		} `yaml:"oss"`
	} `yaml:"media"`

	Geocoder struct {
		BaseURL   string `yaml:"base_url" env:"GEOCODER_BASE_URL"`
		UserAgent string `yaml:"user_agent" env:"GEOCODER_USER_AGENT"`
		CacheTTL  string `yaml:"cache_ttl" env:"GEOCODER_CACHE_TTL"`
	} `yaml:"geocoder"`

	Cache struct {
		PageTTL string `yaml:"page_ttl" env:"CACHE_PAGE_TTL"`
	} `yaml:"cache"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The config file is optional; env vars can carry the whole config
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.BaseURL = "http://localhost:8080"
	config.Server.StoragePath = "uploads"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "hostelhub"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.RefreshTokenExpiration = "720h"
	config.JWT.Issuer = "hostelhub.app"

	config.Mailer.Provider = "console"
	config.Mailer.FromName = "HostelHub"
	config.Mailer.FromEmail = "noreply@hostelhub.app"

	config.Media.Backend = "local"

	config.Geocoder.BaseURL = "https://nominatim.openstreetmap.org"
	config.Geocoder.UserAgent = "hostelhub-backend"
	config.Geocoder.CacheTTL = "24h"

	config.Cache.PageTTL = "5m"

	config.CORS.AllowedOrigins = []string{"*"}

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.JWT.RefreshTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT refresh token expiration format: %w", err)
	}

	switch config.Media.Backend {
	case "local":
	case "oss":
		if config.Media.OSS.Endpoint == "" || config.Media.OSS.Bucket == "" {
			return fmt.Errorf("oss media backend requires endpoint and bucket")
		}
	default:
		return fmt.Errorf("unknown media backend %q", config.Media.Backend)
	}

	switch config.Mailer.Provider {
	case "console":
	case "sendgrid":
		if config.Mailer.APIKey == "" {
			return fmt.Errorf("sendgrid mailer requires an API key")
		}
	default:
		return fmt.Errorf("unknown mailer provider %q", config.Mailer.Provider)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
