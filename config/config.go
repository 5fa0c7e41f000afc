package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Blob     BlobConfig     `yaml:"blob"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	Debug           bool    `yaml:"debug"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// BlobConfig holds the connection settings for the S3-compatible object
// store that receives uploaded school images.
type BlobConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	Bucket    string `yaml:"bucket"`
	// PublicBaseURL is the externally reachable base for stored objects,
	// e.g. "https://cdn.example.com". Defaults to the endpoint.
	PublicBaseURL string `yaml:"public_base_url"`
}

// Load reads the configuration from the given path. Secrets may be
// overridden through the environment (DATABASE_DSN, BLOB_ACCESS_KEY,
// BLOB_SECRET_KEY) so they stay out of the config file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if key := os.Getenv("BLOB_ACCESS_KEY"); key != "" {
		cfg.Blob.AccessKey = key
	}
	if key := os.Getenv("BLOB_SECRET_KEY"); key != "" {
		cfg.Blob.SecretKey = key
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Blob.Bucket == "" {
		cfg.Blob.Bucket = "school-images"
	}
	if cfg.Blob.PublicBaseURL == "" {
		scheme := "http"
		if cfg.Blob.UseSSL {
			scheme = "https"
		}
		cfg.Blob.PublicBaseURL = scheme + "://" + cfg.Blob.Endpoint
	}

	return &cfg, nil
}
