package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StorageConfig locates the S3-compatible bucket avatars are uploaded to.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// Config is the service configuration: an optional YAML file overridden by
// environment variables.
type Config struct {
	ListenAddr  string        `yaml:"listen_addr"`
	EmailDomain string        `yaml:"email_domain"`
	Storage     StorageConfig `yaml:"storage"`
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides, fills defaults, and rejects configs missing the
// storage endpoint or credentials.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ListenAddr:  ":8080",
		EmailDomain: "@gmail.com",
		Storage:     StorageConfig{Bucket: "avatars"},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Storage.Endpoint == "" {
		return nil, fmt.Errorf("Load: storage endpoint not set")
	}
	if cfg.Storage.AccessKey == "" || cfg.Storage.SecretKey == "" {
		return nil, fmt.Errorf("Load: storage credentials not set")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.ListenAddr, "LISTEN_ADDR")
	setString(&cfg.EmailDomain, "EMAIL_DOMAIN")
	setString(&cfg.Storage.Endpoint, "STORAGE_ENDPOINT")
	setString(&cfg.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	setString(&cfg.Storage.SecretKey, "STORAGE_SECRET_KEY")
	setString(&cfg.Storage.Bucket, "STORAGE_BUCKET")
	if v := os.Getenv("STORAGE_USE_SSL"); v != "" {
		cfg.Storage.UseSSL = v == "true" || v == "1"
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
