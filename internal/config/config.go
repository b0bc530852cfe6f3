// Package config loads runtime startup configuration from a YAML file.
// Every field has a default; a missing config file yields a fully usable
// development configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort        = 3100
	defaultEnv         = "development"
	defaultDriver      = "sqlite"
	defaultSQLitePath  = "data/content.db"
	defaultRedisURL    = "redis://localhost:6379/0"
	defaultAdminEmail  = "admin@clementmotivates.com"
	defaultAdminPass   = "admin"
	defaultWhatsAppNum = "2348060180077"
)

// AppConfig is the root configuration.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	AllowedOrigins []string       `yaml:"allowed_origins"`
	JWTSecret      string         `yaml:"jwt_secret"`
	Storage        StorageConfig  `yaml:"storage"`
	Admin          AdminConfig    `yaml:"admin"`
	Forward        ForwardConfig  `yaml:"forward"`
	WhatsApp       WhatsAppConfig `yaml:"whatsapp"`
	Media          MediaConfig    `yaml:"media"`
}

// StorageConfig selects and parameterizes the backing key-value store.
type StorageConfig struct {
	Driver        string `yaml:"driver"` // "sqlite" | "redis" | "memory"
	Path          string `yaml:"path"`   // sqlite database file
	RedisURL      string `yaml:"redis_url"`
	Prefix        string `yaml:"prefix"` // redis key prefix
	MaxValueBytes int    `yaml:"max_value_bytes"`
}

// AdminConfig holds the administrator credentials. When PasswordHash is set
// it takes precedence over the plaintext Password.
type AdminConfig struct {
	Email        string `yaml:"email"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"` // bcrypt
}

// ForwardConfig points at the external form-submission endpoint. An empty
// endpoint disables forwarding.
type ForwardConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// WhatsAppConfig holds the number inquiry deep links are addressed to.
type WhatsAppConfig struct {
	Phone string `yaml:"phone"`
}

// MediaConfig bounds uploads to the media library.
type MediaConfig struct {
	MaxEncodedBytes int `yaml:"max_encoded_bytes"`
}

// Load reads the config file at path. A missing file is not an error; the
// defaults are returned.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	normalize(&cfg)
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	switch cfg.Storage.Driver {
	case "sqlite", "redis", "memory":
	default:
		return nil, fmt.Errorf("invalid storage.driver %q in %q, expected sqlite, redis, or memory", cfg.Storage.Driver, path)
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Storage: StorageConfig{
			Driver:   defaultDriver,
			Path:     defaultSQLitePath,
			RedisURL: defaultRedisURL,
		},
		Admin: AdminConfig{
			Email:    defaultAdminEmail,
			Password: defaultAdminPass,
		},
		Forward: ForwardConfig{
			Endpoint: "https://hbliudvd.formester.com/f/VZC4I2oOc",
		},
		WhatsApp: WhatsAppConfig{
			Phone: defaultWhatsAppNum,
		},
	}
}

func normalize(cfg *AppConfig) {
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaultDriver
	}
	cfg.Storage.Path = strings.TrimSpace(cfg.Storage.Path)
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultSQLitePath
	}
	cfg.Storage.RedisURL = strings.TrimSpace(cfg.Storage.RedisURL)
	if cfg.Storage.RedisURL != "" &&
		!strings.HasPrefix(cfg.Storage.RedisURL, "redis://") &&
		!strings.HasPrefix(cfg.Storage.RedisURL, "rediss://") {
		cfg.Storage.RedisURL = "redis://" + cfg.Storage.RedisURL
	}
	if cfg.Storage.RedisURL == "" {
		cfg.Storage.RedisURL = defaultRedisURL
	}

	cfg.Admin.Email = strings.TrimSpace(cfg.Admin.Email)
	if cfg.Admin.Email == "" {
		cfg.Admin.Email = defaultAdminEmail
	}
	cfg.Admin.PasswordHash = strings.TrimSpace(cfg.Admin.PasswordHash)
	if cfg.Admin.Password == "" && cfg.Admin.PasswordHash == "" {
		cfg.Admin.Password = defaultAdminPass
	}

	cfg.Forward.Endpoint = strings.TrimSpace(cfg.Forward.Endpoint)
	cfg.WhatsApp.Phone = normalizePhone(cfg.WhatsApp.Phone)
	if cfg.WhatsApp.Phone == "" {
		cfg.WhatsApp.Phone = defaultWhatsAppNum
	}

	out := make([]string, 0, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	cfg.AllowedOrigins = out
}

// normalizePhone strips everything but digits, the shape wa.me links need.
func normalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsDev reports whether the service runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}
