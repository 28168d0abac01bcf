package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"

	"github.com/notalone-dev/notalone/internal/utils"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Port           int      `yaml:"port"`
	LogLevel       string   `yaml:"log_level"`
	LogJSON        bool     `yaml:"log_json"`
	SecureHeaders  bool     `yaml:"secure_headers"` // adds HSTS, only enable behind TLS
	AllowedOrigins []string `yaml:"allowed_origins"`

	Pool Pool `yaml:"pool"`

	AdminSessionTTLMinutes int `yaml:"admin_session_ttl_minutes"`

	// Per-IP token bucket settings for write endpoints.
	WriteRatePerMinute   float64 `yaml:"write_rate_per_minute"`
	WriteBurst           float64 `yaml:"write_burst"`
	LimiterExpireMinutes int     `yaml:"limiter_expire_minutes"`
}

type Pool struct {
	MaxOpenConns          int `yaml:"max_open_conns"`
	ConnMaxIdleSeconds    int `yaml:"conn_max_idle_seconds"`
	ConnectTimeoutSeconds int `yaml:"connect_timeout_seconds"`
}

type Private struct {
	DatabaseURL   string
	AdminPassword string
	SessionKey    string
}

// Environment variables recognized for the database connection string, in
// precedence order: the first one present wins.
var databaseURLEnvVars = []string{"POSTGRES_URL1", "POSTGRES_URL", "DATABASE_URL"}

// DatabaseURL returns the configured connection string, or "" when no
// recognized variable was set. Callers treat "" as a configuration error.
func (c *Config) DatabaseURL() string {
	return c.private.DatabaseURL
}

func (c *Config) AdminPassword() string {
	return c.private.AdminPassword
}

func (c *Config) SessionKey() string {
	return c.private.SessionKey
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func loadPrivateFromEnv() Private {
	var p Private
	for _, name := range databaseURLEnvVars {
		if v := os.Getenv(name); v != "" {
			p.DatabaseURL = v
			break
		}
	}
	p.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	p.SessionKey = os.Getenv("SESSION_KEY")
	if p.SessionKey == "" {
		// Random per-process key: issued session tokens stop working on
		// restart, the password header keeps working regardless.
		p.SessionKey = utils.GenerateToken(utils.TokenBytes)
	}
	return p
}

func applyDefaults(p *Public) {
	if p.Port == 0 {
		p.Port = 8080
	}
	if p.Pool.MaxOpenConns == 0 {
		p.Pool.MaxOpenConns = 20
	}
	if p.Pool.ConnMaxIdleSeconds == 0 {
		p.Pool.ConnMaxIdleSeconds = 30
	}
	if p.Pool.ConnectTimeoutSeconds == 0 {
		p.Pool.ConnectTimeoutSeconds = 10
	}
	if p.AdminSessionTTLMinutes == 0 {
		p.AdminSessionTTLMinutes = 60
	}
	if p.WriteRatePerMinute == 0 {
		p.WriteRatePerMinute = 10
	}
	if p.WriteBurst == 0 {
		p.WriteBurst = 3
	}
	if p.LimiterExpireMinutes == 0 {
		p.LimiterExpireMinutes = 60
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)
	applyDefaults(&public)

	return &Config{public, loadPrivateFromEnv()}
}

// NewFromEnv builds a config without a yaml file, defaults only. Used by
// tests and minimal deployments.
func NewFromEnv() *Config {
	var public Public
	applyDefaults(&public)
	return &Config{public, loadPrivateFromEnv()}
}
