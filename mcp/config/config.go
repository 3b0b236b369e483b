package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/questflowai/aster-mcp-server/aster"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

const (
	// DefaultPort is the HTTP transport listen port when PORT is unset.
	DefaultPort = 3000

	EnvPort      = "PORT"
	EnvAPIKey    = "ASTER_API_KEY"
	EnvAPISecret = "ASTER_API_SECRET"
)

// Exchange configures the upstream REST endpoint.
type Exchange struct {
	BaseURL string `yaml:"baseURL,omitempty" json:"baseURL,omitempty"`
	// TimeoutSec bounds the whole upstream round-trip; zero keeps the HTTP
	// client's default behavior (no independent deadline).
	TimeoutSec int `yaml:"timeoutSec,omitempty" json:"timeoutSec,omitempty"`
}

// Timeout returns the configured HTTP client timeout.
func (e *Exchange) Timeout() time.Duration {
	return time.Duration(e.TimeoutSec) * time.Second
}

// Credentials holds the optional static API key pair used when an inbound
// call carries no per-request credentials (the environment deployment mode).
type Credentials struct {
	Key    string `yaml:"key,omitempty" json:"key,omitempty"`
	Secret string `yaml:"secret,omitempty" json:"secret,omitempty"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level,omitempty" json:"level,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// Config is the root configuration document.
type Config struct {
	Server      *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Port        int                `yaml:"port,omitempty" json:"port,omitempty"`
	Exchange    *Exchange          `yaml:"exchange,omitempty" json:"exchange,omitempty"`
	Credentials *Credentials       `yaml:"credentials,omitempty" json:"credentials,omitempty"`
	Log         *Log               `yaml:"log,omitempty" json:"log,omitempty"`
}

// New returns a Config with defaults and environment overrides applied.
func New() *Config {
	cfg := &Config{}
	cfg.Init()
	return cfg
}

// Load reads a configuration document from a local path or URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", URL, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", URL, err)
	}
	cfg.Init()
	return cfg, nil
}

// Init applies defaults and environment overrides (PORT, ASTER_API_KEY,
// ASTER_API_SECRET). Explicitly configured values win over the environment.
func (c *Config) Init() {
	if c.Exchange == nil {
		c.Exchange = &Exchange{}
	}
	if c.Exchange.BaseURL == "" {
		c.Exchange.BaseURL = aster.DefaultBaseURL
	}
	if c.Port == 0 {
		if value := os.Getenv(EnvPort); value != "" {
			if port, err := strconv.Atoi(value); err == nil {
				c.Port = port
			}
		}
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Credentials == nil {
		c.Credentials = &Credentials{}
	}
	if c.Credentials.Key == "" {
		c.Credentials.Key = os.Getenv(EnvAPIKey)
	}
	if c.Credentials.Secret == "" {
		c.Credentials.Secret = os.Getenv(EnvAPISecret)
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %v", c.Port)
	}
	if c.Exchange != nil && c.Exchange.TimeoutSec < 0 {
		return fmt.Errorf("exchange.timeoutSec cannot be negative")
	}
	if c.Credentials != nil && (c.Credentials.Key == "") != (c.Credentials.Secret == "") {
		return fmt.Errorf("static credentials require both key and secret")
	}
	return nil
}
