package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nkngn/payment-router/internal/route"
)

// Config holds application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Server struct {
		Addr                   string   `yaml:"addr"`
		ReadTimeoutSeconds     int      `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds    int      `yaml:"write_timeout_seconds"`
		IdleTimeoutSeconds     int      `yaml:"idle_timeout_seconds"`
		ShutdownTimeoutSeconds int      `yaml:"shutdown_timeout_seconds"`
		AllowedOrigins         []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	// CorridorsFile is read by the corridors loader. Inline Corridors are
	// appended after the file contents.
	CorridorsFile string           `yaml:"corridors_file"`
	Corridors     []route.Corridor `yaml:"corridors"`
}

func defaultConfig() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Server.Addr = ":8080"
	c.Server.ReadTimeoutSeconds = 5
	c.Server.WriteTimeoutSeconds = 10
	c.Server.IdleTimeoutSeconds = 60
	c.Server.ShutdownTimeoutSeconds = 10
	c.Server.AllowedOrigins = []string{"*"}
	return c
}

// Load reads configuration: defaults, .env, the YAML file named by
// ROUTER_CONFIG, then environment overrides.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	c := defaultConfig()
	if path := os.Getenv("ROUTER_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("ROUTER_HTTP_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("ROUTER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ROUTER_LOG_PRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("ROUTER_LOG_PRETTY: %w", err)
		}
		c.Logging.Pretty = b
	}
	if v := os.Getenv("ROUTER_CORRIDORS_FILE"); v != "" {
		c.CorridorsFile = v
	}
	if v := os.Getenv("ROUTER_ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitCSV(v)
	}
	if v := os.Getenv("ROUTER_SHUTDOWN_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("ROUTER_SHUTDOWN_TIMEOUT_SECONDS: %w", err)
		}
		c.Server.ShutdownTimeoutSeconds = n
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the fields the server cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server addr is required")
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %d", c.Server.ShutdownTimeoutSeconds)
	}
	return nil
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutSeconds) * time.Second
}

func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutSeconds) * time.Second
}

func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutSeconds) * time.Second
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutSeconds) * time.Second
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
