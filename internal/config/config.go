package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/simonvc/tripbudget/internal/logging"
)

// Prefix namespaces the environment variables, e.g. TRIPBUDGET_DB_PATH.
const Prefix = "TRIPBUDGET"

type Config struct {
	DBPath        string        `envconfig:"DB_PATH" default:"trip_budget.db"`
	Addr          string        `envconfig:"ADDR" default:":8888"`
	ServerURL     string        `envconfig:"SERVER"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat     string        `envconfig:"LOG_FORMAT" default:"text"`
	ClientTimeout time.Duration `envconfig:"CLIENT_TIMEOUT" default:"30s"`
}

// LoadDotEnv reads variables from the given files (.env when none) without
// overriding the real environment. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "database path cannot be empty")
	}

	if _, port, err := net.SplitHostPort(c.Addr); err != nil {
		problems = append(problems, fmt.Sprintf("invalid listen address '%s': %v", c.Addr, err))
	} else if port == "" {
		problems = append(problems, fmt.Sprintf("invalid listen address '%s': missing port", c.Addr))
	}

	if c.ServerURL != "" {
		u, err := url.Parse(c.ServerURL)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("invalid server URL '%s': %v", c.ServerURL, err))
		case u.Scheme != "http" && u.Scheme != "https":
			problems = append(problems, fmt.Sprintf("invalid server URL '%s': scheme must be http or https", c.ServerURL))
		case u.Host == "":
			problems = append(problems, fmt.Sprintf("invalid server URL '%s': missing host", c.ServerURL))
		}
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be one of [text json]", c.LogFormat))
	}

	if c.ClientTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid client timeout %v: must be positive", c.ClientTimeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}
