// Package config handles loading and validating the config.toml
// configuration file for the siren CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the top-level configuration.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Output OutputConfig `toml:"output"`
}

// EngineConfig points at a SIREN-compatible report engine.
type EngineConfig struct {
	Endpoint string `toml:"endpoint"`
	Timeout  int    `toml:"timeout"` // HTTP timeout in seconds (0 = default)
}

// OutputConfig configures artifact output and preview behavior.
type OutputConfig struct {
	Dir         string `toml:"dir"`
	OpenBrowser bool   `toml:"open_browser"`
	Port        int    `toml:"port"` // preview server port (0 = OS-assigned)
}

// Load reads a config.toml file and returns a validated Config.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Output: OutputConfig{Dir: "output"},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s\n  Create one with: cp config.example.toml config.toml", path)
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// Environment variable overrides
	if endpoint := os.Getenv("SIREN_ENDPOINT"); endpoint != "" {
		cfg.Engine.Endpoint = endpoint
	}
	if timeout := os.Getenv("SIREN_TIMEOUT"); timeout != "" {
		n, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("SIREN_TIMEOUT: %w", err)
		}
		cfg.Engine.Timeout = n
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Engine.Endpoint == "" {
		return fmt.Errorf("engine.endpoint is required (e.g. http://127.0.0.1:5000)")
	}
	if !strings.HasPrefix(c.Engine.Endpoint, "http://") && !strings.HasPrefix(c.Engine.Endpoint, "https://") {
		return fmt.Errorf("engine.endpoint must be an http(s) URL, got %q", c.Engine.Endpoint)
	}
	c.Engine.Endpoint = strings.TrimRight(c.Engine.Endpoint, "/")

	if c.Engine.Timeout < 0 {
		return fmt.Errorf("engine.timeout must not be negative")
	}

	if c.Output.Dir == "" {
		c.Output.Dir = "output"
	}
	if c.Output.Port < 0 || c.Output.Port > 65535 {
		return fmt.Errorf("output.port must be a valid port number, got %d", c.Output.Port)
	}

	return nil
}
