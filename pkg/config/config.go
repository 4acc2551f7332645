// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

// Package config loads the loglens configuration.
// Configuration files may be JSON or YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"sigs.k8s.io/yaml"
)

// EndpointEnv overrides the payload endpoint without a config file.
const EndpointEnv = "LOGLENS_ENDPOINT"

// Defaults when no file and no environment override are present.
const (
	DefaultEndpoint = "http://localhost:8080/v1/logs"
	DefaultListen   = ":8087"
	DefaultTimeout  = 10 * time.Second
)

// Config for an instance of loglens.
type Config struct {
	// Endpoint is the URL serving the raw OTLP logs export payload.
	Endpoint string `json:"endpoint,omitempty"`

	// Timeout for one payload fetch.
	Timeout Duration `json:"timeout,omitempty"`

	// Listen is the address for the REST server.
	Listen string `json:"listen,omitempty"`
}

// New returns the default configuration with the environment override applied.
func New() *Config {
	c := &Config{
		Endpoint: DefaultEndpoint,
		Timeout:  Duration{DefaultTimeout},
		Listen:   DefaultListen,
	}
	c.applyEnv()
	return c
}

// Load reads a configuration file over the defaults.
// The environment override still wins over the file.
func Load(path string) (*Config, error) {
	c := New()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	if c.Timeout.Duration <= 0 {
		c.Timeout = Duration{DefaultTimeout}
	}
	c.applyEnv()
	return c, nil
}

func (c *Config) applyEnv() {
	if ep := os.Getenv(EndpointEnv); ep != "" {
		c.Endpoint = ep
	}
}
