// Package config provides types for handling configuration parameters.
package config

import (
	"flag"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config defines default URL composition parameters and overwrites them with environment variables.
type Config struct {
	Protocol string `env:"PROTOCOL" env-default:"http"`
	Resource string `env:"RESOURCE" env-default:"www.example.com/index.html"`
}

// NewDefaultConfiguration sets up a total configuration.
func NewDefaultConfiguration() (*Config, error) {
	cfg := Config{}
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseFlags parses command line arguments and stores them
func (c *Config) ParseFlags() {
	flag.StringVar(&c.Protocol, "p", c.Protocol, "Protocol part")
	flag.StringVar(&c.Resource, "r", c.Resource, "Resource part")
	flag.Parse()
}
