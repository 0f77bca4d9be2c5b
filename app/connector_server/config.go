package main

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/inoova/shipping-connector/pkg/connector/carrier"
	"github.com/inoova/shipping-connector/pkg/util"
)

type Config struct {
	Database util.PostgresDatabaseConfig `yaml:"database"`
	Server   struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	GLS     carrier.GLSConfig `yaml:"gls"`
	Tracker struct {
		Enabled       *bool   `yaml:"enabled"`
		CheckInterval int     `yaml:"check_interval"`
		BatchSize     int     `yaml:"batch_size"`
		RatePerSecond float64 `yaml:"rate_per_second"`
	} `yaml:"tracker"`
	Webhook struct {
		CheckInterval int `yaml:"check_interval"`
		BatchSize     int `yaml:"batch_size"`
		Timeout       int `yaml:"timeout"`
		MaxRetry      int `yaml:"max_retry"`
	} `yaml:"webhook"`
	Locale       string `yaml:"locale"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

func (c *Config) SetDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Tracker.Enabled == nil {
		c.Tracker.Enabled = util.Ptr(true)
	}
	if c.Tracker.CheckInterval == 0 {
		c.Tracker.CheckInterval = 3600
	}
	if c.Tracker.BatchSize == 0 {
		c.Tracker.BatchSize = 100
	}
	if c.Locale == "" {
		c.Locale = "it"
	}
}

func (c *Config) Validate() error {
	err := validation.Errors{
		"database.host":           validation.Validate(c.Database.Host, validation.Required),
		"database.database":       validation.Validate(c.Database.Database, validation.Required),
		"server.port":             validation.Validate(c.Server.Port, validation.Min(1), validation.Max(65535)),
		"tracker.batch_size":      validation.Validate(c.Tracker.BatchSize, validation.Min(1), validation.Max(1000)),
		"tracker.rate_per_second": validation.Validate(c.Tracker.RatePerSecond, validation.Min(0.0)),
		"gls.password":            validation.Validate(c.GLS.Password, validation.When(c.GLS.Configured(), validation.Required)),
	}.Filter()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
