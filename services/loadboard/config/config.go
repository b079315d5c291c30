// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads service configuration.
//
// Defaults come first, an optional YAML file (LOADBOARD_CONFIG) layers on
// top, and environment variables win over both. Secrets (API keys,
// InfluxDB token) are environment-only and never read from the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration.
type Config struct {
	// Port the API listens on.
	Port string `yaml:"port"`
	// MetricsPort serves the Prometheus /metrics endpoint.
	MetricsPort string `yaml:"metrics_port"`
	// CSVPath is the load board file read at startup.
	CSVPath string `yaml:"csv_path"`
	// AllowedOrigins are the dashboard origins allowed by CORS.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// CallStore selects the call log backend.
	CallStore CallStoreConfig `yaml:"call_store"`

	// APIKey is the shared key the voice platform must send (env only).
	APIKey string `yaml:"-"`
	// FMCSAAPIKey is the FMCSA web key (env only). Empty disables the
	// carrier validation endpoint.
	FMCSAAPIKey string `yaml:"-"`

	// OTLPEndpoint enables request tracing when set (env only).
	OTLPEndpoint string `yaml:"-"`

	// Influx configures the optional call-outcome sink (env only;
	// disabled when URL is empty).
	Influx InfluxConfig `yaml:"-"`
}

// CallStoreConfig selects and locates the call log backend.
type CallStoreConfig struct {
	// Backend is "memory" (default) or "badger".
	Backend string `yaml:"backend"`
	// Path is the BadgerDB directory, required for the badger backend.
	Path string `yaml:"path"`
}

// InfluxConfig holds the optional InfluxDB connection settings.
type InfluxConfig struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// Load builds the configuration from defaults, the optional YAML file,
// and the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:           "8000",
		MetricsPort:    "9090",
		CSVPath:        "database/database_of_loads.csv",
		AllowedOrigins: []string{"http://localhost:5173"},
		CallStore:      CallStoreConfig{Backend: "memory"},
	}

	if path := os.Getenv("LOADBOARD_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read the config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse the config file: %w", err)
		}
	}

	overrideString(&cfg.Port, "PORT")
	overrideString(&cfg.MetricsPort, "METRICS_PORT")
	overrideString(&cfg.CSVPath, "LOADBOARD_CSV_PATH")
	overrideString(&cfg.CallStore.Backend, "CALL_STORE_BACKEND")
	overrideString(&cfg.CallStore.Path, "CALL_STORE_PATH")

	cfg.APIKey = os.Getenv("INTERNAL_API_KEY")
	cfg.FMCSAAPIKey = os.Getenv("FMCSA_API_KEY")
	cfg.OTLPEndpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")

	cfg.Influx = InfluxConfig{
		URL:    os.Getenv("INFLUXDB_URL"),
		Token:  os.Getenv("INFLUXDB_TOKEN"),
		Org:    envOr("INFLUXDB_ORG", "acme-logistics"),
		Bucket: envOr("INFLUXDB_BUCKET", "call-outcomes"),
	}

	if cfg.CallStore.Backend == "badger" && cfg.CallStore.Path == "" {
		return Config{}, fmt.Errorf("call store backend %q requires CALL_STORE_PATH", cfg.CallStore.Backend)
	}

	return cfg, nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
