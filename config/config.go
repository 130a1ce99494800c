package config

import (
	"encoding/json"
	"os"
)

// Config is the runtime configuration, loaded from a plain JSON file.
// Every field is optional; zero values fall back to defaults at the call site.
type Config struct {
	HTTP    HTTPConfig     `json:"http"`
	Log     LogConfig      `json:"log"`
	Tracing *TracingConfig `json:"tracing,omitempty"`
}

type HTTPConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type LogConfig struct {
	Level string `json:"level"`
}

// TracingConfig selects the trace exporter. Supported exporters: "stdout"
// (default) and "otlp" (OTLP over HTTP to Endpoint).
type TracingConfig struct {
	Exporter    string `json:"exporter"`
	Endpoint    string `json:"endpoint,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
