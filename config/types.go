package config

import "time"

// APIConfig configures the transit API client.
type APIConfig struct {
	BaseURL    string `yaml:"base_url" validate:"omitempty,url"`
	TimeoutMS  int    `yaml:"timeout_ms" validate:"gte=0"`
	RouteTypes string `yaml:"route_types"`
}

// Timeout returns the request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	API APIConfig `yaml:"api"`
}
