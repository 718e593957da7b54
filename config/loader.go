package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied after loading.
const (
	DefaultBaseURL    = "https://api-v3.mbta.com"
	DefaultTimeoutMS  = 30000
	DefaultRouteTypes = "0,1"
)

// Load reads and validates the application configuration from config.yml.
// The file is optional: when none of the candidate paths exist the defaults
// apply unchanged.
func Load() (AppConfig, error) {
	var cfg AppConfig

	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, err
	}

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.TimeoutMS == 0 {
		cfg.API.TimeoutMS = DefaultTimeoutMS
	}
	if cfg.API.RouteTypes == "" {
		cfg.API.RouteTypes = DefaultRouteTypes
	}
	return cfg, nil
}
