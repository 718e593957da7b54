// Package config handles application configuration loading and validation.
//
// Configuration is loaded from an optional config.yml and validated using
// struct tags. A missing file is not an error: defaults select the public
// MBTA v3 API endpoint.
package config
