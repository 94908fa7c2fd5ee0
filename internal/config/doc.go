// Package config loads and validates the tracker's TOML configuration.
package config
