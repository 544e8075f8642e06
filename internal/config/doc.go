// Package config loads, validates, and normalizes mediaconv configuration
// from TOML files. A missing config file falls back to repository defaults
// so the tool works with zero setup.
package config
