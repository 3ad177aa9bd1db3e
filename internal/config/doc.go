// Package config loads, normalizes, and validates supercut configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SUPERCUT_VLC_PATH. Always obtain settings through this package so
// downstream code receives sanitized paths and clear validation errors.
package config
