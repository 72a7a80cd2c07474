// Package config loads and validates salient's TOML configuration.
//
// Load resolves the file location (explicit path, then
// ~/.config/salient/config.toml, then ./salient.toml), decodes it over the
// repository defaults, expands paths, applies environment overrides, and
// validates the result. Commands receive a fully normalized *Config and never
// re-check values themselves.
package config
