// Package config loads, normalizes, and validates gavelmatch configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ORACLE_API_KEY. Matching weights and thresholds are plain configuration,
// never mutable global state; the scorer and resolver receive a validated
// snapshot at construction.
package config
