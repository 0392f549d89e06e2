// Package config handles configuration loading and merging for makefmt.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--raw, --theme)
//  2. Environment variables (NO_COLOR, MAKEFMT_THEME)
//  3. YAML config file (.makefmt.yaml in the working directory)
//  4. Hardcoded defaults (rewriting enabled, default theme)
//
// When a higher-priority source sets a value, it overrides any
// lower-priority value.
package config
