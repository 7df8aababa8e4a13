// Package config loads and validates csvcmp configuration.
//
// Configuration is resolved from four layers, lowest to highest priority:
//
//  1. Built-in defaults ([Default])
//  2. An optional config file named with --config (yaml, json or toml)
//  3. Environment variables prefixed with CSVCMP_ (e.g. CSVCMP_MATCH,
//     CSVCMP_STRICT_INDEX, CSVCMP_LOG_LEVEL)
//  4. CLI flag overrides passed to [Load]
//
// Nothing is written back; there is no default config file location.
package config
