// Package config loads runtime configuration for the vidkeeper binary.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-file string   path of the JSON catalog file
//	-addr string   host:port the form front-end listens on
//
// # JSON schema
//
// Keys missing from the file keep their earlier values:
//
//	{
//	  "storage_path": "videos.json",
//	  "listen_addr": "localhost:8080"
//	}
//
// Primary API
//
//   - type Config                     — holds StoragePath and ListenAddr
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values.
package config
