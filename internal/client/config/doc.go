// Package config loads runtime configuration for the Plain Theory client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config.
//  3. Environment: PT_SERVER_ADDR, PT_REQUEST_TIMEOUT, PT_LOG_LEVEL.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      request timeout (seconds)
//	-l string   log level
//
// # File schema
//
// Durations may be strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "10s",
//	  "log_level": "warn"
//	}
package config
