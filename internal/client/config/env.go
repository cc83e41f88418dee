package config

import (
	"fmt"
	"os"
	"time"
)

func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("PT_SERVER_ADDR"); ok {
		cfg.ServerEndpointAddr = v
	}
	if v, ok := os.LookupEnv("PT_REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("PT_REQUEST_TIMEOUT: %w", err))
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv("PT_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
}
