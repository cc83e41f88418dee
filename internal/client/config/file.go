package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/plaintheory/internal/flagx"
	"github.com/dmitrijs2005/plaintheory/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the client configuration.
type FileConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	RequestTimeout     *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogLevel           *string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config. Read or decode
// errors panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	b, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		err = json.Unmarshal(b, &fc)
	}
	if err != nil {
		panic(fmt.Errorf("config %s: %w", path, err))
	}

	if fc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *fc.ServerEndpointAddr
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(fc.RequestTimeout.Duration)
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
}
