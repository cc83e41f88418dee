package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/plaintheory/internal/flagx"
	"github.com/dmitrijs2005/plaintheory/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the server configuration. Durations use
// timex.Duration so both "15m" and integer nanoseconds are accepted. Pointer
// fields distinguish "absent" from the zero value; absent keys keep whatever
// the previous layer set.
type FileConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	EndpointAddrHTTP             *string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	DatabaseDSN                  *string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey                    *string         `json:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration" yaml:"refresh_token_validity_duration"`
	S3RootUser                   *string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword               *string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Region                     *string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint               *string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	S3PublicBaseURL              *string         `json:"s3_public_base_url" yaml:"s3_public_base_url"`
	MaxUploadSize                *int64          `json:"max_upload_size" yaml:"max_upload_size"`
	AutoConfirm                  *bool           `json:"auto_confirm" yaml:"auto_confirm"`
	IdentityCacheSize            *int            `json:"identity_cache_size" yaml:"identity_cache_size"`
	IdentityCacheTTL             *timex.Duration `json:"identity_cache_ttl" yaml:"identity_cache_ttl"`
	LogLevel                     *string         `json:"log_level" yaml:"log_level"`
}

// parseFile loads the file named by -c/-config into config. ".yaml" and
// ".yml" files are decoded as YAML, anything else as JSON. An unreadable or
// malformed file panics: the server must not start half-configured.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	b, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, fc)
	default:
		err = json.Unmarshal(b, fc)
	}
	if err != nil {
		panic(fmt.Errorf("config %s: %w", path, err))
	}

	fc.apply(config)
}

func (fc *FileConfig) apply(c *Config) {
	setString(&c.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setString(&c.EndpointAddrHTTP, fc.EndpointAddrHTTP)
	setString(&c.DatabaseDSN, fc.DatabaseDSN)
	setString(&c.SecretKey, fc.SecretKey)
	if fc.AccessTokenValidityDuration != nil {
		c.AccessTokenValidityDuration = fc.AccessTokenValidityDuration.Duration
	}
	if fc.RefreshTokenValidityDuration != nil {
		c.RefreshTokenValidityDuration = fc.RefreshTokenValidityDuration.Duration
	}
	setString(&c.S3RootUser, fc.S3RootUser)
	setString(&c.S3RootPassword, fc.S3RootPassword)
	setString(&c.S3Region, fc.S3Region)
	setString(&c.S3BaseEndpoint, fc.S3BaseEndpoint)
	setString(&c.S3PublicBaseURL, fc.S3PublicBaseURL)
	if fc.MaxUploadSize != nil {
		c.MaxUploadSize = *fc.MaxUploadSize
	}
	if fc.AutoConfirm != nil {
		c.AutoConfirm = *fc.AutoConfirm
	}
	if fc.IdentityCacheSize != nil {
		c.IdentityCacheSize = *fc.IdentityCacheSize
	}
	if fc.IdentityCacheTTL != nil {
		c.IdentityCacheTTL = fc.IdentityCacheTTL.Duration
	}
	setString(&c.LogLevel, fc.LogLevel)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
