package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/plaintheory/internal/flagx"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by the server.
const EnvPrefix = "PT_"

// parseEnv overlays PT_* environment variables. A dotenv file named by -env,
// or ./.env when present, is loaded first; variables already set in the
// process environment win over the file.
func parseEnv(config *Config) {
	loadDotEnv()

	envString("GRPC_ADDR", &config.EndpointAddrGRPC)
	envString("HTTP_ADDR", &config.EndpointAddrHTTP)
	envString("DATABASE_DSN", &config.DatabaseDSN)
	envString("SECRET_KEY", &config.SecretKey)
	envDuration("ACCESS_TOKEN_TTL", &config.AccessTokenValidityDuration)
	envDuration("REFRESH_TOKEN_TTL", &config.RefreshTokenValidityDuration)
	envString("S3_ROOT_USER", &config.S3RootUser)
	envString("S3_ROOT_PASSWORD", &config.S3RootPassword)
	envString("S3_REGION", &config.S3Region)
	envString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
	envString("S3_PUBLIC_BASE_URL", &config.S3PublicBaseURL)
	envInt64("MAX_UPLOAD_SIZE", &config.MaxUploadSize)
	envBool("AUTO_CONFIRM", &config.AutoConfirm)
	envInt("IDENTITY_CACHE_SIZE", &config.IdentityCacheSize)
	envDuration("IDENTITY_CACHE_TTL", &config.IdentityCacheTTL)
	envString("LOG_LEVEL", &config.LogLevel)
}

func loadDotEnv() {
	path := flagx.EnvFileFlag()
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return
		}
		panic(fmt.Errorf("env file %s: %w", path, err))
	}
}

func envString(name string, dst *string) {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok {
		*dst = v
	}
}

func envDuration(name string, dst *time.Duration) {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
		}
		*dst = d
	}
}

func envInt64(name string, dst *int64) {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			panic(fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
		}
		*dst = n
	}
}

func envInt(name string, dst *int) {
	n := int64(*dst)
	envInt64(name, &n)
	*dst = int(n)
}

func envBool(name string, dst *bool) {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
		}
		*dst = b
	}
}
