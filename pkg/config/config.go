package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	CORS     CORSConfig
	Printful PrintfulConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Cart     CartConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PAPERTHREAD_APP_ENV" required:"true"`
	Port         string `envconfig:"PAPERTHREAD_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PAPERTHREAD_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PAPERTHREAD_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServerConfig struct {
	ReadTimeout  time.Duration `envconfig:"PAPERTHREAD_SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"PAPERTHREAD_SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"PAPERTHREAD_SERVER_IDLE_TIMEOUT" default:"120s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"PAPERTHREAD_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// PrintfulConfig carries the fulfillment provider credentials. The API key
// never leaves this process; the browser only ever talks to this proxy.
type PrintfulConfig struct {
	APIKey  string        `envconfig:"PAPERTHREAD_PRINTFUL_API_KEY" required:"true"`
	BaseURL string        `envconfig:"PAPERTHREAD_PRINTFUL_BASE_URL" default:"https://api.printful.com"`
	Timeout time.Duration `envconfig:"PAPERTHREAD_PRINTFUL_TIMEOUT" default:"15s"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PAPERTHREAD_REDIS_URL" required:"true"`
	Password     string        `envconfig:"PAPERTHREAD_REDIS_PASSWORD"`
	DB           int           `envconfig:"PAPERTHREAD_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PAPERTHREAD_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PAPERTHREAD_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PAPERTHREAD_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PAPERTHREAD_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PAPERTHREAD_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CatalogConfig struct {
	CacheTTL     time.Duration `envconfig:"PAPERTHREAD_CATALOG_CACHE_TTL" default:"5m"`
	WarmInterval time.Duration `envconfig:"PAPERTHREAD_CATALOG_WARM_INTERVAL" default:"15m"`
}

type CartConfig struct {
	SessionTTL time.Duration `envconfig:"PAPERTHREAD_CART_SESSION_TTL" default:"24h"`
}
