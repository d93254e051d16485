package config

// EnvPrefix is passed to envconfig; explicit tags below carry the full names.
const EnvPrefix = "paperthread"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, docs).
const (
	EnvAppEnv         = "PAPERTHREAD_APP_ENV"
	EnvPort           = "PAPERTHREAD_APP_PORT"
	EnvPrintfulAPIKey = "PAPERTHREAD_PRINTFUL_API_KEY"
	EnvRedisURL       = "PAPERTHREAD_REDIS_URL"
)
