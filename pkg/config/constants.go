package config

const (
	// EnvPrefix is passed to envconfig; individual fields carry full names.
	EnvPrefix = "ECOSTYLO"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv     = "ECOSTYLO_APP_ENV"
	EnvPort       = "ECOSTYLO_APP_PORT"
	EnvDBDSN      = "ECOSTYLO_DB_DSN"
	EnvDBHost     = "ECOSTYLO_DB_HOST"
	EnvDBUser     = "ECOSTYLO_DB_USER"
	EnvDBName     = "ECOSTYLO_DB_NAME"
	EnvRedisURL   = "ECOSTYLO_REDIS_URL"
	EnvJWTSecret  = "ECOSTYLO_JWT_SECRET"
	EnvJWTIssuer  = "ECOSTYLO_JWT_ISSUER"
	EnvJWTExpMins = "ECOSTYLO_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
