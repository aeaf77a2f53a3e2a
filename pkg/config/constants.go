package config

const (
	EnvPrefix = "SHOPMART"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvDBDSN  = "SHOPMART_DB_DSN"
	EnvDBHost = "SHOPMART_DB_HOST"
	EnvDBUser = "SHOPMART_DB_USER"
	EnvDBName = "SHOPMART_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
