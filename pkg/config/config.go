package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	OAuth        OAuthConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPMART_APP_ENV" default:"development"`
	Port         string `envconfig:"SHOPMART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOPMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPMART_LOG_WARN_STACK" default:"false"`

	// CORSOrigins lists deployed storefront origins; local dev origins are
	// always allowed.
	CORSOrigins []string `envconfig:"SHOPMART_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SHOPMART_DB_DSN"`
	Driver string `envconfig:"SHOPMART_DB_DRIVER" default:"postgres"`

	// SQLite runs the store off a single file. Only one instance may own the
	// file; the wishlist uniqueness guarantee does not survive horizontal
	// scaling in this mode.
	SQLitePath string `envconfig:"SHOPMART_SQLITE_PATH" default:"data/shopmart.sqlite"`

	LegacyHost     string `envconfig:"SHOPMART_DB_HOST"`
	LegacyPort     int    `envconfig:"SHOPMART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SHOPMART_DB_USER"`
	LegacyPassword string `envconfig:"SHOPMART_DB_PASSWORD"`
	LegacyName     string `envconfig:"SHOPMART_DB_NAME"`
	LegacySSLMode  string `envconfig:"SHOPMART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHOPMART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHOPMART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHOPMART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHOPMART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"SHOPMART_REDIS_URL"`
	Address      string        `envconfig:"SHOPMART_REDIS_ADDR"`
	Password     string        `envconfig:"SHOPMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SHOPMART_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SHOPMART_JWT_ISSUER" default:"shopmart"`
	ExpirationMinutes int    `envconfig:"SHOPMART_JWT_EXPIRATION_MINUTES" default:"43200"`
}

// SessionTTL returns how long an issued session stays valid.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type OAuthConfig struct {
	GitHubClientID     string `envconfig:"SHOPMART_GITHUB_CLIENT_ID"`
	GitHubClientSecret string `envconfig:"SHOPMART_GITHUB_CLIENT_SECRET"`
	GitHubRedirectURL  string `envconfig:"SHOPMART_GITHUB_REDIRECT_URL"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SHOPMART_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.IsSQLite() {
		if db.DSN == "" {
			db.DSN = db.SQLitePath
		}
		return nil
	}
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
