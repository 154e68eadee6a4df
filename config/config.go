package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"

	"github.com/spf13/viper"
)

const (
	defaultLogValue = true
	defaultMaxConn  = 10
	defaultLogFile  = "bookypedia.log"
	defaultMigrate  = true
)

var ErrInvalidConfig = errors.New("invalid config")

type (
	Config struct {
		PG struct {
			URL      string `env:"BOOKYPEDIA_DB_URL"`
			Host     string `env:"POSTGRES_HOST"`
			Port     string `env:"POSTGRES_PORT"`
			DB       string `env:"POSTGRES_DB"`
			User     string `env:"POSTGRES_USER"`
			Password string `env:"POSTGRES_PASSWORD"`
			MaxConn  int    `env:"POSTGRES_MAX_CONN"`
		}

		Log struct {
			File          string `env:"LOG_FILE"`
			LogController bool   `env:"LOG_CONTROLLER_ENABLED"`
			LogTransactor bool   `env:"LOG_TRANSACTOR_ENABLED"`
			LogUseCase    bool   `env:"LOG_USECASE_ENABLED"`
			LogDBRepo     bool   `env:"LOG_DB_REPO_ENABLED"`
		}

		Observability struct {
			MetricsPort string `env:"METRICS_PORT"`
		}

		MigrateOnStart bool `env:"MIGRATE_ON_START"`
	}
)

func NewConfig() (*Config, error) {
	cfg := &Config{}

	cfg.PG.Host = os.Getenv("POSTGRES_HOST")
	cfg.PG.Port = os.Getenv("POSTGRES_PORT")
	cfg.PG.DB = os.Getenv("POSTGRES_DB")
	cfg.PG.User = os.Getenv("POSTGRES_USER")
	cfg.PG.Password = os.Getenv("POSTGRES_PASSWORD")

	var err error
	v := viper.New()
	if cfg.PG.URL, err = parseEnvString(v, "db_url", "BOOKYPEDIA_DB_URL"); err != nil {
		return nil, err
	}

	if cfg.PG.URL == "" {
		cfg.PG.URL = composeURL(cfg.PG.User, cfg.PG.Password, cfg.PG.Host, cfg.PG.Port, cfg.PG.DB)
	}

	if cfg.PG.MaxConn, err = parseEnvInt(v, "db_max_conn", "POSTGRES_MAX_CONN", defaultMaxConn); err != nil {
		return nil, err
	}

	if cfg.PG.MaxConn <= 0 {
		return nil, fmt.Errorf("%w: POSTGRES_MAX_CONN must be positive, got %d", ErrInvalidConfig, cfg.PG.MaxConn)
	}

	if cfg.Log.File, err = parseEnvString(v, "log_file", "LOG_FILE", defaultLogFile); err != nil {
		return nil, err
	}

	if cfg.Log.LogController, err = parseEnvBool(v, "log_controller", "LOG_CONTROLLER_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogTransactor, err = parseEnvBool(v, "log_transactor", "LOG_TRANSACTOR_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogUseCase, err = parseEnvBool(v, "log_usecase", "LOG_USECASE_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogDBRepo, err = parseEnvBool(v, "log_db", "LOG_DB_REPO_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.MigrateOnStart, err = parseEnvBool(v, "migrate", "MIGRATE_ON_START", defaultMigrate); err != nil {
		return nil, err
	}

	cfg.Observability.MetricsPort = os.Getenv("METRICS_PORT")

	return cfg, nil
}

func composeURL(user, password, host, port, db string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + db,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvInt(v *viper.Viper, key, envVar string, defaultValue ...int) (int, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return 0, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetInt(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
