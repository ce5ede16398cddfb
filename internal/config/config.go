package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	envPrefix = "HESTIA"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

type Config struct {
	Env        string           `yaml:"env"`        // Env is the current environment: local, development, production.
	HTTP       HTTPConfig       `yaml:"http"`       // HTTP holds the API server configuration.
	Monitoring MonitoringConfig `yaml:"monitoring"` // Monitoring holds the metrics/health server configuration.
	Storage    StorageConfig    `yaml:"storage"`    // Storage selects and configures the employee store.
}

// HTTPConfig struct holds the API listener settings.
type HTTPConfig struct {
	Address         string        `yaml:"address"`          // Address is the listen address, e.g. `:8000`.
	ReadTimeout     time.Duration `yaml:"read_timeout"`     // ReadTimeout bounds reading a whole request.
	WriteTimeout    time.Duration `yaml:"write_timeout"`    // WriteTimeout bounds writing a response.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // ShutdownTimeout bounds graceful shutdown.
}

type MonitoringConfig struct {
	Port int `yaml:"port"` // Port serves /metrics and /healthz.
}

// StorageConfig struct picks the storage backend.
type StorageConfig struct {
	Driver   string         `yaml:"driver"` // Driver is `sqlite` or `postgres`.
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"` // Path is the database file.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Dbname   string `yaml:"db_name"`  // Dbname is the name of the database.
}

// MustLoad loads the configuration from the file named by CONFIG_PATH (optional)
// and the HESTIA_* environment, and panics on failure.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

// Load reads the configuration. An empty path means defaults and environment only.
func Load(configPath string) (*Config, error) {
	vpr := viper.New()
	setDefaults(vpr)

	vpr.SetEnvPrefix(envPrefix)
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	if configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}

		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Env: vpr.GetString("env"),
		HTTP: HTTPConfig{
			Address:         vpr.GetString("http.address"),
			ReadTimeout:     vpr.GetDuration("http.read_timeout"),
			WriteTimeout:    vpr.GetDuration("http.write_timeout"),
			ShutdownTimeout: vpr.GetDuration("http.shutdown_timeout"),
		},
		Monitoring: MonitoringConfig{
			Port: vpr.GetInt("monitoring.port"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(vpr.GetString("storage.driver")),
			SQLite: SQLiteConfig{
				Path: vpr.GetString("storage.sqlite.path"),
			},
			Postgres: PostgresConfig{
				Host:     vpr.GetString("storage.postgres.host"),
				Port:     vpr.GetString("storage.postgres.port"),
				User:     vpr.GetString("storage.postgres.user"),
				Password: vpr.GetString("storage.postgres.password"),
				Dbname:   vpr.GetString("storage.postgres.db_name"),
			},
		},
	}

	switch cfg.Storage.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
	}

	return cfg, nil
}

func setDefaults(vpr *viper.Viper) {
	vpr.SetDefault("env", "local")
	vpr.SetDefault("http.address", ":8000")
	vpr.SetDefault("http.read_timeout", 10*time.Second)
	vpr.SetDefault("http.write_timeout", 10*time.Second)
	vpr.SetDefault("http.shutdown_timeout", 5*time.Second)
	vpr.SetDefault("monitoring.port", 8080)
	vpr.SetDefault("storage.driver", DriverSQLite)
	vpr.SetDefault("storage.sqlite.path", "employees.db")
	vpr.SetDefault("storage.postgres.host", "localhost")
	vpr.SetDefault("storage.postgres.port", "5432")
	vpr.SetDefault("storage.postgres.user", "")
	vpr.SetDefault("storage.postgres.password", "")
	vpr.SetDefault("storage.postgres.db_name", "")
}
