package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"http_server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	LedgerStore   LedgerStoreConfig   `mapstructure:"ledger_store"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig describes the schedule store. Driver is either
// "postgres" or "sqlite"; Source is a DSN or a sqlite file path.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Source          string        `mapstructure:"source"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// LedgerStoreConfig selects the backing store for expense records.
// Backend "script" talks to the spreadsheet web-app endpoint (the
// default), "sheets" reads the spreadsheet directly through the Sheets
// API, "memory" keeps everything in process for development and tests.
type LedgerStoreConfig struct {
	Backend         string        `mapstructure:"backend"`
	ScriptURL       string        `mapstructure:"script_url"`
	SheetURL        string        `mapstructure:"sheet_url"`
	SpreadsheetID   string        `mapstructure:"spreadsheet_id"`
	SheetName       string        `mapstructure:"sheet_name"`
	CredentialsFile string        `mapstructure:"credentials_file"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// LoadConfigFromEnv builds a Config purely from environment variables,
// used for container deployments where no config file is mounted.
func LoadConfigFromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              getEnvAsInt("SERVER_PORT", 8080),
			BaseURL:           getEnv("SERVER_BASE_URL", "http://localhost:8080"),
			AllowedOrigins:    getEnv("SERVER_ALLOWED_ORIGINS", "*"),
			ReadHeaderTimeout: getEnvAsDuration("SERVER_READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			IdleTimeout:       getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			WriteTimeout:      getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DATABASE_DRIVER", "sqlite"),
			Source:          getEnv("DATABASE_SOURCE", "trip.db"),
			MaxOpenConns:    getEnvAsInt("DATABASE_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		LedgerStore: LedgerStoreConfig{
			Backend:         getEnv("LEDGER_BACKEND", "script"),
			ScriptURL:       getEnv("LEDGER_SCRIPT_URL", ""),
			SheetURL:        getEnv("LEDGER_SHEET_URL", ""),
			SpreadsheetID:   getEnv("LEDGER_SPREADSHEET_ID", ""),
			SheetName:       getEnv("LEDGER_SHEET_NAME", "Expenses"),
			CredentialsFile: getEnv("LEDGER_CREDENTIALS_FILE", ""),
			RequestTimeout:  getEnvAsDuration("LEDGER_REQUEST_TIMEOUT", 15*time.Second),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "json"),
			},
		},
	}
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("database config: %v", err))
	}

	if err := c.LedgerStore.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("ledger store config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.AllowedOrigins != "" {
		origins := strings.Split(c.AllowedOrigins, ",")
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin == "*" {
				continue
			}
			if _, err := url.Parse(origin); err != nil {
				return fmt.Errorf("invalid allowed origin %s: %w", origin, err)
			}
		}
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
	if c.Source == "" {
		return errors.New("source is required")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return errors.New("max_idle_conns cannot be greater than max_open_conns")
	}
	return nil
}

func (c *LedgerStoreConfig) Validate() error {
	switch c.Backend {
	case "script":
		if c.ScriptURL == "" {
			return errors.New("script_url is required for the script backend")
		}
		if _, err := url.Parse(c.ScriptURL); err != nil {
			return fmt.Errorf("invalid script_url: %w", err)
		}
	case "sheets":
		if c.SpreadsheetID == "" {
			return errors.New("spreadsheet_id is required for the sheets backend")
		}
		if c.ScriptURL == "" {
			// sheets handles reads only; writes still go through the script endpoint
			return errors.New("script_url is required for the sheets backend")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported ledger backend %q", c.Backend)
	}
	return nil
}
