// Package config loads service configuration from the environment and an
// optional .env file.
package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the service.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds HTTP listener and middleware settings.
type ServerConfig struct {
	// Port is the port the HTTP server listens on.
	Port string `mapstructure:"port" default:"3000"`
	// Env is the runtime environment name (development, production).
	Env string `mapstructure:"env" default:"development"`
	// CORSOrigin is the single origin allowed to make cross-origin requests.
	CORSOrigin string `mapstructure:"cors_origin" default:""`
	// StaticDir is the directory holding the built frontend.
	StaticDir string `mapstructure:"static_dir" default:"dist"`
	// RateLimit is the number of requests a client may make per RateWindow.
	RateLimit  int           `mapstructure:"rate_limit" default:"100"`
	RateWindow time.Duration `mapstructure:"rate_window" default:"15m"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"10s"`
}

// DatabaseConfig holds the PostgreSQL connection settings.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url" default:""`
	MaxOpenConns    int           `mapstructure:"max_open_conns" default:"25"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" default:"5"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" default:"1h"`
	// QueryTimeout bounds every single statement.
	QueryTimeout time.Duration `mapstructure:"query_timeout" default:"5s"`
}

// AuthConfig holds credential settings.
type AuthConfig struct {
	// BcryptCost is the work factor used for every password hash.
	BcryptCost int `mapstructure:"bcrypt_cost" default:"10"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level" default:"info"`
	Format string `mapstructure:"format" default:"json"`
}

// legacyEnv maps the environment names used by existing deployments onto
// config keys.
var legacyEnv = map[string]string{
	"server.port":        "PORT",
	"server.cors_origin": "CORS_ORIGIN",
	"server.env":         "NODE_ENV",
	"database.url":       "DATABASE_URL",
}

// LoadConfig loads configuration from environment variables and the .env
// file in dir, if present. Environment variables such as SERVER_PORT map
// onto nested keys (server.port).
func LoadConfig(dir string) (*Config, error) {
	// Missing .env is normal in production.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	// Every key needs a default so AutomaticEnv can resolve it on Unmarshal.
	for key, val := range defaults(reflect.TypeOf(Config{}), "", nil) {
		v.SetDefault(key, val)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// defaults collects the `default` tag of every leaf field of t, keyed by
// its dotted mapstructure path. Fields without a mapstructure tag are skipped.
func defaults(t reflect.Type, prefix string, out map[string]string) map[string]string {
	if out == nil {
		out = make(map[string]string)
	}
	for _, f := range reflect.VisibleFields(t) {
		name, ok := f.Tag.Lookup("mapstructure")
		if !ok || name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if f.Type.Kind() == reflect.Struct {
			defaults(f.Type, name, out)
			continue
		}
		out[name] = f.Tag.Get("default")
	}
	return out
}

// IsProduction reports whether the service runs in production mode.
func (c ServerConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
