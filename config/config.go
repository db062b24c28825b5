package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Database drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Access control
	JWT       JWTConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig

	// Observability
	Otel OtelConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Driver   string
	Mongo    MongoConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
}

type MongoConfig struct {
	URI      string
	Database string
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SQLiteConfig struct {
	Path string
}

type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// AuthConfig holds the seeded accounts and the role to permission mapping.
type AuthConfig struct {
	Users []UserConfig
	Roles map[string][]string
}

// UserConfig is one account allowed to sign in. Either Password or
// PasswordHash (bcrypt) must be set.
type UserConfig struct {
	ID           string
	Username     string
	Password     string
	PasswordHash string
	Role         string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type OtelConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Driver = strings.ToLower(viper.GetString("database.driver"))
	cfg.Database.Mongo.URI = viper.GetString("database.mongo.uri")
	cfg.Database.Mongo.Database = viper.GetString("database.mongo.database")
	cfg.Database.Postgres.DSN = viper.GetString("database.postgres.dsn")
	cfg.Database.Postgres.MaxOpenConns = viper.GetInt("database.postgres.max_open_conns")
	cfg.Database.Postgres.MaxIdleConns = viper.GetInt("database.postgres.max_idle_conns")
	cfg.Database.Postgres.ConnMaxLifetime = viper.GetDuration("database.postgres.conn_max_lifetime")
	cfg.Database.SQLite.Path = viper.GetString("database.sqlite.path")

	// Access control
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")
	cfg.Auth.Roles = viper.GetStringMapStringSlice("auth.roles")
	cfg.Auth.Users = loadUsers(viper.Get("auth.users"))
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Observability
	cfg.Otel.Enabled = viper.GetBool("otel.enabled")
	cfg.Otel.Endpoint = viper.GetString("otel.endpoint")
	cfg.Otel.ServiceName = viper.GetString("otel.service_name")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", EnvironmentDevelopment)
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.driver", DriverSQLite)
	viper.SetDefault("database.mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.mongo.database", "inventory")
	viper.SetDefault("database.postgres.dsn", "")
	viper.SetDefault("database.postgres.max_open_conns", 25)
	viper.SetDefault("database.postgres.max_idle_conns", 5)
	viper.SetDefault("database.postgres.conn_max_lifetime", "30m")
	viper.SetDefault("database.sqlite.path", "inventory.db")

	viper.SetDefault("jwt.secret", "")
	viper.SetDefault("jwt.issuer", "inventory-management")
	viper.SetDefault("jwt.ttl", "24h")
	viper.SetDefault("auth.roles", map[string][]string{
		"admin": {"item:create", "item:read", "item:update", "item:archive", "item:restore", "item:delete"},
		"user":  {},
	})
	viper.SetDefault("rate_limit.requests_per_min", 600)

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.service_name", "inventory-management")
}

func (cfg *Config) validate() error {
	switch cfg.Database.Driver {
	case DriverMongo:
		if cfg.Database.Mongo.URI == "" || cfg.Database.Mongo.Database == "" {
			return fmt.Errorf("database.mongo.uri and database.mongo.database are required")
		}
	case DriverPostgres:
		if cfg.Database.Postgres.DSN == "" {
			return fmt.Errorf("database.postgres.dsn is required")
		}
	case DriverSQLite:
		if cfg.Database.SQLite.Path == "" {
			return fmt.Errorf("database.sqlite.path is required")
		}
	default:
		return fmt.Errorf("unsupported database.driver %q", cfg.Database.Driver)
	}

	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if cfg.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be positive")
	}
	return nil
}

// loadUsers reads auth.users, a list of maps, the way viper hands it back
// from YAML.
func loadUsers(raw any) []UserConfig {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	users := make([]UserConfig, 0, len(list))
	for _, u := range list {
		userMap, ok := u.(map[string]interface{})
		if !ok {
			continue
		}
		users = append(users, UserConfig{
			ID:           getStringFromMap(userMap, "id"),
			Username:     getStringFromMap(userMap, "username"),
			Password:     getStringFromMap(userMap, "password"),
			PasswordHash: getStringFromMap(userMap, "password_hash"),
			Role:         getStringFromMap(userMap, "role"),
		})
	}
	return users
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
