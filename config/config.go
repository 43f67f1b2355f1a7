package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	pkgErrors "api-scaffold/pkg/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvProduction = "production"

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Security
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
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
	URL         string
	Driver      string // postgres | sqlite; detected from URL when empty
	SQLitePath  string
	MaxConns    int
	AutoMigrate bool
}

type JWTConfig struct {
	SecretKey string
	TTL       time.Duration
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           time.Duration
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
	MaxClients     int
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Database
	cfg.Database.URL = v.GetString("database.url")
	if dbURL := v.GetString("database_url"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	cfg.Database.Driver = v.GetString("database.driver")
	cfg.Database.SQLitePath = v.GetString("database.sqlite_path")
	cfg.Database.MaxConns = v.GetInt("database.max_conns")
	cfg.Database.AutoMigrate = v.GetBool("database.auto_migrate")

	// JWT
	cfg.JWT.SecretKey = expandEnvVar(v, v.GetString("jwt.secret_key"))
	if secret := v.GetString("jwt_secret"); secret != "" {
		cfg.JWT.SecretKey = secret
	}
	cfg.JWT.TTL = v.GetDuration("jwt.ttl")

	// CORS; lists may come from env as comma separated strings
	cfg.CORS.AllowedOrigins = stringList(v, "cors.allowed_origins")
	cfg.CORS.AllowedMethods = stringList(v, "cors.allowed_methods")
	cfg.CORS.AllowedHeaders = stringList(v, "cors.allowed_headers")
	cfg.CORS.AllowCredentials = v.GetBool("cors.allow_credentials")
	cfg.CORS.MaxAge = v.GetDuration("cors.max_age")

	// Rate limit
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")

	return cfg
}

// Validate reports misconfiguration as a Configuration error.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return pkgErrors.NewConfiguration("http_server.port must be between 1 and 65535",
			pkgErrors.WithField("port", c.HTTPServer.Port))
	}
	if c.JWT.SecretKey == "" {
		return pkgErrors.NewConfiguration("jwt.secret_key is required",
			pkgErrors.WithField("environment", c.Environment.Name))
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return pkgErrors.NewConfiguration("rate_limit.requests_per_min must be positive",
			pkgErrors.WithField("requests_per_min", c.RateLimit.RequestsPerMin))
	}
	return nil
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment.Name == EnvProduction
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.sqlite_path", "data/app.db")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("jwt.ttl", "24h")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", "12h")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 100)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("rate_limit.max_clients", 10000)
}

// stringList reads key as a list, accepting either a YAML sequence or a comma separated string.
func stringList(v *viper.Viper, key string) []string {
	var raw []string
	if s, ok := v.Get(key).(string); ok {
		raw = strings.Split(s, ",")
	} else {
		raw = v.GetStringSlice(key)
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
