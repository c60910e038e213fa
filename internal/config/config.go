package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	S3      S3Config
	Catalog CatalogConfig
	CORS    CORSConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings for the catalog source bucket.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// CatalogConfig holds catalog source settings. When LocalPath points at an
// existing file it takes priority over the S3 object.
type CatalogConfig struct {
	SourceKey string `mapstructure:"source_key"`
	LocalPath string `mapstructure:"local_path"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the SUGANG_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SUGANG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "sugang")
	v.SetDefault("db.password", "sugang_secret")
	v.SetDefault("db.name", "sugang_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "sugang-catalog")
	v.SetDefault("s3.endpoint", "")

	// Catalog source defaults
	v.SetDefault("catalog.source_key", "catalog_extracted.json")
	v.SetDefault("catalog.local_path", "catalog_extracted.json")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "SUGANG_SERVER_PORT",
		"server.read_timeout":  "SUGANG_SERVER_READ_TIMEOUT",
		"server.write_timeout": "SUGANG_SERVER_WRITE_TIMEOUT",
		"server.environment":   "SUGANG_SERVER_ENVIRONMENT",
		"db.host":              "SUGANG_DB_HOST",
		"db.port":              "SUGANG_DB_PORT",
		"db.user":              "SUGANG_DB_USER",
		"db.password":          "SUGANG_DB_PASSWORD",
		"db.name":              "SUGANG_DB_NAME",
		"db.sslmode":           "SUGANG_DB_SSLMODE",
		"db.max_open":          "SUGANG_DB_MAX_OPEN",
		"db.max_idle":          "SUGANG_DB_MAX_IDLE",
		"s3.region":            "SUGANG_S3_REGION",
		"s3.bucket":            "SUGANG_S3_BUCKET",
		"s3.endpoint":          "SUGANG_S3_ENDPOINT",
		"s3.access_key":        "SUGANG_S3_ACCESS_KEY",
		"s3.secret_key":        "SUGANG_S3_SECRET_KEY",
		"catalog.source_key":   "SUGANG_CATALOG_SOURCE_KEY",
		"catalog.local_path":   "SUGANG_CATALOG_LOCAL_PATH",
		"cors.allowed_origins": "SUGANG_CORS_ALLOWED_ORIGINS",
		"log.level":            "SUGANG_LOG_LEVEL",
		"log.format":           "SUGANG_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SUGANG_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SUGANG_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Catalog = CatalogConfig{
		SourceKey: v.GetString("catalog.source_key"),
		LocalPath: v.GetString("catalog.local_path"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
