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
	JWT     JWTConfig
	Log     LogConfig
	CORS    CORSConfig
	S3      S3Config
	Email   EmailConfig
	Billing BillingConfig
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

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// S3Config holds object storage settings for customer ID-proof photos.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// BillingConfig holds invoice numbering policy settings.
type BillingConfig struct {
	// AllowCounterRegression permits re-baselining an invoice series below
	// its current number, which can re-issue numbers already printed on
	// invoices. Intended only for migrating from a prior paper numbering
	// scheme.
	AllowCounterRegression bool `mapstructure:"allow_counter_regression"`
}

// Load reads configuration from environment variables with the LODGE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LODGE")
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
	v.SetDefault("db.user", "lodgeos")
	v.SetDefault("db.password", "lodgeos_secret")
	v.SetDefault("db.name", "lodgeos_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "lodgeos")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for the two front-ends in development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "lodgeos-photos")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@lodgeos.local")
	v.SetDefault("email.from_name", "LodgeOS")

	// Billing defaults
	v.SetDefault("billing.allow_counter_regression", false)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                      "LODGE_SERVER_PORT",
		"server.read_timeout":              "LODGE_SERVER_READ_TIMEOUT",
		"server.write_timeout":             "LODGE_SERVER_WRITE_TIMEOUT",
		"server.environment":               "LODGE_SERVER_ENVIRONMENT",
		"db.host":                          "LODGE_DB_HOST",
		"db.port":                          "LODGE_DB_PORT",
		"db.user":                          "LODGE_DB_USER",
		"db.password":                      "LODGE_DB_PASSWORD",
		"db.name":                          "LODGE_DB_NAME",
		"db.sslmode":                       "LODGE_DB_SSLMODE",
		"db.max_open":                      "LODGE_DB_MAX_OPEN",
		"db.max_idle":                      "LODGE_DB_MAX_IDLE",
		"jwt.secret":                       "LODGE_JWT_SECRET",
		"jwt.access_expiry":                "LODGE_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":               "LODGE_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                       "LODGE_JWT_ISSUER",
		"log.level":                        "LODGE_LOG_LEVEL",
		"log.format":                       "LODGE_LOG_FORMAT",
		"cors.allowed_origins":             "LODGE_CORS_ALLOWED_ORIGINS",
		"s3.region":                        "LODGE_S3_REGION",
		"s3.bucket":                        "LODGE_S3_BUCKET",
		"s3.endpoint":                      "LODGE_S3_ENDPOINT",
		"s3.access_key":                    "LODGE_S3_ACCESS_KEY",
		"s3.secret_key":                    "LODGE_S3_SECRET_KEY",
		"s3.max_file_size_mb":              "LODGE_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":                "LODGE_S3_PRESIGN_EXPIRY",
		"email.provider":                   "LODGE_EMAIL_PROVIDER",
		"email.region":                     "LODGE_EMAIL_REGION",
		"email.from_address":               "LODGE_EMAIL_FROM_ADDRESS",
		"email.from_name":                  "LODGE_EMAIL_FROM_NAME",
		"billing.allow_counter_regression": "LODGE_BILLING_ALLOW_COUNTER_REGRESSION",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// The desktop shell (and Railway/Heroku/Render) pass a bare PORT env var.
	// Use it when LODGE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LODGE_SERVER_PORT") == "" {
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
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Billing = BillingConfig{
		AllowCounterRegression: v.GetBool("billing.allow_counter_regression"),
	}

	return cfg, nil
}
