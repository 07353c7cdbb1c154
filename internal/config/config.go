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
	Email   EmailConfig
	Redis   RedisConfig
	Log     LogConfig
	CORS    CORSConfig
	Totals  TotalsConfig
	Invoice InvoiceConfig
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

// S3Config holds AWS S3 settings for business assets.
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
	FrontendURL string `mapstructure:"frontend_url"`
}

// RedisConfig holds the cache connection. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
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

// TotalsConfig holds the invoice arithmetic switches.
type TotalsConfig struct {
	// OverallDiscountStage is "post_tax" or "pre_tax".
	OverallDiscountStage  string `mapstructure:"overall_discount_stage"`
	ClampAbsoluteDiscount bool   `mapstructure:"clamp_absolute_discount"`
	// RoundingPlaces is the number of decimal digits persisted and displayed.
	RoundingPlaces int32 `mapstructure:"rounding_places"`
}

// InvoiceConfig holds invoice numbering and default behavior.
type InvoiceConfig struct {
	NumberPrefix        string `mapstructure:"number_prefix"`
	DefaultDiscountMode string `mapstructure:"default_discount_mode"`
}

// Load reads configuration from environment variables with the GSTBILL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTBILL")
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
	v.SetDefault("db.user", "gstbill")
	v.SetDefault("db.password", "gstbill_secret")
	v.SetDefault("db.name", "gstbill_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "gstbill-assets")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 5)
	v.SetDefault("s3.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@gstbill.local")
	v.SetDefault("email.from_name", "GST Bill")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Redis defaults (disabled)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "10m")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Totals defaults
	v.SetDefault("totals.overall_discount_stage", "post_tax")
	v.SetDefault("totals.clamp_absolute_discount", true)
	v.SetDefault("totals.rounding_places", 2)

	// Invoice defaults
	v.SetDefault("invoice.number_prefix", "INV")
	v.SetDefault("invoice.default_discount_mode", "ABSOLUTE")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "GSTBILL_SERVER_PORT",
		"server.read_timeout":            "GSTBILL_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "GSTBILL_SERVER_WRITE_TIMEOUT",
		"server.environment":             "GSTBILL_SERVER_ENVIRONMENT",
		"db.host":                        "GSTBILL_DB_HOST",
		"db.port":                        "GSTBILL_DB_PORT",
		"db.user":                        "GSTBILL_DB_USER",
		"db.password":                    "GSTBILL_DB_PASSWORD",
		"db.name":                        "GSTBILL_DB_NAME",
		"db.sslmode":                     "GSTBILL_DB_SSLMODE",
		"db.max_open":                    "GSTBILL_DB_MAX_OPEN",
		"db.max_idle":                    "GSTBILL_DB_MAX_IDLE",
		"s3.region":                      "GSTBILL_S3_REGION",
		"s3.bucket":                      "GSTBILL_S3_BUCKET",
		"s3.endpoint":                    "GSTBILL_S3_ENDPOINT",
		"s3.access_key":                  "GSTBILL_S3_ACCESS_KEY",
		"s3.secret_key":                  "GSTBILL_S3_SECRET_KEY",
		"s3.max_file_size_mb":            "GSTBILL_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":              "GSTBILL_S3_PRESIGN_EXPIRY",
		"email.provider":                 "GSTBILL_EMAIL_PROVIDER",
		"email.region":                   "GSTBILL_EMAIL_REGION",
		"email.from_address":             "GSTBILL_EMAIL_FROM_ADDRESS",
		"email.from_name":                "GSTBILL_EMAIL_FROM_NAME",
		"email.frontend_url":             "GSTBILL_EMAIL_FRONTEND_URL",
		"redis.addr":                     "GSTBILL_REDIS_ADDR",
		"redis.password":                 "GSTBILL_REDIS_PASSWORD",
		"redis.db":                       "GSTBILL_REDIS_DB",
		"redis.ttl":                      "GSTBILL_REDIS_TTL",
		"log.level":                      "GSTBILL_LOG_LEVEL",
		"log.format":                     "GSTBILL_LOG_FORMAT",
		"cors.allowed_origins":           "GSTBILL_CORS_ALLOWED_ORIGINS",
		"totals.overall_discount_stage":  "GSTBILL_TOTALS_OVERALL_DISCOUNT_STAGE",
		"totals.clamp_absolute_discount": "GSTBILL_TOTALS_CLAMP_ABSOLUTE_DISCOUNT",
		"totals.rounding_places":         "GSTBILL_TOTALS_ROUNDING_PLACES",
		"invoice.number_prefix":          "GSTBILL_INVOICE_NUMBER_PREFIX",
		"invoice.default_discount_mode":  "GSTBILL_INVOICE_DEFAULT_DISCOUNT_MODE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if GSTBILL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTBILL_SERVER_PORT") == "" {
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
		FrontendURL: v.GetString("email.frontend_url"),
	}
	cfg.Redis = RedisConfig{
		Addr:     v.GetString("redis.addr"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
		TTL:      v.GetDuration("redis.ttl"),
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

	cfg.Totals = TotalsConfig{
		OverallDiscountStage:  strings.ToLower(v.GetString("totals.overall_discount_stage")),
		ClampAbsoluteDiscount: v.GetBool("totals.clamp_absolute_discount"),
		RoundingPlaces:        v.GetInt32("totals.rounding_places"),
	}
	switch cfg.Totals.OverallDiscountStage {
	case "post_tax", "pre_tax":
	default:
		return nil, fmt.Errorf("config: invalid totals.overall_discount_stage %q (want post_tax or pre_tax)", cfg.Totals.OverallDiscountStage)
	}
	if cfg.Totals.RoundingPlaces < 0 {
		return nil, fmt.Errorf("config: totals.rounding_places must not be negative")
	}

	cfg.Invoice = InvoiceConfig{
		NumberPrefix:        v.GetString("invoice.number_prefix"),
		DefaultDiscountMode: strings.ToUpper(v.GetString("invoice.default_discount_mode")),
	}
	switch cfg.Invoice.DefaultDiscountMode {
	case "PERCENT", "ABSOLUTE":
	default:
		return nil, fmt.Errorf("config: invalid invoice.default_discount_mode %q (want PERCENT or ABSOLUTE)", cfg.Invoice.DefaultDiscountMode)
	}

	return cfg, nil
}
