package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jekabolt/seminar-booking/internal/api/http"
	"github.com/jekabolt/seminar-booking/internal/apisrv/auth"
	"github.com/jekabolt/seminar-booking/internal/entity"
	"github.com/jekabolt/seminar-booking/internal/i18n"
	"github.com/jekabolt/seminar-booking/internal/mail"
	"github.com/jekabolt/seminar-booking/internal/ratelimit"
	"github.com/jekabolt/seminar-booking/internal/report"
	"github.com/jekabolt/seminar-booking/internal/store"
	"github.com/jekabolt/seminar-booking/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config     `mapstructure:"db"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Auth      auth.Config      `mapstructure:"auth"`
	Mailer    mail.Config      `mapstructure:"mailer"`
	Event     entity.Event     `mapstructure:"event"`
	RateLimit ratelimit.Config `mapstructure:"rate_limit"`
	I18n      i18n.Config      `mapstructure:"i18n"`
	Report    report.Config    `mapstructure:"report"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// A .env file in the working directory is loaded first when present.
// Environment variables take precedence over config file values, nested keys
// use double underscores, e.g. DB__DSN for db.dsn.
func LoadConfig(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %v", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/seminar-booking")
		v.AddConfigPath("/etc/seminar-booking")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Build the DSN from MYSQL_* parts when none is given
	if config.DB.DSN == "" && config.DB.Driver != store.DriverPostgres {
		host := os.Getenv("MYSQL_HOST")
		port := os.Getenv("MYSQL_PORT")
		user := os.Getenv("MYSQL_USER")
		password := os.Getenv("MYSQL_PASSWORD")
		database := os.Getenv("MYSQL_DATABASE")
		if port == "" {
			port = "3306"
		}
		if host != "" && user != "" && password != "" && database != "" {
			config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
				user, password, host, port, database)
		}
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.driver", store.DriverMySQL)
	v.SetDefault("db.automigrate", true)
	v.SetDefault("db.max_open_connections", 10)
	v.SetDefault("db.max_idle_connections", 5)

	v.SetDefault("http.address", "0.0.0.0")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.request_timeout", "30s")

	v.SetDefault("auth.password_hasher_salt_size", 16)
	v.SetDefault("auth.password_hasher_iterations", 100000)
	v.SetDefault("auth.jwt_ttl", "12h")
	v.SetDefault("auth.cookie_name", "session")

	v.SetDefault("mailer.worker_interval", "1m")
	v.SetDefault("mailer.queue_size", 100)

	v.SetDefault("rate_limit.bookings_per_hour", 30)
	v.SetDefault("rate_limit.logins_per_minute", 5)

	v.SetDefault("i18n.default_locale", "en")

	v.SetDefault("report.date_layout", "02/01/2006")
	v.SetDefault("report.timezone", "Asia/Kuala_Lumpur")
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (DB__DSN) and flat keys (DB_DSN)
func bindEnvVars(v *viper.Viper) {
	// DB
	v.BindEnv("db.driver", "DB_DRIVER")
	v.BindEnv("db.dsn", "DB_DSN", "MYSQL_DSN", "DATABASE_URL")
	v.BindEnv("db.automigrate", "DB_AUTOMIGRATE")
	v.BindEnv("db.max_open_connections", "DB_MAX_OPEN_CONNECTIONS")
	v.BindEnv("db.max_idle_connections", "DB_MAX_IDLE_CONNECTIONS")
	v.BindEnv("db.tls_ca_path", "DB_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT", "PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.trust_proxy", "HTTP_TRUST_PROXY")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.password_hasher_salt_size", "AUTH_PASSWORD_HASHER_SALT_SIZE")
	v.BindEnv("auth.password_hasher_iterations", "AUTH_PASSWORD_HASHER_ITERATIONS")
	v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")
	v.BindEnv("auth.cookie_secure", "AUTH_COOKIE_SECURE")

	// Mailer
	v.BindEnv("mailer.sendgrid_api_key", "MAILER_SENDGRID_API_KEY")
	v.BindEnv("mailer.from_email", "MAILER_FROM_EMAIL")
	v.BindEnv("mailer.from_email_name", "MAILER_FROM_EMAIL_NAME")
	v.BindEnv("mailer.reply_to", "MAILER_REPLY_TO")
	v.BindEnv("mailer.worker_interval", "MAILER_WORKER_INTERVAL")

	// Event
	v.BindEnv("event.name", "EVENT_NAME")
	v.BindEnv("event.dates", "EVENT_DATES")
	v.BindEnv("event.time", "EVENT_TIME")
	v.BindEnv("event.venue", "EVENT_VENUE")
	v.BindEnv("event.banner_url", "EVENT_BANNER_URL")

	// Rate limit
	v.BindEnv("rate_limit.bookings_per_hour", "RATE_LIMIT_BOOKINGS_PER_HOUR")
	v.BindEnv("rate_limit.logins_per_minute", "RATE_LIMIT_LOGINS_PER_MINUTE")

	v.BindEnv("i18n.default_locale", "I18N_DEFAULT_LOCALE")
	v.BindEnv("report.timezone", "REPORT_TIMEZONE")
}
