package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Google   GoogleConfig
	Email    EmailConfig
	Alerts   AlertsConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Mode        string `mapstructure:"gin_mode"` // debug, release
	FrontendURL string `mapstructure:"frontend_url"`
}

type DatabaseConfig struct {
	URL        string `mapstructure:"database_url"`
	Host       string `mapstructure:"db_host"`
	Port       string `mapstructure:"db_port"`
	User       string `mapstructure:"db_user"`
	Password   string `mapstructure:"db_password"`
	Name       string `mapstructure:"db_name"`
	SSLMode    string `mapstructure:"db_sslmode"`
	LogQueries bool   `mapstructure:"db_log_queries"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"jwt_secret"`
	AccessTTL  time.Duration `mapstructure:"jwt_access_ttl"`
	RefreshTTL time.Duration `mapstructure:"jwt_refresh_ttl"`
}

type GoogleConfig struct {
	ClientID     string `mapstructure:"google_client_id"`
	ClientSecret string `mapstructure:"google_client_secret"`
	RedirectURL  string `mapstructure:"google_redirect_url"`
}

type EmailConfig struct {
	ResendAPIKey string `mapstructure:"resend_api_key"`
	FromAddress  string `mapstructure:"email_from_address"`
}

type AlertsConfig struct {
	// Cron spec for the low-stock digest, e.g. "0 8 * * *"
	LowStockCron string `mapstructure:"low_stock_cron"`
}

type LogConfig struct {
	Level  string `mapstructure:"log_level"`
	Format string `mapstructure:"log_format"` // json, console
}

// Load reads configuration from .env and the environment. Environment
// variables override file values.
func Load() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("No .env file found, using system environment variables: %v", err)
	}
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("frontend_url", "http://localhost:3000")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_name", "bizkhata")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("jwt_secret", "change-me-in-production")
	v.SetDefault("jwt_access_ttl", "15m")
	v.SetDefault("jwt_refresh_ttl", "168h")
	v.SetDefault("low_stock_cron", "0 8 * * *")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("port"),
			Mode:        v.GetString("gin_mode"),
			FrontendURL: v.GetString("frontend_url"),
		},
		Database: DatabaseConfig{
			URL:        v.GetString("database_url"),
			Host:       v.GetString("db_host"),
			Port:       v.GetString("db_port"),
			User:       v.GetString("db_user"),
			Password:   v.GetString("db_password"),
			Name:       v.GetString("db_name"),
			SSLMode:    v.GetString("db_sslmode"),
			LogQueries: v.GetBool("db_log_queries"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt_secret"),
			AccessTTL:  v.GetDuration("jwt_access_ttl"),
			RefreshTTL: v.GetDuration("jwt_refresh_ttl"),
		},
		Google: GoogleConfig{
			ClientID:     v.GetString("google_client_id"),
			ClientSecret: v.GetString("google_client_secret"),
			RedirectURL:  v.GetString("google_redirect_url"),
		},
		Email: EmailConfig{
			ResendAPIKey: v.GetString("resend_api_key"),
			FromAddress:  v.GetString("email_from_address"),
		},
		Alerts: AlertsConfig{
			LowStockCron: v.GetString("low_stock_cron"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
	}

	return cfg
}
