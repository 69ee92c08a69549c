package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string
	Environment   string
	Database      DatabaseConfig
	Auth          AuthConfig
	SMTP          SMTPConfig
	UploadsDir    string
	PublicBaseURL string
	RunSeed       bool
}

type DatabaseConfig struct {
	// URL, when set, wins over the individual fields.
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	UserSecret  string
	AdminSecret string
	TokenTTL    time.Duration
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "shoppingkart")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("TOKEN_TTL", "1h")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("UPLOADS_DIR", "uploads")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	ttl, err := time.ParseDuration(getEnvOrViper("TOKEN_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			URL:      getEnvOrViper("DATABASE_URL", ""),
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "shoppingkart"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			UserSecret:  getEnvOrViper("JWT_SECRET", ""),
			AdminSecret: getEnvOrViper("JWT_ADMIN_SECRET", ""),
			TokenTTL:    ttl,
		},
		SMTP: SMTPConfig{
			Host:       getEnvOrViper("SMTP_HOST", ""),
			Port:       viper.GetInt("SMTP_PORT"),
			Username:   getEnvOrViper("EMAIL_USER", ""),
			Password:   getEnvOrViper("EMAIL_PASS", ""),
			From:       getEnvOrViper("EMAIL_FROM", getEnvOrViper("EMAIL_USER", "")),
			AdminEmail: getEnvOrViper("ADMIN_EMAIL", ""),
		},
		UploadsDir:    getEnvOrViper("UPLOADS_DIR", "uploads"),
		PublicBaseURL: getEnvOrViper("PUBLIC_BASE_URL", ""),
		RunSeed:       viper.GetBool("RUN_SEED"),
	}

	if cfg.Auth.UserSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Auth.AdminSecret == "" {
		return nil, fmt.Errorf("JWT_ADMIN_SECRET is required")
	}

	return cfg, nil
}

// DSN returns the postgres connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.DBName, d.Port, d.SSLMode,
	)
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		if val := viper.GetString(key); val != "" {
			return val
		}
	}
	return defaultValue
}
