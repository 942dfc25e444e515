package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Webhook  WebhookConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string

	// DemoRegistration enables /registration, which signs a fixed user in
	// without checking any credential.
	DemoRegistration  bool
	ExplorerStaffOnly bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type SessionConfig struct {
	CookieName string
	TTLHours   int
	Secure     bool
}

type WebhookConfig struct {
	Secret       string
	RepoPath     string
	Remote       string
	MaxBodyBytes int64
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads an env-style file when it exists and lets process
// environment variables override it.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "room-booking")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DEMO_REGISTRATION", false)
	v.SetDefault("EXPLORER_STAFF_ONLY", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("SESSION_COOKIE", "session_token")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("REPO_PATH", "./mysite")
	v.SetDefault("REPO_REMOTE", "origin")
	v.SetDefault("WEBHOOK_MAX_BODY", 1<<20)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:              v.GetString("APP_NAME"),
			Port:              v.GetString("PORT"),
			Debug:             v.GetBool("DEBUG"),
			LogPath:           v.GetString("LOG_PATH"),
			DemoRegistration:  v.GetBool("DEMO_REGISTRATION"),
			ExplorerStaffOnly: v.GetBool("EXPLORER_STAFF_ONLY"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			CookieName: v.GetString("SESSION_COOKIE"),
			TTLHours:   v.GetInt("SESSION_TTL_HOURS"),
			Secure:     v.GetBool("COOKIE_SECURE"),
		},
		Webhook: WebhookConfig{
			Secret:       v.GetString("W_SECRET"),
			RepoPath:     v.GetString("REPO_PATH"),
			Remote:       v.GetString("REPO_REMOTE"),
			MaxBodyBytes: v.GetInt64("WEBHOOK_MAX_BODY"),
		},
	}

	return config, nil
}
