package utils

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Admin    AdminConfig
	Gateway  GatewayConfig
	Email    EmailConfig
	Uploads  UploadConfig
}

type AppConfig struct {
	Name      string
	Port      string
	Debug     bool
	LogPath   string
	BaseURL   string // public origin, used for fully-qualified product image URLs
	ClientURL string // frontend origin, used in password reset links
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	CookieName    string
	Secret        string
	ExpiryHours   int
	RedisAddr     string
	RedisPassword string
	CookieSecure  bool
}

type AdminConfig struct {
	SignupSecret string
}

type GatewayConfig struct {
	KeyID     string
	KeySecret string
	BaseURL   string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type UploadConfig struct {
	Dir                  string
	PublicPath           string
	MaxBytes             int64
	AbsoluteCategoryURLs bool // original stores bare filenames for category images
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "9292")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_COOKIE_NAME", "sp_session")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("SESSION_COOKIE_SECURE", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("RAZORPAY_BASE_URL", "https://api.razorpay.com/v1")
	viper.SetDefault("UPLOAD_DIR", "uploads/")
	viper.SetDefault("UPLOAD_PUBLIC_PATH", "/uploads")
	viper.SetDefault("UPLOAD_MAX_BYTES", 5*1024*1024)
	viper.SetDefault("UPLOAD_ABSOLUTE_CATEGORY_URLS", false)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:      viper.GetString("APP_NAME"),
			Port:      viper.GetString("PORT"),
			Debug:     viper.GetBool("DEBUG"),
			LogPath:   viper.GetString("LOG_PATH"),
			BaseURL:   viper.GetString("BASE_URL"),
			ClientURL: viper.GetString("CLIENT_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			CookieName:    viper.GetString("SESSION_COOKIE_NAME"),
			Secret:        viper.GetString("SESSION_SECRET"),
			ExpiryHours:   viper.GetInt("SESSION_EXPIRY_HOURS"),
			RedisAddr:     viper.GetString("REDIS_ADDR"),
			RedisPassword: viper.GetString("REDIS_PASS"),
			CookieSecure:  viper.GetBool("SESSION_COOKIE_SECURE"),
		},
		Admin: AdminConfig{
			SignupSecret: viper.GetString("ADMIN_SECRET"),
		},
		Gateway: GatewayConfig{
			KeyID:     viper.GetString("RAZORPAY_KEY_ID"),
			KeySecret: viper.GetString("RAZORPAY_SECRET_KEY"),
			BaseURL:   viper.GetString("RAZORPAY_BASE_URL"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("EMAIL_USER"),
			Password: viper.GetString("EMAIL_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Uploads: UploadConfig{
			Dir:                  viper.GetString("UPLOAD_DIR"),
			PublicPath:           strings.TrimSuffix(viper.GetString("UPLOAD_PUBLIC_PATH"), "/"),
			MaxBytes:             viper.GetInt64("UPLOAD_MAX_BYTES"),
			AbsoluteCategoryURLs: viper.GetBool("UPLOAD_ABSOLUTE_CATEGORY_URLS"),
		},
	}

	return config, nil
}
