package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Payment  PaymentConfig
	Email    EmailConfig
	Sweep    SweepConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Address    string
	Password   string
	DB         int
	TTLSeconds int
}

type PaymentConfig struct {
	WebhookSecret string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type SweepConfig struct {
	Enabled       bool
	IntervalHours int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_TTL_SECONDS", 300)
	viper.SetDefault("SWEEP_ENABLED", true)
	viper.SetDefault("SWEEP_INTERVAL_HOURS", 24)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Address:    viper.GetString("REDIS_ADDR"),
			Password:   viper.GetString("REDIS_PASS"),
			DB:         viper.GetInt("REDIS_DB"),
			TTLSeconds: viper.GetInt("REDIS_TTL_SECONDS"),
		},
		Payment: PaymentConfig{
			WebhookSecret: viper.GetString("PAYMENT_WEBHOOK_SECRET"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Sweep: SweepConfig{
			Enabled:       viper.GetBool("SWEEP_ENABLED"),
			IntervalHours: viper.GetInt("SWEEP_INTERVAL_HOURS"),
		},
	}

	return config, nil
}
