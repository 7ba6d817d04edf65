package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	DBPath        string        `mapstructure:"DB_PATH"`
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	SweepInterval time.Duration `mapstructure:"SWEEP_INTERVAL"`
	BaseURL       string        `mapstructure:"BASE_URL"`
	SMTPHost      string        `mapstructure:"SMTP_HOST"`
	SMTPPort      string        `mapstructure:"SMTP_PORT"`
	SMTPUser      string        `mapstructure:"SMTP_USER"`
	SMTPPass      string        `mapstructure:"SMTP_PASS"`
}

// LoadConfig loads configuration from an optional app.env file in the given
// path, with environment variables taking precedence.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("DB_PATH", "auctionhouse.db")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("SWEEP_INTERVAL", time.Minute)
	viper.SetDefault("BASE_URL", "http://localhost:5173")

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine, env vars and defaults still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
