package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultLogLevel      = "info"
	defaultEnv           = "local"
)

// Config holds the client settings. Two deployment shapes are supported:
// a single base address (FallbackAddress empty), or dual hosts where a
// transport-level failure against ServerAddress retries once against
// FallbackAddress.
type Config struct {
	Env             string `mapstructure:"app_env"`
	ServerAddress   string `mapstructure:"server_address"`
	FallbackAddress string `mapstructure:"fallback_address"`
	LogLevel        string `mapstructure:"log_level"`
	EnableTLS       bool   `mapstructure:"enable_tls"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	// Пробуем найти .env рядом с местом запуска
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("FALLBACK_ADDRESS", "")
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("ENABLE_TLS", false)

	config := &Config{
		Env:             viper.GetString("APP_ENV"),
		ServerAddress:   viper.GetString("SERVER_ADDRESS"),
		FallbackAddress: viper.GetString("FALLBACK_ADDRESS"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
		EnableTLS:       viper.GetBool("ENABLE_TLS"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
