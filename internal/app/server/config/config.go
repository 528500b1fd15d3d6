package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress   = "localhost:8080"
	defaultDatabasePath = "workouts.db"
	defaultLogLevel     = "info"
)

type Config struct {
	Env    string
	Server server
	DB     db
	Logger logger
}

type server struct {
	RunAddress string
}

type db struct {
	DatabasePath string
}

type logger struct {
	LogLevel string
}

// MustLoad загружает конфигурацию сервера из .env и переменных окружения
func MustLoad() *Config {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("DATABASE_PATH", defaultDatabasePath)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)

	return &Config{
		Env:    viper.GetString("APP_ENV"),
		Server: server{RunAddress: viper.GetString("RUN_ADDRESS")},
		DB:     db{DatabasePath: viper.GetString("DATABASE_PATH")},
		Logger: logger{LogLevel: viper.GetString("LOG_LEVEL")},
	}
}
