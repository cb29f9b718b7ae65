package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Storage StorageConfig
}

type AppConfig struct {
	Port        string
	Env         string
	BaseURL     string
	CORSOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type StorageConfig struct {
	Root string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		// Running from environment variables alone is fine
		return nil, err
	}

	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("STORAGE_ROOT", "public/uploads")

	var corsOrigins []string
	if raw := viper.GetString("CORS_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			corsOrigins = append(corsOrigins, strings.TrimSpace(origin))
		}
	}

	config := &Config{
		App: AppConfig{
			Port:        viper.GetString("APP_PORT"),
			Env:         viper.GetString("APP_ENV"),
			BaseURL:     viper.GetString("APP_URL"),
			CORSOrigins: corsOrigins,
		},
		DB: DBConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetString("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			Name:     viper.GetString("POSTGRES_DB"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Storage: StorageConfig{
			Root: viper.GetString("STORAGE_ROOT"),
		},
	}

	return config, nil
}
