package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Бэкенды долговременного хранилища
const (
	StorageBackendFile  = "file"
	StorageBackendRedis = "redis"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Redis   RedisConfig
	Geo     GeoConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type StorageConfig struct {
	// Backend - file или redis
	Backend string
	// Path - путь к JSON-файлу коллекции (backend=file)
	Path string
	// Key - имя единственной записи хранилища (backend=redis)
	Key string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type GeoConfig struct {
	BaseURL string
	// RequestTimeout - бюджет запроса позиции в секундах
	RequestTimeout int
	// MaxPositionAge - максимальный возраст кешированной позиции в секундах
	MaxPositionAge int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Storage: StorageConfig{
			Backend: viper.GetString("STORAGE_BACKEND"),
			Path:    viper.GetString("STORAGE_PATH"),
			Key:     viper.GetString("STORAGE_KEY"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Geo: GeoConfig{
			BaseURL:        viper.GetString("GEOIP_BASE_URL"),
			RequestTimeout: viper.GetInt("GEOIP_REQUEST_TIMEOUT"),
			MaxPositionAge: viper.GetInt("GEOIP_MAX_POSITION_AGE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = StorageBackendFile
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "./data/venues.json"
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = "nightlife:venues"
	}
	if cfg.Geo.BaseURL == "" {
		cfg.Geo.BaseURL = "http://ip-api.com"
	}
	if cfg.Geo.RequestTimeout == 0 {
		cfg.Geo.RequestTimeout = 10
	}
	if cfg.Geo.MaxPositionAge == 0 {
		cfg.Geo.MaxPositionAge = 60
	}

	if cfg.Storage.Backend != StorageBackendFile && cfg.Storage.Backend != StorageBackendRedis {
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
