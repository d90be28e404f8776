package config

import (
	"crypto/rand"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Weather  WeatherConfig
	Scoring  ScoringConfig
	Boundary BoundaryConfig

	// SessionSecret is generated fresh at every startup; nothing
	// signed with it needs to survive a restart.
	SessionSecret []byte
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins string
}

type WeatherConfig struct {
	BaseURL        string
	ServiceKey     string
	StationID      string
	TimeoutSeconds int
}

type ScoringConfig struct {
	URL   string
	Token string
}

type BoundaryConfig struct {
	Path string
}

func (d DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

func LoadConfig() (*Config, error) {
	serverPort, err := getIntEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	dbPort, err := getIntEnv("DB_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	redisPort, err := getIntEnv("REDIS_PORT", 6379)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_PORT: %w", err)
	}

	redisDB, err := getIntEnv("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	weatherTimeout, err := getIntEnv("WEATHER_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_TIMEOUT_SECONDS: %w", err)
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: serverPort,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "uhii"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "uhii"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     redisPort,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Weather: WeatherConfig{
			BaseURL:        getEnv("WEATHER_BASE_URL", "http://apis.data.go.kr/1360000/AsosHourlyInfoService/getWthrDataList"),
			ServiceKey:     getEnv("SERVICE_KEY", ""),
			StationID:      getEnv("WEATHER_STATION_ID", "108"),
			TimeoutSeconds: weatherTimeout,
		},
		Scoring: ScoringConfig{
			URL:   getEnv("DATABRICKS_MODEL_URL", ""),
			Token: getEnv("DATABRICKS_TOKEN", ""),
		},
		Boundary: BoundaryConfig{
			Path: getEnv("BOUNDARY_PATH", "data/seoul_gu_25.geojson"),
		},
		SessionSecret: secret,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getIntEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}
