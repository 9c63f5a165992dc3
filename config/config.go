package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	OpenWeatherAPIKey string
	ServerPort        string
	CacheDuration     int // минуты, только для серверного режима
	LogLevel          string
	LogFile           string
}

func Load() (*Config, error) {
	// Загружаем .env файл если существует
	godotenv.Load()

	config := &Config{
		OpenWeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		CacheDuration:     getEnvAsInt("CACHE_DURATION", 10),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFile:           getEnv("LOG_FILE", "weather_forecast.log"),
	}

	// Ключ API может прийти и позже, через флаг или запрос с консоли,
	// поэтому его отсутствие здесь не ошибка
	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}
