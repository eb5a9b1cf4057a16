package config

import (
	"os"
	"strconv"

	"github.com/gandallf070/trebol/src/shared/infrastructure/database"
)

// Storage backends soportados
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config configuración del servicio, leída de variables de entorno
type Config struct {
	Port              string
	Storage           string
	DB                database.Options
	LogLevel          string
	LogFormat         string
	PrometheusEnabled bool
}

// Load lee la configuración del entorno con valores por defecto
func Load() Config {
	return Config{
		Port:    getEnv("PORT", "8080"),
		Storage: getEnv("STORAGE", StoragePostgres),
		DB: database.Options{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "trebol_db"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 20),
		},
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		PrometheusEnabled: getEnvBool("PROMETHEUS_ENABLED", true),
	}
}

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}
