package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	StorageDriver string
	DataDir       string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	AuthScheme    string
}

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "password"),
		DBName:        getEnv("DB_NAME", "donation_dashboard"),
		AuthScheme:    getEnv("AUTH_SCHEME", "plain"),
	}, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
