package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DataDir string
}

// Load reads configuration from the environment, optionally from a .env file
// if one is present. Every value has a default, so Load cannot fail.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:    getEnv("PORT", "3001"),
		DataDir: getEnv("DATA_DIR", "./data"),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
