package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	JWTSecret    string
	ClinicTZ     string
	SnapshotPath string

	// Seed controls whether an empty store is filled with the demo dataset.
	Seed bool
}

func Load() *Config {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		ClinicTZ:     getEnv("CLINIC_TZ", ""),
		SnapshotPath: getEnv("SNAPSHOT_PATH", "clinic-storage.json"),
		Seed:         getEnv("SEED", "true") != "false",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
