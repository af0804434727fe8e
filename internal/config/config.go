package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port       string
	DBPath     string
	DataDir    string // directory holding the reference CSV files
	ParamsPath string // routing parameters yaml, optional
	RateLimit  int    // requests per IP per minute
}

// Load 加载配置
func Load() *Config {
	// .env is optional; real env always wins
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/metro.db"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	paramsPath := os.Getenv("ROUTING_PARAMS")
	if paramsPath == "" {
		paramsPath = "./routing.yml"
	}

	return &Config{
		Port:       port,
		DBPath:     dbPath,
		DataDir:    dataDir,
		ParamsPath: paramsPath,
		RateLimit:  120,
	}
}
