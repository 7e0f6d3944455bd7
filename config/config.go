package config

import "os"

// JWTSecret signs session tokens — set by Load from env or fallback.
var JWTSecret = []byte("campus_eats_super_secret_2024")

type Config struct {
	Port          string
	StorageDriver string // "file" or "sqlite"
	DataDir       string // file driver: directory holding the record files
	DBPath        string // sqlite driver: database file
	GeminiAPIKey  string
	GeminiModel   string
}

// Load reads configuration from environment variables or uses defaults.
func Load() *Config {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		JWTSecret = []byte(secret)
	}
	return &Config{
		Port:          getEnv("PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		DataDir:       getEnv("DATA_DIR", "data"),
		DBPath:        getEnv("DB_PATH", "campus_eats.db"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
