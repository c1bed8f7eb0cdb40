package config

import "os"

// Config параметры процесса, читаются из окружения при старте
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
	GinMode  string
}

func Load() Config {
	return Config{
		Port:     getEnv("PORT", "9091"),
		MongoURI: getEnv("MONGODB_URI", ""),
		MongoDB:  getEnv("MONGODB_DATABASE", "cafe_bar_game_db"),
		GinMode:  getEnv("GIN_MODE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
