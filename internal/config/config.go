package config

import "os"

type Config struct {
	Port string
	MongoURI string
	DatabaseName string
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),
		MongoURI: getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "kanban_db"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
