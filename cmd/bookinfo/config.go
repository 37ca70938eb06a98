package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type config struct {
	Debug bool
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() config {
	return config{Debug: getEnvBool("BOOKINFO_DEBUG", false)}
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
