package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MetricsPort string
	DBDriver    string
	DBSource    string

	// AdminPass gates the management page. One shared secret for all staff,
	// documented fallback below — access obfuscation, not authentication.
	AdminPass string
	JWTSecret string
	JWTTTL    time.Duration

	// SalesTargetSen is the event sales goal the progress bar tracks.
	SalesTargetSen int64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8000"),
		MetricsPort:    getEnv("METRICS_PORT", "9090"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBSource:       getEnv("DB_SOURCE", "tepico.db"),
		AdminPass:      getEnv("ADMIN_PASS", "tepico2025"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         time.Duration(24) * time.Hour,
		SalesTargetSen: getEnvRM("SALES_TARGET", 500) * 100,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// getEnvRM reads a whole-ringgit amount.
func getEnvRM(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using RM%d", key, v, fallback)
		return fallback
	}
	return n
}
