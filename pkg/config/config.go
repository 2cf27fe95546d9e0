package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv    string
	LogLevel  string
	LogFormat string

	GRPCPort int
	HTTPPort int

	// APIAddr is the gRPC target the gateway dials.
	APIAddr string

	SeedFile    string
	CartStore   string
	RedisAddr   string
	DatabaseURL string

	OTLPEndpoint string

	CheckoutMaxConcurrent int
}

func Load() Config {
	return Config{
		AppEnv:                getEnv("APP_ENV", "dev"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "json"),
		HTTPPort:              getEnvInt("HTTP_PORT", 8080),
		GRPCPort:              getEnvInt("GRPC_PORT", 8081),
		APIAddr:               getEnv("API_ADDR", "localhost:8081"),
		SeedFile:              getEnv("SEED_FILE", ""),
		CartStore:             getEnv("CART_STORE", "memory"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		OTLPEndpoint:          getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		CheckoutMaxConcurrent: getEnvInt("CHECKOUT_MAX_CONCURRENT", 10),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
