package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type StoreBackend string

const (
	BackendMemory    StoreBackend = "memory"
	BackendFirestore StoreBackend = "firestore"
	BackendPostgres  StoreBackend = "postgres"
	BackendRedis     StoreBackend = "redis"
)

type Config struct {
	Port            string
	LogLevel        string
	LogFormat       string
	StoreBackend    StoreBackend
	SeedBanks       bool
	ProjectID       string
	DatabaseURL     string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RedisPrefix     string
	ShutdownTimeout time.Duration
}

func New() *Config {
	return &Config{
		Port:            getOr("PORT", "8080"),
		LogLevel:        os.Getenv("LOGLEVEL"),
		LogFormat:       getOr("LOGFORMAT", "cloudrun"),
		StoreBackend:    getStoreBackend(os.Getenv("STOREBACKEND")),
		SeedBanks:       getBool("SEEDBANKS", true),
		ProjectID:       os.Getenv("PROJECTID"),
		DatabaseURL:     os.Getenv("DATABASEURL"),
		RedisAddr:       getOr("REDISADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDISPASSWORD"),
		RedisDB:         getInt("REDISDB", 0),
		RedisPrefix:     getOr("REDISPREFIX", "bank-registry"),
		ShutdownTimeout: getDuration("SHUTDOWNTIMEOUT", 10*time.Second),
	}
}

func getStoreBackend(backend string) StoreBackend {
	switch strings.ToLower(backend) {
	case "firestore":
		return BackendFirestore
	case "postgres":
		return BackendPostgres
	case "redis":
		return BackendRedis
	default: // "memory"
		return BackendMemory
	}
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
