package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	Port         string
	Origin       string
	Environment  string
	KVAPISecret  string
	SeedDemoData bool
	Storage      StorageConfig
}

// StorageConfig selects and configures the key-value backend
type StorageConfig struct {
	Backend  string
	Database DatabaseConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	Remote   RemoteConfig

	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// MongoConfig holds MongoDB connection details
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// RemoteConfig points at another instance of the key-value service
type RemoteConfig struct {
	URL    string
	Secret string
}

// Backend names accepted in STORAGE_BACKEND
const (
	BackendMemory = "memory"
	BackendMySQL  = "mysql"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendRemote = "remote"
)

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load database configuration
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "medicab"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	redisConfig := RedisConfig{
		Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
		Password:  getEnv("REDIS_PASSWORD", ""),
		DB:        redisDB,
		KeyPrefix: getEnv("REDIS_KEY_PREFIX", ""),
	}

	mongoConfig := MongoConfig{
		URI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database:   getEnv("MONGO_DATABASE", "medicab"),
		Collection: getEnv("MONGO_COLLECTION", "kv"),
	}

	kvSecret := getEnv("KV_API_SECRET", "")

	remoteConfig := RemoteConfig{
		URL:    strings.TrimRight(getEnv("REMOTE_KV_URL", "http://localhost:3001"), "/"),
		Secret: getEnv("REMOTE_KV_SECRET", kvSecret),
	}

	timeoutMs, err := strconv.Atoi(getEnv("STORAGE_TIMEOUT_MS", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORAGE_TIMEOUT_MS: %w", err)
	}

	retries, err := strconv.Atoi(getEnv("STORAGE_RETRIES", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORAGE_RETRIES: %w", err)
	}
	if retries < 0 {
		return nil, fmt.Errorf("invalid STORAGE_RETRIES: must not be negative, got %d", retries)
	}

	retryDelayMs, err := strconv.Atoi(getEnv("STORAGE_RETRY_DELAY_MS", "200"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORAGE_RETRY_DELAY_MS: %w", err)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO_DATA: %w", err)
	}

	backend := strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory))
	switch backend {
	case BackendMemory, BackendMySQL, BackendRedis, BackendMongo, BackendRemote:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND: unknown backend %q", backend)
	}

	// Return complete configuration
	return &Config{
		Port:         getEnv("PORT", "3001"),
		Origin:       getEnv("CORS_ORIGIN", "*"),
		Environment:  getEnv("APP_ENV", "development"),
		KVAPISecret:  kvSecret,
		SeedDemoData: seed,
		Storage: StorageConfig{
			Backend:    backend,
			Database:   dbConfig,
			Redis:      redisConfig,
			Mongo:      mongoConfig,
			Remote:     remoteConfig,
			Timeout:    time.Duration(timeoutMs) * time.Millisecond,
			Retries:    retries,
			RetryDelay: time.Duration(retryDelayMs) * time.Millisecond,
		},
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
