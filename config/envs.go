package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	DBHost           string // Hostname or IP address for the database
	DBPort           int    // Port number for the database
	DBUser           string // Username for the database
	DBPassword       string // Password for the database
	DBName           string // Name of the database
	RedisAddr        string // Address of the Redis cache; empty disables caching
	RedisPassword    string // Password for the Redis cache
	CacheTTLSeconds  int    // Lifetime of cached maze records
	MaxMazeDimension int    // Largest width or height the service will generate
	MaxMazeSteps     int    // Largest step count a request may ask for; 0 derives it from MaxMazeDimension
	LogLevel         string // zap level name (debug, info, warn, error)
}

const (
	defaultHostIP           = "0.0.0.0"
	defaultRESTPort         = 8080
	defaultGinMode          = "release"
	defaultCacheTTLSeconds  = 3600
	defaultMaxMazeDimension = 100
	defaultLogLevel         = "info"
)

// Load reads the configuration from environment variables, loading a .env
// file first when one is present. Every missing or malformed key is reported.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	l := &loader{}
	c := Config{
		HostIP:           getEnvWithDefault("HOST_IP", defaultHostIP),
		RESTPort:         l.intWithDefault("REST_PORT", defaultRESTPort),
		GinMode:          getEnvWithDefault("GIN_MODE", defaultGinMode),
		DBHost:           l.mustGetEnv("DB_HOST"),
		DBPort:           l.mustGetEnvAsInt("DB_PORT"),
		DBUser:           l.mustGetEnv("DB_USER"),
		DBPassword:       l.mustGetEnv("DB_PASS"),
		DBName:           l.mustGetEnv("DB_NAME"),
		RedisAddr:        getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:    getEnvWithDefault("REDIS_PASS", ""),
		CacheTTLSeconds:  l.intWithDefault("CACHE_TTL_SECONDS", defaultCacheTTLSeconds),
		MaxMazeDimension: l.intWithDefault("MAX_MAZE_DIMENSION", defaultMaxMazeDimension),
		MaxMazeSteps:     l.intWithDefault("MAX_MAZE_STEPS", 0),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", defaultLogLevel),
	}

	if err := errors.Join(l.errs...); err != nil {
		return Config{}, err
	}
	return c, nil
}

// loader collects lookup failures so Load can report all of them at once.
type loader struct {
	errs []error
}

// mustGetEnv retrieves the value of an environment variable or records an error if not set.
func (l *loader) mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		l.errs = append(l.errs, fmt.Errorf("environment variable %s is not set", key))
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer.
func (l *loader) mustGetEnvAsInt(key string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		l.errs = append(l.errs, fmt.Errorf("environment variable %s is not set", key))
		return 0
	}
	return l.atoi(key, valueStr)
}

// intWithDefault retrieves an integer environment variable or returns defaultValue if not set.
func (l *loader) intWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return l.atoi(key, valueStr)
}

func (l *loader) atoi(key, valueStr string) int {
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("environment variable %s must be an integer: %w", key, err))
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
