package config

import (
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
	RedisAddr        string // Address of the maze cache; empty disables caching
	RedisPassword    string // Password for the maze cache
	RedisDB          int    // Database index for the maze cache
	CacheTTLSeconds  int    // Lifetime of a cached maze
	TicketSecret     string // Secret key for maze ticket signing; empty disables sharing
	TicketIssuer     string // Issuer claim for maze tickets
	TicketTTLSeconds int    // Lifetime of a maze ticket
	MaxMazeDimension int    // Largest accepted column or row count
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:           getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:         getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:        getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:    getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:          getEnvAsIntWithDefault("REDIS_DB", 0),
		CacheTTLSeconds:  getEnvAsIntWithDefault("CACHE_TTL_SECONDS", 3600),
		TicketSecret:     getEnvWithDefault("TICKET_SECRET", ""),
		TicketIssuer:     getEnvWithDefault("TICKET_ISSUER", "vinom-maze"),
		TicketTTLSeconds: getEnvAsIntWithDefault("TICKET_TTL_SECONDS", 7*24*3600),
		MaxMazeDimension: getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", 50),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
// A value that is set but cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := parseInt(key, valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	return value
}

func parseInt(key, valueStr string) (int, error) {
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, &EnvError{Key: key, Err: err}
	}
	return value, nil
}
