package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// DefaultMinWithdraw is the smallest withdrawal the ledger accepts when
// MIN_WITHDRAW is not set.
const DefaultMinWithdraw = 500

// Config holds the application configuration. Every component receives what
// it needs from here at construction; nothing reads the environment later.
type Config struct {
	AppPort     string // Application port
	DBUser      string // Database user
	DBPassword  string // Database password
	DBHost      string // Database host
	DBPort      string // Database port
	DBName      string // Database name
	JWTSecret   string // JWT signing secret
	RedisAddr   string // Redis server address
	RedisPass   string // Redis password
	RedisDB     int    // Redis database number
	MinWithdraw int64  // Minimum withdrawal in currency units
	IsProd      bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	minWithdraw := int64(DefaultMinWithdraw)
	if v, err := strconv.ParseInt(os.Getenv("MIN_WITHDRAW"), 10, 64); err == nil && v > 0 {
		minWithdraw = v
	}
	return &Config{
		AppPort:     os.Getenv("APP_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBName:      os.Getenv("DB_NAME"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASS"),
		RedisDB:     redisDB,
		MinWithdraw: minWithdraw,
		IsProd:      os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the MySQL data source name for GORM
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
