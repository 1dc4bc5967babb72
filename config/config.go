package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every tunable the service reads from the environment.
type Config struct {
	Port          string
	BaseURL       string
	AllowedOrigin string

	PostgresDSN string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	RabbitURL  string
	ClickQueue string

	JWTSecret string

	// AnalyticsZone is the zone click timestamps are bucketed in for the
	// date-wise report. Defaults to UTC+05:30.
	AnalyticsZone *time.Location
	// DateWindow is how many most-recent day buckets the date-wise report keeps.
	DateWindow int

	LogFile   string
	LogMaxAge int
	LogMaxMB  int
}

func Load() *Config {
	_ = godotenv.Load() // missing .env is fine in containers

	return &Config{
		Port:          getEnv("PORT", "3000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:3000"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
		PostgresDSN:   postgresDSN(),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RabbitURL:     getEnv("RABBITMQ_URL", rabbitURL()),
		ClickQueue:    getEnv("CLICK_QUEUE", "click_events"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		AnalyticsZone: parseZone(getEnv("ANALYTICS_TZ_OFFSET", "+05:30")),
		DateWindow:    getEnvInt("ANALYTICS_DATE_WINDOW", 4),
		LogFile:       getEnv("LOG_FILE", "linkmanager.log"),
		LogMaxAge:     getEnvInt("LOG_MAX_AGE", 3),
		LogMaxMB:      getEnvInt("LOG_MAX_MB", 1024),
	}
}

func postgresDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	host := getEnv("POSTGRES_HOST", "localhost")
	port := getEnv("POSTGRES_PORT", "5432")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "postgres")
	dbname := getEnv("POSTGRES_DB", "linkmanager")
	return "host=" + host + " port=" + port + " user=" + user + " password=" + password + " dbname=" + dbname + " sslmode=disable"
}

func rabbitURL() string {
	host := getEnv("RABBITMQ_HOST", "localhost")
	port := getEnv("RABBITMQ_PORT", "5672")
	return "amqp://guest:guest@" + host + ":" + port + "/"
}

// parseZone turns an "+05:30" style offset into a fixed time.Location.
// A bad value falls back to UTC rather than failing boot.
func parseZone(offset string) *time.Location {
	if len(offset) != 6 || (offset[0] != '+' && offset[0] != '-') {
		return time.UTC
	}
	hours, err1 := strconv.Atoi(offset[1:3])
	mins, err2 := strconv.Atoi(offset[4:6])
	if err1 != nil || err2 != nil {
		return time.UTC
	}
	seconds := hours*3600 + mins*60
	if offset[0] == '-' {
		seconds = -seconds
	}
	return time.FixedZone("UTC"+offset, seconds)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
