package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	DBSource       string
	AllowedOrigins []string

	// business timezone used for the dashboard day windows
	Location *time.Location

	// upper bound for a single store call
	QueryTimeout time.Duration

	// optional dashboard cache
	RedisAddr string
	CacheTTL  time.Duration

	SeedDemo bool
}

func LoadConfig() *Config {
	tzName := getEnv("BUSINESS_TZ", "America/Bahia")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Fatalf("invalid BUSINESS_TZ %q: %v", tzName, err)
	}

	return &Config{
		Port:           getEnv("PORT", "3000"),
		DBSource:       getEnv("DB_SOURCE", "acaraje.db"),
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "*")),
		Location:       loc,
		QueryTimeout:   getDuration("QUERY_TIMEOUT", 5*time.Second),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		CacheTTL:       getDuration("CACHE_TTL", 30*time.Second),
		SeedDemo:       getEnv("SEED_DEMO", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
