package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host            string
	Port            int
	AllowOrigins    []string
	LogLevel        string
	LogFile         string
	MaxUploadMB     int
	DefaultDiscount float64
	ExcludedBrands  []string
	RateLimitRPM    int
	FuzzySearch     bool
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8083"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	rpm, _ := strconv.Atoi(getenv("RATE_LIMIT_RPM", "300"))
	disc, err := strconv.ParseFloat(getenv("DEFAULT_DISCOUNT", "42"), 64)
	if err != nil || disc < 0 || disc > 100 {
		disc = 42
	}
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:            getenv("HOST", "127.0.0.1"),
		Port:            port,
		AllowOrigins:    origins,
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFile:         getenv("LOG_FILE", "logs/parts-catalog.log"),
		MaxUploadMB:     mb,
		DefaultDiscount: disc,
		ExcludedBrands:  splitCSV(getenv("EXCLUDED_BRANDS", "NGK")),
		RateLimitRPM:    rpm,
		FuzzySearch:     getenv("FUZZY_SEARCH", "0") == "1",
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
