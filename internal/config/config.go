package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DatabaseURL string
	RateLimit   float64
	RateBurst   int
	LogLevel    string
	TLSCert     string
	TLSKey      string
}

// Load reads an optional .env file and then the process environment.
func Load(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		Addr:        getenv("PHOTON_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		TLSCert:     os.Getenv("TLS_CERT"),
		TLSKey:      os.Getenv("TLS_KEY"),
	}

	var err error
	if cfg.RateLimit, err = strconv.ParseFloat(getenv("PHOTON_RATE", "5"), 64); err != nil {
		return Config{}, fmt.Errorf("PHOTON_RATE: %w", err)
	}
	if cfg.RateBurst, err = strconv.Atoi(getenv("PHOTON_BURST", "10")); err != nil {
		return Config{}, fmt.Errorf("PHOTON_BURST: %w", err)
	}
	if cfg.RateLimit <= 0 || cfg.RateBurst <= 0 {
		return Config{}, fmt.Errorf("rate limit must be positive (rate=%g burst=%d)", cfg.RateLimit, cfg.RateBurst)
	}
	return cfg, nil
}

func (c Config) UseTLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
