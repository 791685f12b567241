package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr  string
	Env         string
	DatabaseURL string
	OneClick    OneClickConfig
	Quote       QuoteConfig
	Tracking    TrackingConfig
}

type OneClickConfig struct {
	BaseURL string
	JWT     string
}

type QuoteConfig struct {
	// FallbackWallet is used as the refund/recipient address when the caller
	// supplies no connected wallet.
	FallbackWallet    string
	PreferredChain    string
	SlippageTolerance int
	Deadline          time.Duration
}

type TrackingConfig struct {
	PollInterval time.Duration
	MaxAttempts  int
	Timeout      time.Duration
}

// LoadFromEnv reads configuration from environment variables with fallback defaults.
// It also loads `.env` if present (for local development).
func LoadFromEnv() *Config {
	// Load .env if exists, ignore error if no file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, relying on environment variables")
	}

	listenAddr := getEnv("LISTEN_ADDR", ":8080")
	env := getEnv("ENV", "dev")
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("[FATAL] DATABASE_URL is required")
	}

	return &Config{
		ListenAddr:  listenAddr,
		Env:         env,
		DatabaseURL: databaseURL,
		OneClick: OneClickConfig{
			BaseURL: getEnv("ONECLICK_BASE_URL", "https://1click.chaindefuser.com"),
			JWT:     getEnv("ONECLICK_JWT", ""),
		},
		Quote: QuoteConfig{
			FallbackWallet:    getEnv("FALLBACK_WALLET", "intents.near"),
			PreferredChain:    getEnv("PREFERRED_CHAIN", "eth"),
			SlippageTolerance: getInt("SLIPPAGE_TOLERANCE_BPS", 100),
			Deadline:          getDuration("QUOTE_DEADLINE", "30m"),
		},
		Tracking: TrackingConfig{
			PollInterval: getDuration("TRACK_POLL_INTERVAL", "5s"),
			MaxAttempts:  getInt("TRACK_MAX_ATTEMPTS", 120),
			Timeout:      getDuration("TRACK_TIMEOUT", "10m"),
		},
	}
}

// helper to get env with default fallback
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("[FATAL] Invalid %s duration: %v", key, err)
	}
	return d
}

func getInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("[FATAL] Invalid %s integer: %v", key, err)
	}
	return n
}
