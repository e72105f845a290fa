package config

import (
	"fmt"
	"lol-tracker/internal/constants"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	RiotAPIKey        string
	RiotBaseURLFormat string
	DefaultRegion     string
	ServerPort        string
	LogLevel          string
	MatchChunkSize    int
	MatchPaceDelay    time.Duration
}

func Load() (*Config, error) {
	// missing .env is fine, environment variables still apply
	_ = godotenv.Load()

	cfg := &Config{
		RiotAPIKey:        getEnv("RIOT_API_KEY", ""),
		RiotBaseURLFormat: getEnv("RIOT_BASE_URL_FORMAT", "https://%s.api.riotgames.com"),
		DefaultRegion:     getEnv("RIOT_DEFAULT_REGION", "kr"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	chunkSize, err := strconv.Atoi(getEnv("MATCH_CHUNK_SIZE", strconv.Itoa(constants.MatchChunkSize)))
	if err != nil {
		return nil, fmt.Errorf("invalid MATCH_CHUNK_SIZE: %w", err)
	}
	if chunkSize <= 0 {
		return nil, fmt.Errorf("MATCH_CHUNK_SIZE must be positive, got %d", chunkSize)
	}
	cfg.MatchChunkSize = chunkSize

	paceDelay, err := time.ParseDuration(getEnv("MATCH_PACE_DELAY", constants.MatchPaceDelay.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid MATCH_PACE_DELAY: %w", err)
	}
	if paceDelay < 0 {
		return nil, fmt.Errorf("MATCH_PACE_DELAY must not be negative, got %s", paceDelay)
	}
	cfg.MatchPaceDelay = paceDelay

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
