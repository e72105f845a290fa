package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("RIOT_BASE_URL_FORMAT", "")
	t.Setenv("RIOT_DEFAULT_REGION", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("MATCH_CHUNK_SIZE", "")
	t.Setenv("MATCH_PACE_DELAY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "RGAPI-test", cfg.RiotAPIKey)
	assert.Equal(t, "https://%s.api.riotgames.com", cfg.RiotBaseURLFormat)
	assert.Equal(t, "kr", cfg.DefaultRegion)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.MatchChunkSize)
	assert.Equal(t, 1500*time.Millisecond, cfg.MatchPaceDelay)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("RIOT_DEFAULT_REGION", "euw1")
	t.Setenv("MATCH_CHUNK_SIZE", "3")
	t.Setenv("MATCH_PACE_DELAY", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "euw1", cfg.DefaultRegion)
	assert.Equal(t, 3, cfg.MatchChunkSize)
	assert.Equal(t, 2*time.Second, cfg.MatchPaceDelay)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing api key", map[string]string{"RIOT_API_KEY": ""}},
		{"non numeric chunk size", map[string]string{"MATCH_CHUNK_SIZE": "five"}},
		{"zero chunk size", map[string]string{"MATCH_CHUNK_SIZE": "0"}},
		{"bad pace delay", map[string]string{"MATCH_PACE_DELAY": "soon"}},
		{"negative pace delay", map[string]string{"MATCH_PACE_DELAY": "-1s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RIOT_API_KEY", "RGAPI-test")
			t.Setenv("MATCH_CHUNK_SIZE", "")
			t.Setenv("MATCH_PACE_DELAY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
