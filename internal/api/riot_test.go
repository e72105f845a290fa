package api

import (
	"context"
	"lol-tracker/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *RiotClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRiotClient(&config.Config{
		RiotAPIKey:        "RGAPI-test",
		RiotBaseURLFormat: srv.URL + "/%s",
	})
}

func TestRiotClient_GetAccountByRiotID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "RGAPI-test", r.Header.Get("X-Riot-Token"))
		assert.Equal(t, "/asia/riot/account/v1/accounts/by-riot-id/Hide on bush/KR1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"puuid":"p-1","gameName":"Hide on bush","tagLine":"KR1"}`))
	})

	account, err := c.GetAccountByRiotID(context.Background(), "asia", "Hide on bush", "KR1")
	require.NoError(t, err)
	assert.Equal(t, &AccountResponse{Puuid: "p-1", GameName: "Hide on bush", TagLine: "KR1"}, account)
}

func TestRiotClient_GetSummonerByPUUID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/kr/lol/summoner/v4/summoners/by-puuid/p-1", r.URL.Path)
		w.Write([]byte(`{"id":"s-1","puuid":"p-1","profileIconId":6,"revisionDate":1700000000000,"summonerLevel":512}`))
	})

	summoner, err := c.GetSummonerByPUUID(context.Background(), "kr", "p-1")
	require.NoError(t, err)
	assert.Equal(t, "s-1", summoner.ID)
	assert.Equal(t, 6, summoner.ProfileIconID)
	assert.Equal(t, int64(512), summoner.SummonerLevel)
	assert.Equal(t, int64(1700000000000), summoner.RevisionDate)
}

func TestRiotClient_GetLeagueEntriesByPUUID(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"ranked", `[{"queueType":"RANKED_SOLO_5x5","tier":"CHALLENGER","rank":"I","leaguePoints":1200,"wins":300,"losses":250}]`, 1},
		{"unranked", `[]`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/kr/lol/league/v4/entries/by-puuid/p-1", r.URL.Path)
				w.Write([]byte(tt.body))
			})

			entries, err := c.GetLeagueEntriesByPUUID(context.Background(), "kr", "p-1")
			require.NoError(t, err)
			assert.Len(t, entries, tt.want)
		})
	}
}

func TestRiotClient_GetMatchIDsByPUUID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/asia/lol/match/v5/matches/by-puuid/p-1/ids", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("start"))
		assert.Equal(t, "20", r.URL.Query().Get("count"))
		w.Write([]byte(`["KR_1","KR_2"]`))
	})

	ids, err := c.GetMatchIDsByPUUID(context.Background(), "asia", "p-1", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"KR_1", "KR_2"}, ids)
}

func TestRiotClient_GetMatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/asia/lol/match/v5/matches/KR_1", r.URL.Path)
		w.Write([]byte(`{
			"metadata": {"matchId": "KR_1", "participants": ["p-1", "p-2"]},
			"info": {
				"gameDuration": 1800,
				"gameMode": "CLASSIC",
				"queueId": 420,
				"participants": [
					{"puuid": "p-1", "teamId": 100, "perks": {"statPerks": {"defense": 5001, "flex": 5008, "offense": 5005},
						"styles": [{"description": "primaryStyle", "style": 8000, "selections": [{"perk": 8010}]}]}},
					{"puuid": "p-2", "teamId": 200}
				]
			}
		}`))
	})

	match, err := c.GetMatch(context.Background(), "asia", "KR_1")
	require.NoError(t, err)
	assert.Equal(t, "KR_1", match.Metadata.MatchID)
	assert.Equal(t, 420, match.Info.QueueID)
	require.Len(t, match.Info.Participants, 2)

	p := match.FindParticipant("p-1")
	require.NotNil(t, p)
	assert.Equal(t, 100, p.TeamID)
	assert.Equal(t, 5008, p.Perks.StatPerks.Flex)
	require.Len(t, p.Perks.Styles, 1)
	assert.Equal(t, 8010, p.Perks.Styles[0].Selections[0].Perk)

	assert.Nil(t, match.FindParticipant("p-9"))
}

func TestRiotClient_StatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"status":{"message":"Rate limit exceeded","status_code":429}}`))
	})

	_, err := c.GetMatch(context.Background(), "asia", "KR_1")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, 3*time.Second, statusErr.RetryAfter)
	assert.Contains(t, statusErr.Body, "Rate limit exceeded")
}

func TestRiotClient_DecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := c.GetMatchIDsByPUUID(context.Background(), "asia", "p-1", 0, 20)
	assert.Error(t, err)
}

func TestRiotClient_CanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetMatch(ctx, "asia", "KR_1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRiotClient_RateLimitInfo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-App-Rate-Limit", "20:1,100:120")
		w.Header().Set("X-App-Rate-Limit-Count", "1:1,7:120")
		w.Header().Set("X-Method-Rate-Limit", "2000:10")
		w.Header().Set("X-Method-Rate-Limit-Count", "1:10")
		w.Write([]byte(`[]`))
	})

	_, err := c.GetMatchIDsByPUUID(context.Background(), "asia", "p-1", 0, 20)
	require.NoError(t, err)

	info := c.GetRateLimitInfo()
	assert.Equal(t, "20:1,100:120", info.AppLimit)
	assert.Equal(t, "1:1,7:120", info.AppCount)
	assert.Equal(t, "2000:10", info.MethodLimit)
	assert.Equal(t, "1:10", info.MethodCount)
	assert.False(t, info.UpdatedAt.IsZero())
}

func TestRiotClient_DeadlineExceeded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.GetMatchIDsByPUUID(ctx, "asia", "p-1", 0, 20)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
