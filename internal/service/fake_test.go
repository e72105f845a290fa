package service

import (
	"context"
	"fmt"
	"lol-tracker/internal/api"
	"sync"
)

type fakeRiot struct {
	getAccount       func(ctx context.Context, cluster, gameName, tagLine string) (*api.AccountResponse, error)
	getSummoner      func(ctx context.Context, platform, puuid string) (*api.SummonerResponse, error)
	getLeagueEntries func(ctx context.Context, platform, puuid string) ([]api.LeagueEntry, error)
	getMatchIDs      func(ctx context.Context, regional, puuid string, start, count int) ([]string, error)
	getMatch         func(ctx context.Context, regional, matchID string) (*api.MatchResponse, error)
}

func (f *fakeRiot) GetAccountByRiotID(ctx context.Context, cluster, gameName, tagLine string) (*api.AccountResponse, error) {
	return f.getAccount(ctx, cluster, gameName, tagLine)
}

func (f *fakeRiot) GetSummonerByPUUID(ctx context.Context, platform, puuid string) (*api.SummonerResponse, error) {
	return f.getSummoner(ctx, platform, puuid)
}

func (f *fakeRiot) GetLeagueEntriesByPUUID(ctx context.Context, platform, puuid string) ([]api.LeagueEntry, error) {
	return f.getLeagueEntries(ctx, platform, puuid)
}

func (f *fakeRiot) GetMatchIDsByPUUID(ctx context.Context, regional, puuid string, start, count int) ([]string, error) {
	return f.getMatchIDs(ctx, regional, puuid, start, count)
}

func (f *fakeRiot) GetMatch(ctx context.Context, regional, matchID string) (*api.MatchResponse, error) {
	return f.getMatch(ctx, regional, matchID)
}

// matchStore serves canned matches and records the order of fetches and
// pauses in one timeline.
type matchStore struct {
	mu       sync.Mutex
	matches  map[string]*api.MatchResponse
	failures map[string]error
	timeline []string
}

func newMatchStore() *matchStore {
	return &matchStore{matches: map[string]*api.MatchResponse{}, failures: map[string]error{}}
}

func (m *matchStore) GetMatch(ctx context.Context, regional, matchID string) (*api.MatchResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeline = append(m.timeline, matchID)
	if err, ok := m.failures[matchID]; ok {
		return nil, err
	}
	match, ok := m.matches[matchID]
	if !ok {
		return nil, &api.StatusError{StatusCode: 404, Body: `{"status":{"message":"Data not found"}}`}
	}
	return match, nil
}

func (m *matchStore) record(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeline = append(m.timeline, event)
}

func participant(puuid string, teamID int) api.Participant {
	return api.Participant{
		Puuid:          puuid,
		RiotIDGameName: "name-" + puuid,
		RiotIDTagline:  "tag-" + puuid,
		ChampionName:   "Ahri",
		TeamID:         teamID,
		Perks: api.Perks{
			Styles: []api.PerkStyle{
				{Description: "primaryStyle", Style: 8100, Selections: []api.PerkSelection{{Perk: 8112}}},
				{Description: "subStyle", Style: 8300},
			},
		},
	}
}

func matchWith(id string, participants ...api.Participant) *api.MatchResponse {
	m := &api.MatchResponse{}
	m.Metadata.MatchID = id
	m.Info.GameMode = "CLASSIC"
	m.Info.QueueID = 420
	m.Info.Participants = participants
	return m
}

func matchIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("KR_%d", i+1)
	}
	return ids
}
