package service

import (
	"context"
	"lol-tracker/internal/api"
	"lol-tracker/internal/domain"

	"github.com/rs/zerolog"
)

// RiotAPI is the upstream surface the services call.
type RiotAPI interface {
	GetAccountByRiotID(ctx context.Context, cluster, gameName, tagLine string) (*api.AccountResponse, error)
	GetSummonerByPUUID(ctx context.Context, platform, puuid string) (*api.SummonerResponse, error)
	GetLeagueEntriesByPUUID(ctx context.Context, platform, puuid string) ([]api.LeagueEntry, error)
	GetMatchIDsByPUUID(ctx context.Context, regional, puuid string, start, count int) ([]string, error)
	GetMatch(ctx context.Context, regional, matchID string) (*api.MatchResponse, error)
}

type PlayerService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

func NewPlayerService(riot RiotAPI, logger zerolog.Logger) *PlayerService {
	return &PlayerService{riot: riot, logger: logger}
}

// ResolveIdentity looks the Riot ID up on the account cluster and then
// loads the summoner profile for the resulting puuid.
func (s *PlayerService) ResolveIdentity(ctx context.Context, routing api.Routing, gameName, tagLine string) (*domain.PlayerIdentity, error) {
	s.logger.Info().Str("name", gameName).Str("tag", tagLine).Str("platform", routing.Platform).Msg("resolving player")

	account, err := s.riot.GetAccountByRiotID(ctx, routing.Account, gameName, tagLine)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("name", gameName).
			Str("tag", tagLine).
			Int("status", statusOf(err)).
			Str("body", bodyOf(err)).
			Msg("failed to fetch account")
		return nil, classify("get account", err)
	}

	summoner, err := s.riot.GetSummonerByPUUID(ctx, routing.Platform, account.Puuid)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("puuid", account.Puuid).
			Int("status", statusOf(err)).
			Str("body", bodyOf(err)).
			Msg("failed to fetch summoner")
		return nil, classify("get summoner", err)
	}

	return &domain.PlayerIdentity{
		Puuid:         account.Puuid,
		GameName:      account.GameName,
		TagLine:       account.TagLine,
		SummonerID:    summoner.ID,
		AccountID:     summoner.AccountID,
		ProfileIconID: summoner.ProfileIconID,
		RevisionDate:  summoner.RevisionDate,
		SummonerLevel: summoner.SummonerLevel,
	}, nil
}

// GetRank returns the first league entry upstream reports, or nil when the
// player is unranked.
func (s *PlayerService) GetRank(ctx context.Context, routing api.Routing, puuid string) (*domain.RankEntry, error) {
	entries, err := s.riot.GetLeagueEntriesByPUUID(ctx, routing.Platform, puuid)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("puuid", puuid).
			Int("status", statusOf(err)).
			Str("body", bodyOf(err)).
			Msg("failed to fetch league entries")
		return nil, classify("get league entries", err)
	}

	if len(entries) == 0 {
		s.logger.Debug().Str("puuid", puuid).Msg("player is unranked")
		return nil, nil
	}

	e := entries[0]
	return &domain.RankEntry{
		LeagueID:     e.LeagueID,
		QueueType:    e.QueueType,
		Tier:         e.Tier,
		Rank:         e.Rank,
		Puuid:        e.Puuid,
		SummonerID:   e.SummonerID,
		LeaguePoints: e.LeaguePoints,
		Wins:         e.Wins,
		Losses:       e.Losses,
		Veteran:      e.Veteran,
		Inactive:     e.Inactive,
		FreshBlood:   e.FreshBlood,
		HotStreak:    e.HotStreak,
	}, nil
}
