package service

import (
	"context"
	"fmt"
	"lol-tracker/internal/api"
	"lol-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type MatchService struct {
	riot       RiotAPI
	summarizer *MatchSummarizer
	logger     zerolog.Logger
}

func NewMatchService(riot RiotAPI, summarizer *MatchSummarizer, logger zerolog.Logger) *MatchService {
	return &MatchService{riot: riot, summarizer: summarizer, logger: logger}
}

func (s *MatchService) GetMatchIDs(ctx context.Context, routing api.Routing, puuid string, start, count int) ([]string, error) {
	ids, err := s.riot.GetMatchIDsByPUUID(ctx, routing.Regional, puuid, start, count)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("puuid", puuid).
			Int("status", statusOf(err)).
			Str("body", bodyOf(err)).
			Msg("failed to fetch match ids")
		return nil, fmt.Errorf("get match ids: %w: %w", ErrUpstream, err)
	}
	return ids, nil
}

// GetMatchSummaries fetches a page of match ids and summarizes each match
// from the player's point of view.
func (s *MatchService) GetMatchSummaries(ctx context.Context, routing api.Routing, puuid string, start, count int) ([]domain.MatchSummary, error) {
	ids, err := s.GetMatchIDs(ctx, routing, puuid, start, count)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("puuid", puuid).Int("match_count", len(ids)).Msg("summarizing matches")

	summaries, err := s.summarizer.Summarize(ctx, routing.Regional, ids, puuid)
	if err != nil {
		return nil, fmt.Errorf("summarize matches: %w", err)
	}

	s.logger.Info().
		Str("puuid", puuid).
		Int("requested", len(ids)).
		Int("summarized", len(summaries)).
		Msg("matches summarized")
	return summaries, nil
}
