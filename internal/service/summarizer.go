package service

import (
	"context"
	"lol-tracker/internal/api"
	"lol-tracker/internal/config"
	"lol-tracker/internal/domain"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type MatchFetcher interface {
	GetMatch(ctx context.Context, regional, matchID string) (*api.MatchResponse, error)
}

type rateLimitReporter interface {
	GetRateLimitInfo() api.RateLimitInfo
}

// MatchSummarizer fetches match details in fixed size chunks. Matches in a
// chunk are fetched concurrently, chunks run one after another with a fixed
// pause in between to stay under the upstream rate limit.
type MatchSummarizer struct {
	fetcher   MatchFetcher
	chunkSize int
	paceDelay time.Duration
	pause     func(ctx context.Context, d time.Duration) error
	logger    zerolog.Logger
}

func NewMatchSummarizer(fetcher MatchFetcher, cfg *config.Config, logger zerolog.Logger) *MatchSummarizer {
	return &MatchSummarizer{
		fetcher:   fetcher,
		chunkSize: cfg.MatchChunkSize,
		paceDelay: cfg.MatchPaceDelay,
		pause:     sleepContext,
		logger:    logger,
	}
}

// Summarize returns one summary per match that could be fetched and
// contains puuid, in the order of matchIDs. It only fails when ctx ends
// while waiting between chunks.
func (s *MatchSummarizer) Summarize(ctx context.Context, regional string, matchIDs []string, puuid string) ([]domain.MatchSummary, error) {
	summaries := make([]domain.MatchSummary, 0, len(matchIDs))
	if len(matchIDs) == 0 {
		return summaries, nil
	}

	chunk := 0
	for ids := range slices.Chunk(matchIDs, s.chunkSize) {
		if chunk > 0 {
			if err := s.pause(ctx, s.paceDelay); err != nil {
				s.logger.Warn().Err(err).Int("chunk", chunk).Msg("match summary interrupted")
				return nil, err
			}
		}

		summaries = append(summaries, s.summarizeChunk(ctx, regional, ids, puuid)...)

		event := s.logger.Debug().Int("chunk", chunk).Int("size", len(ids))
		if r, ok := s.fetcher.(rateLimitReporter); ok {
			info := r.GetRateLimitInfo()
			event = event.Str("app_rate_count", info.AppCount).Str("method_rate_count", info.MethodCount)
		}
		event.Msg("match chunk processed")
		chunk++
	}

	return summaries, nil
}

func (s *MatchSummarizer) summarizeChunk(ctx context.Context, regional string, ids []string, puuid string) []domain.MatchSummary {
	results := make([]*domain.MatchSummary, len(ids))

	// every fetch reports nil so one failure never cancels its siblings
	var g errgroup.Group
	for i, matchID := range ids {
		g.Go(func() error {
			results[i] = s.summarizeMatch(ctx, regional, matchID, puuid)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]domain.MatchSummary, 0, len(ids))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

func (s *MatchSummarizer) summarizeMatch(ctx context.Context, regional, matchID, puuid string) *domain.MatchSummary {
	match, err := s.fetcher.GetMatch(ctx, regional, matchID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("match_id", matchID).
			Int("status", statusOf(err)).
			Str("body", bodyOf(err)).
			Msg("failed to fetch match")
		return nil
	}

	target := match.FindParticipant(puuid)
	if target == nil {
		s.logger.Error().Str("puuid", puuid).Str("match_id", matchID).Msg("puuid not found in match")
		return nil
	}

	summary := buildSummary(matchID, match, target)
	return &summary
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
