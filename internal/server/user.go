package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lol-tracker/internal/api"
	"lol-tracker/internal/config"
	"lol-tracker/internal/constants"
	"lol-tracker/internal/domain"
	"lol-tracker/internal/middleware"
	"lol-tracker/internal/service"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

var errBadRequest = errors.New("bad request")

type PlayerResolver interface {
	ResolveIdentity(ctx context.Context, routing api.Routing, gameName, tagLine string) (*domain.PlayerIdentity, error)
	GetRank(ctx context.Context, routing api.Routing, puuid string) (*domain.RankEntry, error)
}

type MatchHistory interface {
	GetMatchSummaries(ctx context.Context, routing api.Routing, puuid string, start, count int) ([]domain.MatchSummary, error)
}

type UserServer struct {
	players       PlayerResolver
	matches       MatchHistory
	defaultRegion string
}

func NewUserServer(players PlayerResolver, matches MatchHistory, cfg *config.Config) *UserServer {
	return &UserServer{players: players, matches: matches, defaultRegion: cfg.DefaultRegion}
}

// Routes serves the /user endpoints. Every route reads its player from the
// region, name and tag query parameters.
func (s *UserServer) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", s.GetIdentity)
	mux.HandleFunc("GET /user/{$}", s.GetIdentity)
	mux.HandleFunc("GET /user/rank", s.GetRank)
	mux.HandleFunc("GET /user/matches", s.GetMatches)
	return middleware.Query(mux)
}

func (s *UserServer) GetIdentity(w http.ResponseWriter, r *http.Request) {
	_, identity, err := s.resolve(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, identity)
}

func (s *UserServer) GetRank(w http.ResponseWriter, r *http.Request) {
	routing, identity, err := s.resolve(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rank, err := s.players.GetRank(r.Context(), routing, identity.Puuid)
	if err != nil {
		writeError(w, r, err)
		return
	}
	// an unranked player is encoded as null
	writeJSON(w, r, rank)
}

func (s *UserServer) GetMatches(w http.ResponseWriter, r *http.Request) {
	start, count, err := pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	routing, identity, err := s.resolve(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	summaries, err := s.matches.GetMatchSummaries(r.Context(), routing, identity.Puuid, start, count)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, summaries)
}

func (s *UserServer) resolve(r *http.Request) (api.Routing, *domain.PlayerIdentity, error) {
	q := middleware.QueryFrom(r.Context())
	if q.Name == "" || q.Tag == "" {
		return api.Routing{}, nil, fmt.Errorf("%w: name and tag are required", errBadRequest)
	}

	routing, err := api.ResolveRouting(q.Region, s.defaultRegion)
	if err != nil {
		return api.Routing{}, nil, err
	}

	identity, err := s.players.ResolveIdentity(r.Context(), routing, q.Name, q.Tag)
	if err != nil {
		return api.Routing{}, nil, err
	}
	return routing, identity, nil
}

func pageParams(r *http.Request) (int, int, error) {
	start, count := constants.DefaultMatchStart, constants.DefaultMatchCount
	q := r.URL.Query()

	if v := q.Get("start"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("%w: start must be a non-negative integer", errBadRequest)
		}
		start = n
	}
	if v := q.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > constants.MaxMatchCount {
			return 0, 0, fmt.Errorf("%w: count must be between 1 and %d", errBadRequest, constants.MaxMatchCount)
		}
		count = n
	}
	return start, count, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, api.ErrUnknownRegion):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, service.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	log := zerolog.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request rejected")
	}

	msg := err.Error()
	switch status {
	case http.StatusNotFound:
		msg = service.ErrPlayerNotFound.Error()
	case http.StatusBadGateway:
		msg = service.ErrUpstream.Error()
	case http.StatusGatewayTimeout:
		msg = "upstream timed out"
	case http.StatusInternalServerError:
		msg = http.StatusText(status)
	}
	writeStatusJSON(w, r, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	writeStatusJSON(w, r, http.StatusOK, v)
}

func writeStatusJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("failed to write response")
	}
}
