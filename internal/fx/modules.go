package fx

import (
	"lol-tracker/internal/api"
	"lol-tracker/internal/config"
	"lol-tracker/internal/logger"
	"lol-tracker/internal/server"
	"lol-tracker/internal/service"

	"go.uber.org/fx"
)

func ProvideRiotAPI(c *api.RiotClient) service.RiotAPI {
	return c
}

func ProvideMatchFetcher(c *api.RiotClient) service.MatchFetcher {
	return c
}

func ProvidePlayerResolver(s *service.PlayerService) server.PlayerResolver {
	return s
}

func ProvideMatchHistory(s *service.MatchService) server.MatchHistory {
	return s
}

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Provide(logger.New),
	// api client
	fx.Provide(api.NewRiotClient),
	fx.Provide(ProvideRiotAPI),
	fx.Provide(ProvideMatchFetcher),
	// svc
	fx.Provide(service.NewMatchSummarizer),
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewMatchService),
	fx.Provide(ProvidePlayerResolver),
	fx.Provide(ProvideMatchHistory),
	// server
	fx.Provide(server.NewUserServer),
)
