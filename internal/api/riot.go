package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lol-tracker/internal/config"
	"lol-tracker/internal/constants"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/valyala/fasthttp"
)

const riotTokenHeader = "X-Riot-Token"

type RiotClient struct {
	apiKey        string
	baseURLFormat string
	client        *fasthttp.Client
	rateLimitMu   sync.RWMutex
	rateLimit     RateLimitInfo
}

// RateLimitInfo is the last rate limit state reported by upstream.
// Limits and counts use Riot's "requests:seconds" comma separated format.
type RateLimitInfo struct {
	AppLimit    string    `json:"app_limit"`
	AppCount    string    `json:"app_count"`
	MethodLimit string    `json:"method_limit"`
	MethodCount string    `json:"method_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StatusError is returned for any non-2xx upstream response.
type StatusError struct {
	StatusCode int
	Body       string
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d", e.StatusCode)
}

func NewRiotClient(cfg *config.Config) *RiotClient {
	return &RiotClient{
		apiKey:        cfg.RiotAPIKey,
		baseURLFormat: cfg.RiotBaseURLFormat,
		client: &fasthttp.Client{
			MaxConnsPerHost:        constants.UpstreamMaxConnsPerHost,
			ReadTimeout:            constants.ExternalAPITimeout,
			WriteTimeout:           constants.ExternalAPITimeout,
			MaxIdleConnDuration:    constants.UpstreamIdleConnTimeout,
			DisablePathNormalizing: true,
		},
	}
}

func (c *RiotClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *RiotClient) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if v := string(resp.Header.Peek("X-App-Rate-Limit")); v != "" {
		c.rateLimit.AppLimit = v
	}
	if v := string(resp.Header.Peek("X-App-Rate-Limit-Count")); v != "" {
		c.rateLimit.AppCount = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit")); v != "" {
		c.rateLimit.MethodLimit = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit-Count")); v != "" {
		c.rateLimit.MethodCount = v
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *RiotClient) host(routing string) string {
	return fmt.Sprintf(c.baseURLFormat, routing)
}

func (c *RiotClient) GetAccountByRiotID(ctx context.Context, cluster, gameName, tagLine string) (*AccountResponse, error) {
	endpoint := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.host(cluster), url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[AccountResponse](ctx, c, endpoint)
}

func (c *RiotClient) GetSummonerByPUUID(ctx context.Context, platform, puuid string) (*SummonerResponse, error) {
	endpoint := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", c.host(platform), url.PathEscape(puuid))
	return doRequest[SummonerResponse](ctx, c, endpoint)
}

func (c *RiotClient) GetLeagueEntriesByPUUID(ctx context.Context, platform, puuid string) ([]LeagueEntry, error) {
	endpoint := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", c.host(platform), url.PathEscape(puuid))
	entries, err := doRequest[[]LeagueEntry](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func (c *RiotClient) GetMatchIDsByPUUID(ctx context.Context, regional, puuid string, start, count int) ([]string, error) {
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d",
		c.host(regional), url.PathEscape(puuid), start, count)
	ids, err := doRequest[[]string](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

func (c *RiotClient) GetMatch(ctx context.Context, regional, matchID string) (*MatchResponse, error) {
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.host(regional), url.PathEscape(matchID))
	return doRequest[MatchResponse](ctx, c, endpoint)
}

func doRequest[T any](ctx context.Context, client *RiotClient, endpoint string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(endpoint)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(riotTokenHeader, client.apiKey)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = client.client.DoDeadline(req, resp, deadline)
	} else {
		err = client.client.DoTimeout(req, resp, constants.ExternalAPITimeout)
	}
	if errors.Is(err, fasthttp.ErrTimeout) {
		return nil, fmt.Errorf("request failed: %w: %w", context.DeadlineExceeded, err)
	}
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	client.updateRateLimit(resp)

	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return nil, &StatusError{
			StatusCode: code,
			Body:       string(resp.Body()),
			RetryAfter: parseRetryAfter(resp),
		}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

func parseRetryAfter(resp *fasthttp.Response) time.Duration {
	v := string(resp.Header.Peek("Retry-After"))
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
