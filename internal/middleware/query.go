package middleware

import (
	"context"
	"net/http"
	"strings"
)

const playerQueryKey contextKey = "player_query"

// PlayerQuery is the player lookup every /user endpoint works from.
type PlayerQuery struct {
	Region string
	Name   string
	Tag    string
}

// Query reads region, name and tag from the query string once and stores
// them in the request context.
func Query(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		pq := PlayerQuery{
			Region: strings.TrimSpace(q.Get("region")),
			Name:   strings.TrimSpace(q.Get("name")),
			Tag:    strings.TrimSpace(q.Get("tag")),
		}
		ctx := context.WithValue(r.Context(), playerQueryKey, pq)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func QueryFrom(ctx context.Context) PlayerQuery {
	if pq, ok := ctx.Value(playerQueryKey).(PlayerQuery); ok {
		return pq
	}
	return PlayerQuery{}
}
