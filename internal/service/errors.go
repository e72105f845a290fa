package service

import (
	"errors"
	"fmt"
	"lol-tracker/internal/api"
	"net/http"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrUpstream       = errors.New("upstream request failed")
)

// classify turns a client error into ErrPlayerNotFound for upstream 404s
// and ErrUpstream for everything else, keeping the cause wrapped.
func classify(op string, err error) error {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w: %w", op, ErrPlayerNotFound, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
}

func statusOf(err error) int {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

func bodyOf(err error) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Body
	}
	return ""
}
