package constants

import "time"

const (
	MatchChunkSize = 5
	MatchPaceDelay = 1500 * time.Millisecond
)

const (
	DefaultMatchStart = 0
	DefaultMatchCount = 20
	MaxMatchCount     = 100
)

const (
	ExternalAPITimeout = 10 * time.Second
	ShutdownTimeout    = 5 * time.Second
)

const (
	UpstreamMaxConnsPerHost = 100
	UpstreamIdleConnTimeout = 1 * time.Minute
)
