package config

import (
	"time"
)

// SessionConfig describes console session persistence.
type SessionConfig interface {
	GetRedisAddr() string
	GetSessionTTL() time.Duration
	GetSessionCookieName() string
}

type Session struct{}

var _ SessionConfig = Session{}

// GetRedisAddr returns the Redis address for session storage.
// An empty value selects the in-memory store.
func (Session) GetRedisAddr() string {
	return GetEnv("REDIS_ADDR", "")
}

func (Session) GetSessionTTL() time.Duration {
	d, err := time.ParseDuration(GetEnv("SESSION_TTL", "12h"))
	if err != nil {
		return 12 * time.Hour
	}
	return d
}

func (Session) GetSessionCookieName() string {
	return GetEnv("SESSION_COOKIE", "console_session")
}
