package config

import (
	"time"
)

// BackendConfig describes how to reach the e-commerce REST backend.
type BackendConfig interface {
	GetBackendBaseURL() string
	GetBackendTimeout() time.Duration
}

type Backend struct{}

var _ BackendConfig = Backend{}

// GetBackendBaseURL returns the base URL of the e-commerce API,
// e.g. "http://localhost:9191/ecommdb/api/v1"
func (Backend) GetBackendBaseURL() string {
	return GetEnv("BACKEND_BASE_URL", "http://localhost:9191/ecommdb/api/v1")
}

func (Backend) GetBackendTimeout() time.Duration {
	d, err := time.ParseDuration(GetEnv("BACKEND_TIMEOUT", "15s"))
	if err != nil {
		return 15 * time.Second
	}
	return d
}
