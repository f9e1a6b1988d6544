package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopfront/admin-console/gateway"
	"github.com/shopfront/admin-console/session"
)

// Entry pairs one console session's manager with the backend client bound
// to its credential.
type Entry struct {
	Manager *session.Manager
	Gateway *gateway.Client
}

// Registry maps session cookies to Entry values, lazily creating them on
// first sight of a cookie. The shared credential/identity pair lives in the
// session store; the registry itself only wires components together.
type Registry struct {
	newStore   session.StoreFactory
	validator  *session.Validator
	baseURL    string
	httpClient *http.Client
	cookieName string
	ttl        time.Duration
	log        zerolog.Logger

	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates a Registry. newStore decides where session slots
// live (in-memory or Redis).
func NewRegistry(newStore session.StoreFactory, validator *session.Validator, baseURL string, httpClient *http.Client, cookieName string, ttl time.Duration, log zerolog.Logger) *Registry {
	return &Registry{
		newStore:   newStore,
		validator:  validator,
		baseURL:    baseURL,
		httpClient: httpClient,
		cookieName: cookieName,
		ttl:        ttl,
		log:        log,
		entries:    make(map[string]*Entry),
	}
}

// Resolve returns the Entry for the request's session cookie, issuing a
// new cookie when the request carries none.
func (reg *Registry) Resolve(w http.ResponseWriter, r *http.Request) *Entry {
	if cookie, err := r.Cookie(reg.cookieName); err == nil && cookie.Value != "" {
		if entry := reg.lookup(cookie.Value); entry != nil {
			return entry
		}
		// Unknown session ID (e.g. after a restart): rebind it so that a
		// Redis-backed store can still find the persisted credential.
		return reg.create(cookie.Value)
	}

	sid := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     reg.cookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(reg.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return reg.create(sid)
}

func (reg *Registry) lookup(sid string) *Entry {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.entries[sid]
}

func (reg *Registry) create(sid string) *Entry {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if entry, ok := reg.entries[sid]; ok {
		return entry
	}

	store := reg.newStore(sid)
	log := reg.log.With().Str("session", sid).Logger()

	// The manager and gateway reference each other: the gateway reads the
	// credential the manager persists, and its 401 path tears the
	// manager's session down. Closures break the cycle.
	var manager *session.Manager

	gw := gateway.NewClient(reg.baseURL,
		gateway.WithHTTPClient(reg.httpClient),
		gateway.WithLogger(log),
		gateway.WithCredentialSource(func(ctx context.Context) string {
			credential, _ := store.Load(ctx)
			return credential
		}),
		gateway.WithUnauthorizedHandler(func(ctx context.Context) {
			manager.Invalidate(ctx)
		}),
	)

	manager = session.NewManager(store, reg.validator, gw,
		session.WithLogger(log),
		session.WithLoginRedirect(func() {
			loginRedirectsTotal.Inc()
			log.Debug().Msg("session torn down, next render redirects to login")
		}),
	)

	entry := &Entry{Manager: manager, Gateway: gw}
	reg.entries[sid] = entry
	return entry
}
