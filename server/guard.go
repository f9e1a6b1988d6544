package server

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopfront/admin-console/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyIdentity stores the authenticated identity
	ContextKeyIdentity ContextKey = "identity"
	// ContextKeyEntry stores the session's registry entry
	ContextKeyEntry ContextKey = "entry"
)

// GuardDecision is the route guard's verdict for one navigation.
type GuardDecision int

const (
	// GuardLoading means the session state is still being resolved; render
	// a pending indicator, no navigation decision yet.
	GuardLoading GuardDecision = iota
	// GuardAllowed renders the protected content.
	GuardAllowed
	// GuardDenyUnauthenticated redirects to login, preserving the
	// requested location.
	GuardDenyUnauthenticated
	// GuardDenyRole redirects to the unauthorized page.
	GuardDenyRole
)

// EvaluateGuard is the pure access decision for a protected view. An empty
// required-roles set means no role check.
func EvaluateGuard(state session.State, requiredRoles []string) GuardDecision {
	if state.Loading {
		return GuardLoading
	}
	if !state.Authenticated {
		return GuardDenyUnauthenticated
	}
	if !state.Identity.HasAnyRole(requiredRoles) {
		return GuardDenyRole
	}
	return GuardAllowed
}

// RequireSession gates a console route. The guard re-evaluates on every
// request; it holds no state beyond what the session manager exposes.
func (s *Server) RequireSession(requiredRoles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			entry := s.registry.Resolve(w, r)
			state := entry.Manager.CheckStatus(r.Context())

			switch EvaluateGuard(state, requiredRoles) {
			case GuardLoading:
				w.Header().Set("Retry-After", "1")
				http.Error(w, "session check in progress", http.StatusServiceUnavailable)
				return

			case GuardDenyUnauthenticated:
				target := RouteLogin + "?" + returnToParam + "=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, target, http.StatusFound)
				return

			case GuardDenyRole:
				http.Redirect(w, r, RouteUnauthorized, http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, state.Identity)
			ctx = context.WithValue(ctx, ContextKeyEntry, entry)
			next(w, r.WithContext(ctx))
		}
	}
}

// entryFromContext returns the session entry injected by RequireSession.
func entryFromContext(ctx context.Context) *Entry {
	entry, _ := ctx.Value(ContextKeyEntry).(*Entry)
	return entry
}

// IdentityFromContext returns the authenticated identity injected by
// RequireSession, for handlers that render user details.
func IdentityFromContext(ctx context.Context) session.Identity {
	identity, _ := ctx.Value(ContextKeyIdentity).(session.Identity)
	return identity
}
