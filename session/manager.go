package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	errs "github.com/shopfront/admin-console/internal/errors"
)

// LoginBackend performs the credential exchange with the e-commerce
// backend. Implemented by gateway.Client.
type LoginBackend interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
}

// userMessenger is implemented by backend errors that carry a
// server-provided, user-facing message.
type userMessenger interface {
	UserMessage() string
}

const genericLoginError = "Login failed"

// Manager is the sole owner of session state transitions. CheckStatus,
// Login and Logout are serialized per session; a login whose backend call
// was outrun by a logout discards its result instead of committing it.
type Manager struct {
	store           Store
	validator       *Validator
	backend         LoginBackend
	redirectToLogin func()
	log             zerolog.Logger

	mu    sync.Mutex
	gen   uint64
	state State
}

// ManagerOption modifies a Manager instance.
type ManagerOption func(*Manager)

// WithLoginRedirect sets the navigation signal fired when a session is
// torn down with redirect semantics.
func WithLoginRedirect(fn func()) ManagerOption {
	return func(m *Manager) {
		m.redirectToLogin = fn
	}
}

// WithLogger sets the manager's logger.
func WithLogger(log zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates a Manager. The initial state is loading and
// unauthenticated until the first CheckStatus resolves it.
func NewManager(store Store, validator *Validator, backend LoginBackend, options ...ManagerOption) *Manager {
	m := &Manager{
		store:     store,
		validator: validator,
		backend:   backend,
		log:       zerolog.Nop(),
		state:     State{Loading: true},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// State returns a snapshot of the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CheckStatus resolves the session state from the store: a credential that
// is missing, undecodable or expired clears the store and leaves the
// session unauthenticated. Internal failures degrade to unauthenticated
// with a recorded error; CheckStatus never returns one.
func (m *Manager) CheckStatus(ctx context.Context) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = State{Loading: true}

	credential, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("session store unavailable")
		m.state = State{Err: err.Error()}
		return m.state
	}

	if !m.validator.IsValid(credential) {
		if credential != "" {
			m.log.Debug().Msg("clearing invalid credential")
		}
		_ = m.store.Clear(ctx)
		m.state = State{}
		return m.state
	}

	identity, err := m.store.LoadIdentity(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("session store unavailable")
		m.state = State{Err: err.Error()}
		return m.state
	}

	if identity.IsEmpty() {
		// Identity slot lost or never written: rebuild it from the claims.
		if claims, decodeErr := m.validator.Decode(credential); decodeErr == nil {
			identity = identityFromClaims(Identity{}, claims)
		}
	}

	if identity.IsEmpty() {
		_ = m.store.Clear(ctx)
		m.state = State{}
		return m.state
	}

	m.state = State{Authenticated: true, Identity: identity}
	return m.state
}

// Login exchanges the credentials with the backend, persists the issued
// token plus the merged identity, and moves the session to authenticated.
// On failure the session stays unauthenticated, a user-facing message is
// recorded, and the original error is returned for the caller to react to.
func (m *Manager) Login(ctx context.Context, creds Credentials) (Identity, error) {
	m.mu.Lock()
	gen := m.gen
	m.state = State{Loading: true}
	m.mu.Unlock()

	result, err := m.backend.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		m.commit(gen, State{Err: loginErrorMessage(err)})
		return Identity{}, errors.Wrap(err, "[Manager.Login] backend login")
	}

	identity := Identity{ID: result.ID}
	if claims, decodeErr := m.validator.Decode(result.Token); decodeErr == nil {
		identity = identityFromClaims(identity, claims)
	} else {
		m.log.Warn().Err(decodeErr).Msg("issued token did not decode")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		// A logout won the race; this result is no longer authoritative.
		m.log.Debug().Msg("discarding login superseded by logout")
		return Identity{}, errs.ErrSessionSuperseded
	}

	if err := m.store.Save(ctx, result.Token, identity); err != nil {
		m.state = State{Err: genericLoginError}
		return Identity{}, errors.Wrap(err, "[Manager.Login] store save")
	}

	m.state = State{Authenticated: true, Identity: identity}
	return identity, nil
}

// Logout clears the credential and identity and drops the session to
// unauthenticated. Calling it when already logged out is a safe no-op
// besides the navigation signal.
func (m *Manager) Logout(ctx context.Context, redirect bool) {
	m.mu.Lock()
	m.gen++
	_ = m.store.Clear(ctx)
	m.state = State{}
	m.mu.Unlock()

	if redirect && m.redirectToLogin != nil {
		m.redirectToLogin()
	}
}

// Invalidate is the teardown path for authorization failures reported by
// the request gateway. The clear is idempotent, and the navigation signal
// fires only on the authenticated-to-unauthenticated transition so that
// concurrent failures produce a single redirect.
func (m *Manager) Invalidate(ctx context.Context) {
	m.mu.Lock()
	if !m.state.Authenticated {
		// Nothing established to tear down. A 401 on the login exchange
		// itself lands here and must not outrun the login's own error
		// handling.
		m.mu.Unlock()
		return
	}
	m.gen++
	_ = m.store.Clear(ctx)
	m.state = State{}
	m.mu.Unlock()

	if m.redirectToLogin != nil {
		m.redirectToLogin()
	}
}

// commit replaces the session state unless a logout has bumped the
// generation since the operation started.
func (m *Manager) commit(gen uint64, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return
	}
	m.state = state
}

func identityFromClaims(identity Identity, claims Claims) Identity {
	identity.Email = claims.Email
	identity.Roles = claims.Roles
	identity.Exp = claims.ExpiresAt
	return identity
}

func loginErrorMessage(err error) string {
	var messenger userMessenger
	if errors.As(err, &messenger) && messenger.UserMessage() != "" {
		return messenger.UserMessage()
	}
	return genericLoginError
}
