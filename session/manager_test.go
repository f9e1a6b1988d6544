package session_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	errs "github.com/shopfront/admin-console/internal/errors"
	"github.com/shopfront/admin-console/session"
)

type fakeBackend struct {
	mu      sync.Mutex
	result  session.LoginResult
	err     error
	started chan struct{} // closed when Login is entered, when non-nil
	release chan struct{} // Login blocks until closed, when non-nil
	calls   int
}

func (f *fakeBackend) Login(_ context.Context, _, _ string) (session.LoginResult, error) {
	f.mu.Lock()
	f.calls++
	started, release := f.started, f.release
	result, err := f.result, f.err
	f.mu.Unlock()

	if started != nil {
		close(started)
	}
	if release != nil {
		<-release
	}
	return result, err
}

// rejectionError mimics a gateway.APIError carrying a server message.
type rejectionError struct{ msg string }

func (e *rejectionError) Error() string       { return e.msg }
func (e *rejectionError) UserMessage() string { return e.msg }

func managerUnderTest(t *testing.T, backend session.LoginBackend, now time.Time, redirects *atomic.Int64) (*session.Manager, *session.InMemoryStore) {
	t.Helper()
	store := session.NewInMemoryStore()
	validator := session.NewValidator(session.WithNowTime(func() time.Time { return now }))
	manager := session.NewManager(store, validator, backend,
		session.WithLoginRedirect(func() { redirects.Add(1) }),
	)
	return manager, store
}

func TestManager_CheckStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty store resolves unauthenticated", func(t *testing.T) {
		var redirects atomic.Int64
		manager, _ := managerUnderTest(t, &fakeBackend{}, now, &redirects)

		state := manager.CheckStatus(ctx)
		require.False(t, state.Authenticated)
		require.False(t, state.Loading)
		require.Empty(t, state.Err)
	})

	t.Run("expired credential clears the store", func(t *testing.T) {
		var redirects atomic.Int64
		manager, store := managerUnderTest(t, &fakeBackend{}, now, &redirects)

		token := mintToken(t, jwtlib.MapClaims{"exp": now.Add(-10 * time.Second).Unix(), "sub": "7"})
		require.NoError(t, store.Save(ctx, token, session.Identity{ID: 7}))

		state := manager.CheckStatus(ctx)
		require.False(t, state.Authenticated)

		stored, err := store.Load(ctx)
		require.NoError(t, err)
		require.Empty(t, stored)

		identity, err := store.LoadIdentity(ctx)
		require.NoError(t, err)
		require.True(t, identity.IsEmpty())
	})

	t.Run("valid credential resolves authenticated", func(t *testing.T) {
		var redirects atomic.Int64
		manager, store := managerUnderTest(t, &fakeBackend{}, now, &redirects)

		token := mintToken(t, jwtlib.MapClaims{"exp": now.Add(time.Hour).Unix()})
		require.NoError(t, store.Save(ctx, token, session.Identity{ID: 7, Roles: []string{"ROLE_ADMIN"}}))

		state := manager.CheckStatus(ctx)
		require.True(t, state.Authenticated)
		require.Equal(t, int64(7), state.Identity.ID)
	})

	t.Run("lost identity slot is rebuilt from claims", func(t *testing.T) {
		var redirects atomic.Int64
		manager, store := managerUnderTest(t, &fakeBackend{}, now, &redirects)

		token := mintToken(t, jwtlib.MapClaims{
			"exp":   now.Add(time.Hour).Unix(),
			"email": "admin@example.com",
			"roles": []string{"ROLE_ADMIN"},
		})
		require.NoError(t, store.Save(ctx, token, session.Identity{}))

		state := manager.CheckStatus(ctx)
		require.True(t, state.Authenticated)
		require.Equal(t, "admin@example.com", state.Identity.Email)
		require.Equal(t, []string{"ROLE_ADMIN"}, state.Identity.Roles)
	})
}

func TestManager_Login(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	creds := session.Credentials{Email: "a@b.com", Password: "x"}

	t.Run("success persists token and merged identity", func(t *testing.T) {
		token := mintToken(t, jwtlib.MapClaims{
			"exp":   now.Add(time.Hour).Unix(),
			"roles": []string{"ROLE_ADMIN"},
		})
		backend := &fakeBackend{result: session.LoginResult{ID: 1, Token: token}}

		var redirects atomic.Int64
		manager, store := managerUnderTest(t, backend, now, &redirects)

		identity, err := manager.Login(ctx, creds)
		require.NoError(t, err)
		require.Equal(t, int64(1), identity.ID)
		require.Equal(t, []string{"ROLE_ADMIN"}, identity.Roles)
		require.Equal(t, now.Add(time.Hour).Unix(), identity.Exp)

		stored, err := store.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, token, stored)

		state := manager.CheckStatus(ctx)
		require.True(t, state.Authenticated)
		require.Equal(t, []string{"ROLE_ADMIN"}, state.Identity.Roles)
	})

	t.Run("rejection surfaces the server message", func(t *testing.T) {
		backend := &fakeBackend{err: &rejectionError{msg: "Invalid email or password"}}

		var redirects atomic.Int64
		manager, store := managerUnderTest(t, backend, now, &redirects)

		_, err := manager.Login(ctx, creds)
		require.Error(t, err)

		state := manager.State()
		require.False(t, state.Authenticated)
		require.Equal(t, "Invalid email or password", state.Err)

		// No partial identity is stored.
		identity, loadErr := store.LoadIdentity(ctx)
		require.NoError(t, loadErr)
		require.True(t, identity.IsEmpty())
	})

	t.Run("network failure falls back to the generic message", func(t *testing.T) {
		backend := &fakeBackend{err: errors.New("connection refused")}

		var redirects atomic.Int64
		manager, _ := managerUnderTest(t, backend, now, &redirects)

		_, err := manager.Login(ctx, creds)
		require.Error(t, err)
		require.Equal(t, "Login failed", manager.State().Err)
	})

	t.Run("login outrun by logout is discarded", func(t *testing.T) {
		token := mintToken(t, jwtlib.MapClaims{"exp": now.Add(time.Hour).Unix()})
		backend := &fakeBackend{
			result:  session.LoginResult{ID: 1, Token: token},
			started: make(chan struct{}),
			release: make(chan struct{}),
		}

		var redirects atomic.Int64
		manager, store := managerUnderTest(t, backend, now, &redirects)

		errCh := make(chan error, 1)
		go func() {
			_, err := manager.Login(ctx, creds)
			errCh <- err
		}()

		<-backend.started
		manager.Logout(ctx, false)
		close(backend.release)

		err := <-errCh
		require.ErrorIs(t, err, errs.ErrSessionSuperseded)

		require.False(t, manager.State().Authenticated)
		stored, loadErr := store.Load(ctx)
		require.NoError(t, loadErr)
		require.Empty(t, stored)
	})
}

func TestManager_Logout(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("clears store and signals navigation", func(t *testing.T) {
		token := mintToken(t, jwtlib.MapClaims{"exp": now.Add(time.Hour).Unix()})
		backend := &fakeBackend{result: session.LoginResult{ID: 1, Token: token}}

		var redirects atomic.Int64
		manager, store := managerUnderTest(t, backend, now, &redirects)

		_, err := manager.Login(ctx, session.Credentials{Email: "a@b.com", Password: "x"})
		require.NoError(t, err)

		manager.Logout(ctx, true)
		require.EqualValues(t, 1, redirects.Load())

		stored, loadErr := store.Load(ctx)
		require.NoError(t, loadErr)
		require.Empty(t, stored)

		identity, loadErr := store.LoadIdentity(ctx)
		require.NoError(t, loadErr)
		require.True(t, identity.IsEmpty())

		require.False(t, manager.CheckStatus(ctx).Authenticated)
	})

	t.Run("logout when already logged out is a safe no-op", func(t *testing.T) {
		var redirects atomic.Int64
		manager, _ := managerUnderTest(t, &fakeBackend{}, now, &redirects)

		manager.Logout(ctx, true)
		manager.Logout(ctx, true)
		// Explicit logout always navigates.
		require.EqualValues(t, 2, redirects.Load())
	})
}

func TestManager_Invalidate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("concurrent invalidations produce one redirect signal", func(t *testing.T) {
		token := mintToken(t, jwtlib.MapClaims{"exp": now.Add(time.Hour).Unix()})
		backend := &fakeBackend{result: session.LoginResult{ID: 1, Token: token}}

		var redirects atomic.Int64
		manager, store := managerUnderTest(t, backend, now, &redirects)

		_, err := manager.Login(ctx, session.Credentials{Email: "a@b.com", Password: "x"})
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				manager.Invalidate(ctx)
			}()
		}
		wg.Wait()

		require.EqualValues(t, 1, redirects.Load())
		require.False(t, manager.State().Authenticated)

		stored, loadErr := store.Load(ctx)
		require.NoError(t, loadErr)
		require.Empty(t, stored)
	})

	t.Run("invalidating a logged-out session stays silent", func(t *testing.T) {
		var redirects atomic.Int64
		manager, _ := managerUnderTest(t, &fakeBackend{}, now, &redirects)

		manager.Invalidate(ctx)
		require.EqualValues(t, 0, redirects.Load())
	})

	t.Run("teardown during a rejected login keeps the error message", func(t *testing.T) {
		backend := &fakeBackend{
			err:     &rejectionError{msg: "Bad credentials"},
			started: make(chan struct{}),
			release: make(chan struct{}),
		}

		var redirects atomic.Int64
		manager, _ := managerUnderTest(t, backend, now, &redirects)

		errCh := make(chan error, 1)
		go func() {
			_, err := manager.Login(ctx, session.Credentials{Email: "a@b.com", Password: "x"})
			errCh <- err
		}()

		// The backend's 401 would invoke this teardown before the login
		// call returns its error.
		<-backend.started
		manager.Invalidate(ctx)
		close(backend.release)

		require.Error(t, <-errCh)
		require.Equal(t, "Bad credentials", manager.State().Err)
		require.EqualValues(t, 0, redirects.Load())
	})
}
