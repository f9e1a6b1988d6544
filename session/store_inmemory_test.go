package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopfront/admin-console/session"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store loads zero values", func(t *testing.T) {
		store := session.NewInMemoryStore()

		token, err := store.Load(ctx)
		require.NoError(t, err)
		require.Empty(t, token)

		identity, err := store.LoadIdentity(ctx)
		require.NoError(t, err)
		require.True(t, identity.IsEmpty())
	})

	t.Run("save overwrites prior pair", func(t *testing.T) {
		store := session.NewInMemoryStore()
		require.NoError(t, store.Save(ctx, "first", session.Identity{ID: 1}))
		require.NoError(t, store.Save(ctx, "second", session.Identity{ID: 2, Roles: []string{"ROLE_ADMIN"}}))

		token, err := store.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, "second", token)

		identity, err := store.LoadIdentity(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(2), identity.ID)
		require.Equal(t, []string{"ROLE_ADMIN"}, identity.Roles)
	})

	t.Run("clear removes both slots and is idempotent", func(t *testing.T) {
		store := session.NewInMemoryStore()
		require.NoError(t, store.Save(ctx, "token", session.Identity{ID: 7}))

		require.NoError(t, store.Clear(ctx))
		require.NoError(t, store.Clear(ctx)) // clearing an empty store is a no-op

		token, err := store.Load(ctx)
		require.NoError(t, err)
		require.Empty(t, token)

		identity, err := store.LoadIdentity(ctx)
		require.NoError(t, err)
		require.True(t, identity.IsEmpty())
	})
}

func TestIdentity_HasAnyRole(t *testing.T) {
	admin := session.Identity{ID: 1, Roles: []string{"ROLE_ADMIN"}}
	user := session.Identity{ID: 2, Roles: []string{"ROLE_USER"}}

	require.True(t, admin.HasAnyRole([]string{"ROLE_ADMIN"}))
	require.False(t, user.HasAnyRole([]string{"ROLE_ADMIN"}))
	require.True(t, user.HasAnyRole(nil)) // empty required set means no role check
	require.True(t, user.HasAnyRole([]string{"ROLE_ADMIN", "ROLE_USER"}))
	require.False(t, session.Identity{ID: 3}.HasAnyRole([]string{"ROLE_USER"}))
}
