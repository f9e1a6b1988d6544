package session

import "context"

// Store persists the credential / identity pair for one console session.
// It is pure persistence: no network calls and no validation logic live
// here. Two string-keyed slots back it - one for the raw token, one for the
// JSON-serialized identity.
//
// Load and LoadIdentity return zero values, not errors, when a slot is
// absent or holds malformed data. Errors are reserved for infrastructure
// failures (e.g. an unreachable Redis).
type Store interface {
	// Save persists both values, overwriting any prior pair.
	Save(ctx context.Context, credential string, identity Identity) error

	// Load returns the stored credential, or "" when absent.
	Load(ctx context.Context) (string, error)

	// LoadIdentity returns the stored identity, or a zero Identity when
	// absent or undecodable.
	LoadIdentity(ctx context.Context) (Identity, error)

	// Clear removes both slots. Clearing an already-empty store is a no-op.
	Clear(ctx context.Context) error
}

// StoreFactory builds the store slot pair for a given console session ID.
type StoreFactory func(sessionID string) Store
