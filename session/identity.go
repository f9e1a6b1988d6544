package session

// Credentials are the login form inputs forwarded verbatim to the backend.
// The console never stores or hashes them.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Claims is the decoded payload of a bearer credential. Claims are derived
// data: they are recomputed by decoding and never persisted on their own.
type Claims struct {
	Subject   string
	Email     string
	Roles     []string
	IssuedAt  int64 // unix seconds
	ExpiresAt int64 // unix seconds
}

// Identity is the console-visible user record, synthesized from the login
// response merged with whatever claims the credential decodes to.
type Identity struct {
	ID    int64    `json:"id"`
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	Exp   int64    `json:"exp,omitempty"`
}

// IsEmpty reports whether the identity carries no usable user record.
func (i Identity) IsEmpty() bool {
	return i.ID == 0 && i.Email == "" && len(i.Roles) == 0
}

// HasAnyRole reports whether the identity holds at least one of the given
// roles. An empty required set always passes.
func (i Identity) HasAnyRole(required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, want := range required {
		for _, have := range i.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// State is the authoritative session tuple. Every transition replaces the
// whole value; callers never observe a partially updated state.
type State struct {
	Authenticated bool
	Identity      Identity
	Loading       bool
	Err           string
}

// LoginResult is the backend's answer to a successful credential exchange.
type LoginResult struct {
	ID    int64
	Token string
}
