package session

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	errs "github.com/shopfront/admin-console/internal/errors"
)

// Validator decides whether a stored credential is currently valid. It is
// deliberately pure: detecting an invalid credential never mutates storage.
// Clearing is the Manager's job, which keeps a single writer of session
// state.
//
// The backend signs tokens with a key the console does not hold, so claims
// are read from an unverified parse; the signature is the backend's
// boundary to enforce, expiry is ours.
type Validator struct {
	nowTime func() time.Time
}

// ValidatorOption modifies a Validator instance.
type ValidatorOption func(*Validator)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ValidatorOption {
	return func(v *Validator) {
		v.nowTime = nowFunc
	}
}

// NewValidator creates a Validator using the real clock unless overridden.
func NewValidator(options ...ValidatorOption) *Validator {
	v := &Validator{nowTime: time.Now}
	for _, opt := range options {
		opt(v)
	}
	return v
}

// IsValid fails closed: false for a missing, undecodable, or expired
// credential. It never panics or returns an error outward.
func (v *Validator) IsValid(credential string) bool {
	claims, err := v.Decode(credential)
	if err != nil {
		return false
	}
	if claims.ExpiresAt == 0 {
		return false
	}
	return claims.ExpiresAt >= v.nowTime().Unix()
}

// Decode extracts the claims embedded in a credential without verifying
// its signature.
func (v *Validator) Decode(credential string) (Claims, error) {
	if strings.TrimSpace(credential) == "" {
		return Claims{}, errs.ErrNoCredential
	}

	token, _, err := jwtlib.NewParser().ParseUnverified(credential, jwtlib.MapClaims{})
	if err != nil {
		return Claims{}, errors.Wrap(errs.ErrMalformedToken, err.Error())
	}

	mapClaims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return Claims{}, errs.ErrMalformedToken
	}

	sub, _ := mapClaims["sub"].(string)
	email, _ := mapClaims["email"].(string)
	iat, _ := mapClaims["iat"].(float64)
	exp, _ := mapClaims["exp"].(float64)

	var roles []string
	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		roles = toStringSlice(rawRoles)
	}

	return Claims{
		Subject:   sub,
		Email:     email,
		Roles:     roles,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}

func toStringSlice(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
