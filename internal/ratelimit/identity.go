// Package ratelimit implements download admission control: it decides whether
// a caller may download a plugin artifact, based on how many grants the same
// identity already received inside a trailing window.
package ratelimit

import (
	"strings"

	"plughub/internal/hashutil"
)

// IdentityKind tags the identity space a caller is rate-limited under.
type IdentityKind string

const (
	KindUser         IdentityKind = "user"
	KindAnonymous    IdentityKind = "anonymous"
	KindUnresolvable IdentityKind = "unresolvable"
)

// Identity is the (kind, key) pair a download request is counted under.
// For KindUnresolvable the key is empty.
type Identity struct {
	Kind IdentityKind
	Key  string
}

// ResolveIdentity maps the caller context to a canonical identity. An
// authenticated user id always wins over the network address, so
// authenticated callers are never anonymized. When neither signal is present
// the identity is unresolvable; that is a valid state, not an error.
func ResolveIdentity(userID, rawAddr *string) Identity {
	if userID != nil && strings.TrimSpace(*userID) != "" {
		return Identity{Kind: KindUser, Key: strings.TrimSpace(*userID)}
	}
	if key := AnonymizeAddress(rawAddr); key != nil {
		return Identity{Kind: KindAnonymous, Key: *key}
	}
	return Identity{Kind: KindUnresolvable}
}

// AnonymizeAddress turns a raw network address into a stable, non-reversible
// key. Nil (or blank) in, nil out. The hash is deterministic and unsalted so
// keys stay comparable across processes and restarts.
func AnonymizeAddress(raw *string) *string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	key := hashutil.SHA256Hex(*raw)
	return &key
}
