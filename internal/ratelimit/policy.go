package ratelimit

import "time"

// Policy caps downloads at Max grants per trailing Window.
type Policy struct {
	Max    int
	Window time.Duration
}

// Policies maps each identity kind to its quota. Kinds without a row are
// unrestricted (fail-open); KindUnresolvable never gets a row.
type Policies map[IdentityKind]Policy

// DefaultPolicies returns the stock quotas: 5 per 24h for anonymous callers,
// 10 per 24h for authenticated users.
func DefaultPolicies() Policies {
	return Policies{
		KindAnonymous: {Max: 5, Window: 24 * time.Hour},
		KindUser:      {Max: 10, Window: 24 * time.Hour},
	}
}
