package model

import "time"

// DownloadEvent is an immutable record of a granted download. Exactly one of
// UserID / AddressKey is set, matching the identity the grant was counted
// under. AddressKey is always an anonymized key, never a raw network address.
// Events are append-only; nothing in the application mutates them after
// creation (retention pruning runs as a separate background policy).
type DownloadEvent struct {
	ID         int64
	PluginID   int64
	UserID     *string
	AddressKey *string
	OccurredAt time.Time
}
