//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"plughub/internal/model"
	"plughub/internal/ratelimit"
	"plughub/pkg/snowflake"
)

// DownloadEventRepository persists the append-only download grant history.
// Events are never updated; DeleteOlderThan exists only for the retention
// pruner, which runs outside the admission path.
type DownloadEventRepository interface {
	Append(ctx context.Context, event model.DownloadEvent) (*model.DownloadEvent, error)
	CountSince(ctx context.Context, pluginID int64, kind ratelimit.IdentityKind, key string, since time.Time) (int, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type downloadEventRepository struct {
	db *sql.DB
}

// NewDownloadEventRepository creates a new download event repository.
func NewDownloadEventRepository(db *sql.DB) DownloadEventRepository {
	return &downloadEventRepository{db: db}
}

// Append inserts a new event. Exactly one of UserID / AddressKey must be set.
func (r *downloadEventRepository) Append(ctx context.Context, event model.DownloadEvent) (*model.DownloadEvent, error) {
	if (event.UserID == nil) == (event.AddressKey == nil) {
		return nil, fmt.Errorf("download event must carry exactly one of user id and address key")
	}

	event.ID = snowflake.NextID()
	event.OccurredAt = event.OccurredAt.UTC().Truncate(time.Second)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO download_events (id, plugin_id, user_id, address_key, occurred_at)
		VALUES (?, ?, ?, ?, ?)
	`, event.ID, event.PluginID, nullableString(event.UserID), nullableString(event.AddressKey), event.OccurredAt.Unix())
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// CountSince counts events for one identity and plugin with an inclusive
// lower time bound. No upper bound: events are never written with future
// timestamps, so now is the implicit ceiling.
func (r *downloadEventRepository) CountSince(ctx context.Context, pluginID int64, kind ratelimit.IdentityKind, key string, since time.Time) (int, error) {
	var query string
	switch kind {
	case ratelimit.KindUser:
		query = `SELECT COUNT(*) FROM download_events WHERE plugin_id = ? AND user_id = ? AND occurred_at >= ?`
	case ratelimit.KindAnonymous:
		query = `SELECT COUNT(*) FROM download_events WHERE plugin_id = ? AND address_key = ? AND occurred_at >= ?`
	default:
		return 0, fmt.Errorf("count downloads for identity kind %q: not countable", kind)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, pluginID, key, since.UTC().Unix()).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteOlderThan removes events that occurred strictly before cutoff and
// returns how many were removed.
func (r *downloadEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM download_events WHERE occurred_at < ?`, cutoff.UTC().Unix())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
