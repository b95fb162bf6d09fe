//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"time"

	"plughub/internal/model"
	"plughub/internal/ratelimit"
	"plughub/internal/repository"
	"plughub/pkg/logger"
)

// DownloadService is the admission-control entry point consumed by the
// download handler. CheckAdmission decides; RecordDownload appends the grant
// after the transfer succeeded. The two calls are intentionally separate (and
// not atomic): concurrent requests may briefly exceed the quota.
type DownloadService interface {
	CheckAdmission(ctx context.Context, pluginID int64, userID, rawAddr *string, now time.Time) (ratelimit.Verdict, error)
	RecordDownload(ctx context.Context, pluginID int64, userID, rawAddr *string, occurredAt time.Time) error
	PruneEvents(ctx context.Context, olderThan time.Duration) (int64, error)
}

type downloadService struct {
	plugins repository.PluginRepository
	events  repository.DownloadEventRepository
	engine  *ratelimit.Engine
}

// NewDownloadService wires the admission engine over the event repository.
// Nil policies fall back to ratelimit.DefaultPolicies.
func NewDownloadService(plugins repository.PluginRepository, events repository.DownloadEventRepository, policies ratelimit.Policies) DownloadService {
	return &downloadService{
		plugins: plugins,
		events:  events,
		engine:  ratelimit.NewEngine(events, policies),
	}
}

// CheckAdmission validates the plugin and asks the engine for a verdict.
// An unknown plugin is ErrNotFound, never a verdict; a storage failure is a
// plain error so the handler can pick its own fail-open/fail-closed policy.
func (s *downloadService) CheckAdmission(ctx context.Context, pluginID int64, userID, rawAddr *string, now time.Time) (ratelimit.Verdict, error) {
	plugin, err := s.plugins.GetByID(ctx, pluginID)
	if err != nil {
		return ratelimit.Verdict{}, fmt.Errorf("look up plugin %d: %w", pluginID, err)
	}
	if plugin == nil {
		return ratelimit.Verdict{}, ErrNotFound
	}

	identity := ratelimit.ResolveIdentity(userID, rawAddr)
	if identity.Kind == ratelimit.KindUnresolvable {
		logger.Debug("admitting unidentifiable download request", "plugin_id", pluginID)
	}

	verdict, err := s.engine.Check(ctx, pluginID, identity, now)
	if err != nil {
		return ratelimit.Verdict{}, fmt.Errorf("check download admission: %w", err)
	}
	return verdict, nil
}

// RecordDownload appends a grant event for the caller's identity. Requests
// with no identity leave no event; there is nothing to count them under.
func (s *downloadService) RecordDownload(ctx context.Context, pluginID int64, userID, rawAddr *string, occurredAt time.Time) error {
	identity := ratelimit.ResolveIdentity(userID, rawAddr)

	event := model.DownloadEvent{PluginID: pluginID, OccurredAt: occurredAt}
	switch identity.Kind {
	case ratelimit.KindUser:
		event.UserID = &identity.Key
	case ratelimit.KindAnonymous:
		event.AddressKey = &identity.Key
	default:
		return nil
	}

	if _, err := s.events.Append(ctx, event); err != nil {
		return fmt.Errorf("record download: %w", err)
	}
	return nil
}

// PruneEvents drops events older than the retention period. Called by the
// background pruner only; the admission path never deletes.
func (s *downloadService) PruneEvents(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	removed, err := s.events.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune download events: %w", err)
	}
	return removed, nil
}
