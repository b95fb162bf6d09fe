package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Verdict is the engine's output: the deny flag plus a justification that is
// safe to show to the caller. Reason is empty when Limited is false.
type Verdict struct {
	Limited bool
	Reason  string
}

// CounterStore is the read side of the download event history. CountSince
// counts events matching (pluginID, kind, key) with occurred_at >= since; the
// lower bound is inclusive and no upper bound is applied.
type CounterStore interface {
	CountSince(ctx context.Context, pluginID int64, kind IdentityKind, key string, since time.Time) (int, error)
}

// Engine makes the admission decision. It is stateless apart from the store:
// each Check recomputes the fixed-window count from scratch. The check and
// the caller's later event append are deliberately not atomic, so concurrent
// requests from one identity can each observe a below-quota count and all be
// admitted. The quota is best-effort abuse deterrence, not hard enforcement.
type Engine struct {
	store    CounterStore
	policies Policies
}

// NewEngine returns an engine using the given policies, or DefaultPolicies
// when nil.
func NewEngine(store CounterStore, policies Policies) *Engine {
	if policies == nil {
		policies = DefaultPolicies()
	}
	return &Engine{store: store, policies: policies}
}

// Check decides whether the identity may download the plugin at now.
// Unresolvable identities and kinds without a policy row are fail-open. A
// store failure is returned as an error, never folded into a verdict.
func (e *Engine) Check(ctx context.Context, pluginID int64, id Identity, now time.Time) (Verdict, error) {
	if id.Kind == KindUnresolvable {
		return Verdict{}, nil
	}

	policy, ok := e.policies[id.Kind]
	if !ok {
		return Verdict{}, nil
	}

	windowStart := now.Add(-policy.Window)
	observed, err := e.store.CountSince(ctx, pluginID, id.Kind, id.Key, windowStart)
	if err != nil {
		return Verdict{}, fmt.Errorf("count downloads: %w", err)
	}

	if observed >= policy.Max {
		return Verdict{
			Limited: true,
			Reason:  fmt.Sprintf("quota of %d downloads per %s exceeded", policy.Max, formatWindow(policy.Window)),
		}, nil
	}
	return Verdict{}, nil
}

func formatWindow(window time.Duration) string {
	if window >= time.Hour && window%time.Hour == 0 {
		hours := int(window / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	if window >= time.Minute && window%time.Minute == 0 {
		minutes := int(window / time.Minute)
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	return window.String()
}
