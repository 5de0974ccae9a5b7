// Package insights derives typed, severity-ranked observations from a
// normalized transaction snapshot: spending-trend alerts, recurring
// charge detection, anomaly detection, and savings-goal forecasting.
//
// The engine is a pure function of its inputs plus a reference instant.
// It never mutates the snapshot, retains no state between calls, and
// never fails; degenerate inputs (empty history, zero deviation) are
// defused with fallbacks rather than surfaced as errors. The reference
// instant defaults to the wall clock and must be pinned with WithNow for
// reproducible output:
//
//	engine := insights.New(insights.WithNow(refDate))
//	out := engine.Build(ctx, txs, goal)
package insights

import (
	"context"
	"time"

	"fincoach"
	"fincoach/telemetry"
)

// Engine computes insights relative to a fixed reference instant.
type Engine struct {
	now time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithNow pins the reference instant used by the trend window, the
// anomaly window, and the forecast horizon.
func WithNow(now time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{now: time.Now()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Build runs the four analyses over the snapshot and returns their
// insights in a fixed order: trend, subscription, anomaly, forecast.
// An empty snapshot yields no insights regardless of the goal.
func (e *Engine) Build(ctx context.Context, txs []fincoach.Transaction, goal fincoach.GoalConfig) []fincoach.Insight {
	timer := telemetry.FromContext(ctx).Start("insights.build")
	defer timer.End()

	if len(txs) == 0 {
		return nil
	}

	var out []fincoach.Insight

	t := timer.Child("trend")
	out = append(out, e.trend(txs)...)
	t.End()

	t = timer.Child("subscriptions")
	out = append(out, e.subscriptions(txs)...)
	t.End()

	t = timer.Child("anomalies")
	out = append(out, e.anomalies(txs)...)
	t.End()

	t = timer.Child("forecast")
	out = append(out, e.forecast(goal)...)
	t.End()

	return out
}

// groups is an ordered grouping of transactions: keys appear in
// first-occurrence order, which downstream iteration depends on for
// stable insight ordering.
type groups struct {
	keys    []string
	members map[string][]fincoach.Transaction
}

func groupBy(txs []fincoach.Transaction, key func(fincoach.Transaction) string) *groups {
	g := &groups{members: make(map[string][]fincoach.Transaction)}
	for _, tx := range txs {
		k := key(tx)
		if _, ok := g.members[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.members[k] = append(g.members[k], tx)
	}
	return g
}
