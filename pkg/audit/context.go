package audit

import (
	"context"
	"time"

	"github.com/yaklabco/seolint/pkg/page"
	"github.com/yaklabco/seolint/pkg/vitals"
)

// RuleContext provides everything a rule may inspect: the page snapshot, the
// vitals captured during collection, and the pass timestamp. It is a
// short-lived parameter object created once per analysis pass; rules share it
// read-only.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Page is the frozen document under audit.
	Page *page.Snapshot

	// Vitals is the performance state read at pass start (last-write-wins
	// with respect to concurrent recorder updates).
	Vitals vitals.Snapshot

	// Now anchors time-based rules such as content freshness, so a pass is
	// reproducible under test.
	Now time.Time
}

// NewRuleContext creates a RuleContext for one analysis pass.
func NewRuleContext(ctx context.Context, snap *page.Snapshot, vit vitals.Snapshot, now time.Time) *RuleContext {
	return &RuleContext{
		Ctx:    ctx,
		Page:   snap,
		Vitals: vit,
		Now:    now,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}
