// Package vitals accumulates page-performance signals (largest paint time,
// layout-shift total, interaction latency) reported during a page load.
package vitals

import (
	"regexp"
	"sync"
)

// interactionEvents matches the event-timing entry names that count toward
// interaction latency.
var interactionEvents = regexp.MustCompile(`(?i)click|keydown|pointerdown|pointerup|mousedown|mouseup|touchstart|touchend`)

// Recorder holds the mutable vitals state for one page load. Browsers deliver
// observer callbacks on a single thread, but Go callers may not, so every
// update is serialized behind a mutex. There is no reset: a new navigation
// gets a new Recorder.
type Recorder struct {
	mu      sync.Mutex
	lcp     float64
	lcpSeen bool
	cls     float64
	inp     float64
	inpSeen bool
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordLCP records a largest-contentful-paint candidate in milliseconds.
// Only the largest observed value is kept.
func (r *Recorder) RecordLCP(ms float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.lcpSeen || ms > r.lcp {
		r.lcp = ms
	}
	r.lcpSeen = true
}

// AccumulateCLS adds a layout-shift value to the running total. Callers are
// expected to have already excluded shifts caused by recent user input.
// Negative values are ignored so the total is monotonic non-decreasing.
func (r *Recorder) AccumulateCLS(value float64) {
	if value < 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cls += value
}

// RecordInteraction records an event-timing entry. Entries whose event name
// does not look like an interaction (click, key, pointer, mouse, touch
// variants) are discarded. Only the longest duration is kept.
func (r *Recorder) RecordInteraction(event string, durationMS float64) {
	if !interactionEvents.MatchString(event) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.inpSeen || durationMS > r.inp {
		r.inp = durationMS
	}
	r.inpSeen = true
}

// Snapshot returns the current vitals state. An analysis pass reads whatever
// the recorder holds at invocation time; there is no ordering guarantee with
// respect to in-flight observer callbacks.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		LCP:     r.lcp,
		LCPSeen: r.lcpSeen,
		CLS:     r.cls,
		INP:     r.inp,
		INPSeen: r.inpSeen,
	}
}

// Snapshot is an immutable copy of vitals state. LCP and INP are in
// milliseconds; CLS is unitless. A zero CLS is indistinguishable from "no
// shifts observed", which the CLS rule deliberately preserves.
type Snapshot struct {
	LCP     float64
	LCPSeen bool
	CLS     float64
	INP     float64
	INPSeen bool
}
