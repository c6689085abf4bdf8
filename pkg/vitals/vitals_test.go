package vitals

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordLCP(t *testing.T) {
	r := NewRecorder()

	assert.False(t, r.Snapshot().LCPSeen)

	r.RecordLCP(1200)
	r.RecordLCP(800) // smaller candidate is ignored
	r.RecordLCP(2500)

	snap := r.Snapshot()
	assert.True(t, snap.LCPSeen)
	assert.Equal(t, 2500.0, snap.LCP)
}

func TestAccumulateCLS(t *testing.T) {
	r := NewRecorder()

	r.AccumulateCLS(0.05)
	r.AccumulateCLS(0.1)
	r.AccumulateCLS(-1) // negative shifts never reduce the total

	assert.InDelta(t, 0.15, r.Snapshot().CLS, 1e-9)
}

func TestRecordInteraction(t *testing.T) {
	tests := []struct {
		name     string
		event    string
		duration float64
		wantSeen bool
	}{
		{"click counts", "click", 150, true},
		{"keydown counts", "keydown", 90, true},
		{"pointerup counts", "pointerup", 40, true},
		{"case insensitive", "Click", 10, true},
		{"scroll does not count", "scroll", 500, false},
		{"paint does not count", "first-paint", 500, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecorder()
			r.RecordInteraction(tt.event, tt.duration)
			snap := r.Snapshot()
			assert.Equal(t, tt.wantSeen, snap.INPSeen)
			if tt.wantSeen {
				assert.Equal(t, tt.duration, snap.INP)
			}
		})
	}
}

func TestRecordInteraction_KeepsLongest(t *testing.T) {
	r := NewRecorder()

	r.RecordInteraction("click", 120)
	r.RecordInteraction("keydown", 300)
	r.RecordInteraction("click", 50)

	assert.Equal(t, 300.0, r.Snapshot().INP)
}

func TestRecorder_ConcurrentUpdates(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.RecordLCP(float64(n))
			r.AccumulateCLS(0.01)
			r.RecordInteraction("click", float64(n))
		}(i)
	}
	wg.Wait()

	snap := r.Snapshot()
	assert.Equal(t, 49.0, snap.LCP)
	assert.Equal(t, 49.0, snap.INP)
	assert.InDelta(t, 0.5, snap.CLS, 1e-9)
}
