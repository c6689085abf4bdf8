package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreStyle(t *testing.T) {
	styles := NewStyles(true)

	tests := []struct {
		score int
		want  string
	}{
		{95, "excellent"},
		{90, "excellent"},
		{89, "good"},
		{70, "good"},
		{69, "fair"},
		{50, "fair"},
		{49, "poor"},
		{0, "poor"},
	}

	for _, tt := range tests {
		got := styles.ScoreStyle(tt.score)
		switch tt.want {
		case "excellent":
			assert.Equal(t, styles.ScoreExcellent, got, "score %d", tt.score)
		case "good":
			assert.Equal(t, styles.ScoreGood, got, "score %d", tt.score)
		case "fair":
			assert.Equal(t, styles.ScoreFair, got, "score %d", tt.score)
		case "poor":
			assert.Equal(t, styles.ScorePoor, got, "score %d", tt.score)
		}
	}
}

func TestNoColorStylesRenderPlain(t *testing.T) {
	styles := NewStyles(false)
	assert.Equal(t, "85", styles.ScoreStyle(85).Render("85"))
	assert.Equal(t, "msg", styles.Error.Render("msg"))
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	// A plain buffer is not a TTY.
	assert.False(t, IsColorEnabled("auto", &buf))
}
