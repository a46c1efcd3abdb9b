package filter

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSince(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		label string
		want  time.Duration
	}{
		{"1h", time.Hour},
		{"24h", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{" 7D ", 7 * 24 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := Since(tt.label, clock.Now())
			require.True(t, ok)
			assert.Equal(t, clock.Now().Add(-tt.want), got)
		})
	}
}

func TestSince_UnknownLabel(t *testing.T) {
	clock := clockwork.NewFakeClock()

	for _, label := range []string{"", "30m", "1w", "forever"} {
		_, ok := Since(label, clock.Now())
		assert.False(t, ok, label)
	}
}

func TestSince_FollowsClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC))
	first, _ := Since("1h", clock.Now())

	clock.Advance(30 * time.Minute)
	second, _ := Since("1h", clock.Now())

	assert.Equal(t, 30*time.Minute, second.Sub(first))
}
