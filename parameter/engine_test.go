package parameter

import (
	"testing"
	"time"
)

func TestDurationToTicks(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		rate int
		want int
	}{
		{"Feedback at 60 Hz", FeedbackDuration, 60, 90},
		{"Feedback at 30 Hz", FeedbackDuration, 30, 45},
		{"Feedback at 144 Hz", FeedbackDuration, 144, 216},
		{"Zero rate uses default", FeedbackDuration, 0, 90},
		{"Tiny duration floors at one tick", time.Millisecond, 60, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationToTicks(tt.d, tt.rate); got != tt.want {
				t.Errorf("DurationToTicks(%v, %d) = %d, want %d", tt.d, tt.rate, got, tt.want)
			}
		})
	}
}

func TestTickInterval(t *testing.T) {
	if got := TickInterval(60); got != time.Second/60 {
		t.Errorf("Expected %v, got %v", time.Second/60, got)
	}
	if got := TickInterval(-1); got != time.Second/TickRate {
		t.Errorf("Expected default interval, got %v", got)
	}
}
