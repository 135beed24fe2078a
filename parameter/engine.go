package parameter

import "time"

// Game Loop Timing
const (
	// TickRate is the nominal number of update+render ticks per second
	TickRate = 60

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// Canvas
const (
	// CanvasWidth is the logical drawing width; the terminal grid is mapped onto it
	CanvasWidth = 800.0

	// CanvasHeight is the logical drawing height
	CanvasHeight = 600.0
)

// Quiz Flow
const (
	// SessionSize is the number of questions drawn per game
	SessionSize = 5

	// FeedbackDuration is how long the correct/incorrect overlay stays up (90 ticks at 60 Hz)
	FeedbackDuration = 1500 * time.Millisecond

	// CelebrationInterval is the tick period of extra bursts on a perfect result screen
	CelebrationInterval = 20
)

// TickInterval returns the frame interval for a tick rate, falling back to TickRate
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = TickRate
	}
	return time.Second / time.Duration(rate)
}

// DurationToTicks converts a wall-clock duration to whole ticks at the given rate, minimum 1
func DurationToTicks(d time.Duration, rate int) int {
	if rate <= 0 {
		rate = TickRate
	}
	ticks := int((d*time.Duration(rate) + time.Second/2) / time.Second)
	if ticks < 1 {
		return 1
	}
	return ticks
}
