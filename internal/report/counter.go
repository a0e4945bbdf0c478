package report

import (
	"context"
	"math"
	"time"
)

// CounterConfig controls how a numeric counter animates from zero.
type CounterConfig struct {
	Duration time.Duration
	Steps    int
}

// DefaultCounter animates over 1.5s in 50 ticks.
var DefaultCounter = CounterConfig{Duration: 1500 * time.Millisecond, Steps: 50}

// Interval is the time between two ticks.
func (c CounterConfig) Interval() time.Duration {
	if c.Steps <= 0 {
		return 0
	}
	return c.Duration / time.Duration(c.Steps)
}

// Frames returns the value shown after each tick. Intermediate values are
// floored; the last frame is always exactly target.
func (c CounterConfig) Frames(target int) []int {
	steps := max(c.Steps, 1)
	frames := make([]int, steps)
	inc := float64(target) / float64(steps)
	cur := 0.0
	for i := 0; i < steps-1; i++ {
		cur += inc
		frames[i] = int(math.Floor(cur))
	}
	frames[steps-1] = target
	return frames
}

// Animate calls show with every frame, one per Interval. When ctx ends early
// the target is shown before returning.
func Animate(ctx context.Context, target int, cfg CounterConfig, show func(int)) error {
	frames := cfg.Frames(target)
	interval := cfg.Interval()
	if interval <= 0 {
		show(target)
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for _, v := range frames {
		select {
		case <-ctx.Done():
			show(target)
			return ctx.Err()
		case <-ticker.C:
			show(v)
		}
	}
	return nil
}
