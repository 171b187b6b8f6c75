package tetra

import "math"

// msToTicks converts a delay in milliseconds to simulation ticks, rounding to
// the nearest tick. Positive delays never round down to zero.
func msToTicks(ms, tickRate int) int {
	if ms <= 0 {
		return 0
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := int(math.Round(float64(ms) * float64(tickRate) / 1000.0))
	return max(ticks, 1)
}
