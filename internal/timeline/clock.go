package timeline

import (
	"fmt"
	"math"
)

// Clock converts between seconds and frames at a fixed frame rate
type Clock struct {
	FPS int
}

// SecondsToFrames rounds seconds to the nearest whole frame.
// Rounding is half-away-from-zero, applied per call so repeated
// conversions never accumulate drift.
func (c Clock) SecondsToFrames(seconds float64) (int, error) {
	if seconds < 0 {
		return 0, fmt.Errorf("%w: negative seconds %.3f", ErrInvalidDuration, seconds)
	}
	return int(math.Round(seconds * float64(c.FPS))), nil
}

// FramesToSeconds converts an absolute frame or frame count back to seconds
func (c Clock) FramesToSeconds(frame int) float64 {
	return float64(frame) / float64(c.FPS)
}
