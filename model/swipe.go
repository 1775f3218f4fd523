package model

import "math"

// SwipeDirection resolves a drag delta in screen coordinates (y grows downwards) to a
// direction. The dominant axis wins, ties go to the vertical axis, and a zero delta is not
// a swipe.
func SwipeDirection(dx, dy float64) (Direction, bool) {
	if dx == 0 && dy == 0 {
		return 0, false
	}
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return Right, true
		}
		return Left, true
	}
	if dy > 0 {
		return Down, true
	}
	return Up, true
}
