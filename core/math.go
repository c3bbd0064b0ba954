package core

// Clamp restricts v to [lo, hi], an inverted range collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of v
func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
