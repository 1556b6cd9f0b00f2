package core

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 bounds v to the unit interval.
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Frac returns v/max clamped to [0, 1], or zero when max is not
// positive, so a misconfigured limit can never produce Inf or NaN.
func Frac(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return Clamp01(v / max)
}

// Lerp interpolates linearly between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// SmoothStep maps t in [0, 1] onto the cubic ease 3t²−2t³.
func SmoothStep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}
