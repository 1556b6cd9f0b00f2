package hydro

import "math"

// Ema is an exponential moving average with a fixed time constant. The
// zero value reads as zero until updated.
type Ema struct {
	Tau   float64
	value float64
}

// Update folds a raw sample into the average using the elapsed dt and
// returns the smoothed value. A non-positive time constant passes raw
// values through unsmoothed.
func (e *Ema) Update(raw, dt float64) float64 {
	if e.Tau <= 0 || dt <= 0 {
		e.value = raw
		return e.value
	}
	alpha := 1 - math.Exp(-dt/e.Tau)
	e.value += (raw - e.value) * alpha
	return e.value
}

// Value returns the current smoothed value.
func (e *Ema) Value() float64 { return e.value }

// Reset clears the average back to zero.
func (e *Ema) Reset() { e.value = 0 }
