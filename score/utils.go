package score

import "math"

// Normalize brings a probability onto the 0-1 scale. Values above 1 are
// taken to be percentages. Already normalised values are returned as is.
func Normalize(value float64) float64 {
	if value > 1 {
		return value / 100
	}
	return value
}

// Round2 rounds half away from zero to two decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// ChangeRate returns the change from old to new in percent. A move away
// from zero counts as 100%.
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return float64(0)
		} else {
			return float64(100)
		}
	}

	return (new - old) / old * 100
}
