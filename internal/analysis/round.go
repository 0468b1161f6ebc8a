package analysis

import "strconv"

// round rounds half to even on the exact binary value, which matches the
// rounding of decimal formatting.
func round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
