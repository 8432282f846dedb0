package metrics

import "strconv"

// FormatNumber formats v as fixed-point with decimals fractional digits,
// with '.' as the separator and no grouping, independent of locale.
// A negative decimals selects the shortest representation that round-trips.
func FormatNumber(v float64, decimals int) string {
	if decimals < 0 {
		decimals = -1
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
