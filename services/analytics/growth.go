package analytics

// Growth returns the percentage change from previous to current. When
// previous is zero it returns 0 — a "no prior data" policy, not a flat
// growth signal, so callers must not read 0 as "no change".
func Growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return ((current - previous) / previous) * 100
}
