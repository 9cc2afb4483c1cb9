package calculator

// ChangePercent expresses change as a percentage of base.
// A zero base yields 0 instead of an infinite or undefined value.
func ChangePercent(change, base float64) float64 {
	if base == 0 {
		return 0.0
	}
	return change / base * 100
}
