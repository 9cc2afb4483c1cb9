package model

import "github.com/guregu/null/v6"

// MovingAverage is aligned index-for-index with a chronological price sequence.
// Entries whose window is not full are null, never zero.
type MovingAverage []null.Float

// Last returns the final entry, or null for an empty sequence.
func (m MovingAverage) Last() null.Float {
	if len(m) == 0 {
		return null.Float{}
	}
	return m[len(m)-1]
}
