package analysis

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySeries         = errors.New("series has no records")
	ErrInsufficientHistory = errors.New("not enough history")
	ErrMissingField        = errors.New("required field is missing")
	ErrDateNotFound        = errors.New("date not found")
	ErrPriceMissing        = errors.New("price data is missing for this date")
	ErrInvalidParameter    = errors.New("invalid parameter")
)

// DateError ties a lookup failure to the date that was asked for.
type DateError struct {
	Date string
	Err  error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.Date)
}

func (e *DateError) Unwrap() error { return e.Err }
