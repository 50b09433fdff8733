package pricing

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by the billing collaborator.
const DateLayout = "2006-01-02"

// DateFormatError reports a billing period bound that is not a valid date.
type DateFormatError struct {
	Value string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q", e.Value)
}

func (e *DateFormatError) Unwrap() error { return e.Err }

// DateRangeError reports a billing period whose end precedes its start.
type DateRangeError struct {
	Start string
	End   string
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("end date %q precedes start date %q", e.End, e.Start)
}

// MonthsBetween returns the number of billed months between two dates.
// Billing is by whole calendar month: only the year and month fields
// count, the day-of-month is ignored.
func MonthsBetween(start, end string) (int, error) {
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0, &DateFormatError{Value: start, Err: err}
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0, &DateFormatError{Value: end, Err: err}
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months < 0 {
		return 0, &DateRangeError{Start: start, End: end}
	}
	return months, nil
}
