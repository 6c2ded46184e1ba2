package lunar

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// ErrInvalidDate is returned when a (year, month, day) triple does not name
// a real calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

// Date is a civil calendar date with no time of day and no location.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate returns the Date for year, month and day or an error wrapping
// ErrInvalidDate if the triple is not a real calendar date.
func NewDate(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// DateOf returns the civil date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// ParseDate parses a YYYY-MM-DD string. Syntax errors and calendar-invalid
// dates are both reported as ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	var y, m, d int
	var rest string
	n, _ := fmt.Sscanf(s, "%d-%d-%d%s", &y, &m, &d, &rest)
	if n != 3 {
		return Date{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, s)
	}
	return NewDate(y, m, d)
}

// Validate returns an error wrapping ErrInvalidDate unless d names a real
// calendar date.
func (d Date) Validate() error {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 ||
		d.Day > int(datetime.DaysInMonth(d.Year, datetime.Month(d.Month))) {
		return fmt.Errorf("%w: %v", ErrInvalidDate, d)
	}
	return nil
}

// AddDays returns the date n days after d (before d for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, time.Month(d.Month), d.Day+n, 12, 0, 0, 0, time.UTC))
}

// String returns d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText implements encoding.TextMarshaler using the YYYY-MM-DD form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It rejects dates that
// ParseDate rejects.
func (d *Date) UnmarshalText(text []byte) error {
	v, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
