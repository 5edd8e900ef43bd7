// Package types provides temporal value types for database clients whose
// values outgrow the host's native date: calendar dates, times of day with
// and without an offset, date times with an offset and/or named zone, and
// month/day/second durations.
//
// Every value is immutable and echoes the fields it was constructed with
// exactly. Constructors neither normalize nor reject out-of-range fields:
// the ranges documented on each constructor are invariants the caller
// upholds, and behavior downstream of a violation is undefined.
//
// Values convert to and from [stddate.Date], the millisecond-resolution,
// range-limited host date, and can be classified with the Is* predicates
// even when they were constructed by another copy of this package.
package types

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/theory/dbtime/temporal/stddate"
)

var (
	// ErrTemporal wraps errors returned by the types package.
	ErrTemporal = errors.New("temporal")

	// ErrUnresolvableZone indicates a conversion that requires resolving a
	// named time zone to an offset.
	ErrUnresolvableZone = errors.New("unresolvable zone")

	// ErrOutOfRange indicates a value outside the range of the host date.
	ErrOutOfRange = stddate.ErrOutOfRange
)

const (
	// secondsPerMinute contains the number of seconds in a minute (excluding
	// leap seconds).
	secondsPerMinute = 60

	// secondsPerHour contains the number of seconds in an hour.
	secondsPerHour = 60 * secondsPerMinute

	// nanosPerMilli contains the number of nanoseconds in a millisecond.
	nanosPerMilli = 1_000_000

	// nanosPerSecond contains the number of nanoseconds in a second.
	nanosPerSecond = 1_000_000_000
)

// Value defines the interface for all temporal value types.
type Value interface {
	// String returns the canonical ISO 8601 representation of the value.
	String() string

	// TemporalMarker returns the kind marker stamped on the value when it
	// was constructed.
	TemporalMarker() string
}

// StandardDater defines the interface for values that convert to the host
// date. Every Value except Duration implements it.
type StandardDater interface {
	Value

	// ToStandardDate converts the value to a host date, reading the ambient
	// local zone from ctx where the value has no offset of its own.
	ToStandardDate(ctx context.Context) (stddate.Date, error)
}

// marker identifies the kind of a value independent of the package copy
// that constructed it.
type marker string

// Markers are part of the cross-copy contract: never change them.
const (
	calendarDateMarker  marker = "__isCalendarDate__"
	localTimeMarker     marker = "__isLocalTime__"
	zonedTimeMarker     marker = "__isZonedTime__"
	localDateTimeMarker marker = "__isLocalDateTime__"
	zonedDateTimeMarker marker = "__isZonedDateTime__"
	durationMarker      marker = "__isDuration__"
)

// dateFields holds the calendar fields shared by date-bearing types.
type dateFields struct {
	year  int
	month int
	day   int
}

// Year returns the year, which may be negative or exceed four digits.
func (f dateFields) Year() int { return f.year }

// Month returns the month of the year, from 1 to 12.
func (f dateFields) Month() int { return f.month }

// Day returns the day of the month, from 1 to 31.
func (f dateFields) Day() int { return f.day }

// clockFields holds the time-of-day fields shared by time-bearing types.
type clockFields struct {
	hour       int
	minute     int
	second     int
	nanosecond int
}

// Hour returns the hour of the day, from 0 to 23.
func (f clockFields) Hour() int { return f.hour }

// Minute returns the minute of the hour, from 0 to 59.
func (f clockFields) Minute() int { return f.minute }

// Second returns the second of the minute, from 0 to 59.
func (f clockFields) Second() int { return f.second }

// Nanosecond returns the nanosecond of the second, from 0 to 999,999,999.
func (f clockFields) Nanosecond() int { return f.nanosecond }

// stdFields assembles host date fields from d and c, truncating nanoseconds
// to milliseconds.
func stdFields(d dateFields, c clockFields) stddate.Fields {
	return stddate.Fields{
		Year:        d.year,
		Month:       d.month,
		Day:         d.day,
		Hour:        c.hour,
		Minute:      c.minute,
		Second:      c.second,
		Millisecond: floorDiv(c.nanosecond, nanosPerMilli),
	}
}

// datePart returns the calendar fields of f.
func datePart(f stddate.Fields) dateFields {
	return dateFields{year: f.Year, month: f.Month, day: f.Day}
}

// clockPart returns the clock fields of f with milliseconds expanded to
// nanoseconds.
func clockPart(f stddate.Fields) clockFields {
	return clockFields{
		hour:       f.Hour,
		minute:     f.Minute,
		second:     f.Second,
		nanosecond: f.Millisecond * nanosPerMilli,
	}
}

// conversionError wraps err from converting v to a host date.
func conversionError(v Value, err error) error {
	return fmt.Errorf("%w: cannot convert %v to a standard date: %w", ErrTemporal, v, err)
}

// floorDiv returns x divided by y rounded toward negative infinity.
func floorDiv[T constraints.Integer](x, y T) T {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}
