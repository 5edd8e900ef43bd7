package types

import (
	"context"

	"github.com/theory/dbtime/temporal/stddate"
)

// CalendarDate represents a date without a time of day or time zone.
type CalendarDate struct {
	kind marker
	dateFields
}

// NewCalendarDate creates a CalendarDate. Month must be 1-12 and day must
// be a valid day of that month in year; the fields are stored as given.
func NewCalendarDate(year, month, day int) CalendarDate {
	return CalendarDate{
		kind:       calendarDateMarker,
		dateFields: dateFields{year: year, month: month, day: day},
	}
}

// CalendarDateFromStandardDate returns the local calendar date of d,
// discarding its time of day.
func CalendarDateFromStandardDate(d stddate.Date) CalendarDate {
	return CalendarDate{kind: calendarDateMarker, dateFields: datePart(d.Local())}
}

// ParseCalendarDate parses src in the "YYYY-MM-DD" format, where years
// outside 0-9999 carry a sign and at least six digits.
func ParseCalendarDate(src string) (CalendarDate, error) {
	m := calendarDateRegex.FindStringSubmatch(src)
	if m == nil {
		return CalendarDate{}, parseError(src, "CalendarDate")
	}
	f, ok := parseDateMatch(m[1:])
	if !ok {
		return CalendarDate{}, parseError(src, "CalendarDate")
	}
	return CalendarDate{kind: calendarDateMarker, dateFields: f}, nil
}

// TemporalMarker returns the kind marker of d.
func (d CalendarDate) TemporalMarker() string { return string(d.kind) }

// ToStandardDate returns the host date at midnight UTC on d. Note that this
// reinterprets a date read from local fields as a UTC date: the calendar
// digits survive a round trip through CalendarDateFromStandardDate, the
// instant does not. The result reads its local fields in the zone in ctx.
func (d CalendarDate) ToStandardDate(ctx context.Context) (stddate.Date, error) {
	std, err := stddate.FromUTC(
		stddate.TZFromContext(ctx),
		stddate.Fields{Year: d.year, Month: d.month, Day: d.day},
	)
	if err != nil {
		return stddate.Date{}, conversionError(d, err)
	}
	return std, nil
}

// String returns the string representation of d using the format
// "YYYY-MM-DD".
func (d CalendarDate) String() string {
	return formatDate(d.dateFields)
}

// MarshalJSON implements the json.Marshaler interface. The date is a quoted
// string in the format returned by String.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return marshalString(d)
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date must be
// a quoted string in the format returned by String.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	src, err := unmarshalString(data, "CalendarDate")
	if err != nil {
		return err
	}
	date, err := ParseCalendarDate(src)
	if err != nil {
		return err
	}
	*d = date
	return nil
}
