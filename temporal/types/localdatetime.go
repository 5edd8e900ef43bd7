package types

import (
	"context"

	"github.com/theory/dbtime/temporal/stddate"
)

// LocalDateTime represents a date and time of day without a time zone.
type LocalDateTime struct {
	kind marker
	dateFields
	clockFields
}

// NewLocalDateTime creates a LocalDateTime. The fields follow the ranges of
// NewCalendarDate and NewLocalTime and are stored as given.
func NewLocalDateTime(year, month, day, hour, minute, second, nanosecond int) LocalDateTime {
	return LocalDateTime{
		kind:       localDateTimeMarker,
		dateFields: dateFields{year: year, month: month, day: day},
		clockFields: clockFields{
			hour:       hour,
			minute:     minute,
			second:     second,
			nanosecond: nanosecond,
		},
	}
}

// LocalDateTimeFromStandardDate returns the local date and time of day of
// d, with its milliseconds expressed as nanoseconds.
func LocalDateTimeFromStandardDate(d stddate.Date) LocalDateTime {
	f := d.Local()
	return LocalDateTime{
		kind:        localDateTimeMarker,
		dateFields:  datePart(f),
		clockFields: clockPart(f),
	}
}

// ParseLocalDateTime parses src in the "YYYY-MM-DDTHH:MM:SS.nnnnnnnnn"
// format, where the fraction is optional.
func ParseLocalDateTime(src string) (LocalDateTime, error) {
	m := localDateTimeRegex.FindStringSubmatch(src)
	if m == nil {
		return LocalDateTime{}, parseError(src, "LocalDateTime")
	}
	d, ok := parseDateMatch(m[1:4])
	if !ok {
		return LocalDateTime{}, parseError(src, "LocalDateTime")
	}
	c, ok := parseClockMatch(m[4:8])
	if !ok {
		return LocalDateTime{}, parseError(src, "LocalDateTime")
	}
	return LocalDateTime{kind: localDateTimeMarker, dateFields: d, clockFields: c}, nil
}

// TemporalMarker returns the kind marker of dt.
func (dt LocalDateTime) TemporalMarker() string { return string(dt.kind) }

// CalendarDate returns the date of dt.
func (dt LocalDateTime) CalendarDate() CalendarDate {
	return CalendarDate{kind: calendarDateMarker, dateFields: dt.dateFields}
}

// LocalTime returns the time of day of dt.
func (dt LocalDateTime) LocalTime() LocalTime {
	return LocalTime{kind: localTimeMarker, clockFields: dt.clockFields}
}

// ToStandardDate returns the host date for dt read as a wall clock in the
// zone in ctx. Sub-millisecond precision is truncated, so for any host date
// d read in that zone, LocalDateTimeFromStandardDate(d).ToStandardDate
// returns d.
func (dt LocalDateTime) ToStandardDate(ctx context.Context) (stddate.Date, error) {
	std, err := stddate.FromLocal(
		stddate.TZFromContext(ctx),
		stdFields(dt.dateFields, dt.clockFields),
	)
	if err != nil {
		return stddate.Date{}, conversionError(dt, err)
	}
	return std, nil
}

// String returns the string representation of dt using the format
// "YYYY-MM-DDTHH:MM:SS.nnnnnnnnn", omitting a zero fraction.
func (dt LocalDateTime) String() string {
	return formatDate(dt.dateFields) + "T" + formatClock(dt.clockFields)
}

// MarshalJSON implements the json.Marshaler interface. The date time is a
// quoted string in the format returned by String.
func (dt LocalDateTime) MarshalJSON() ([]byte, error) {
	return marshalString(dt)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (dt *LocalDateTime) UnmarshalJSON(data []byte) error {
	src, err := unmarshalString(data, "LocalDateTime")
	if err != nil {
		return err
	}
	val, err := ParseLocalDateTime(src)
	if err != nil {
		return err
	}
	*dt = val
	return nil
}
