package types

import (
	"context"

	"github.com/theory/dbtime/temporal/stddate"
)

// LocalTime represents a time of day without a time zone.
type LocalTime struct {
	kind marker
	clockFields
}

// NewLocalTime creates a LocalTime. Hour must be 0-23, minute and second
// 0-59, and nanosecond 0-999,999,999; the fields are stored as given.
func NewLocalTime(hour, minute, second, nanosecond int) LocalTime {
	return LocalTime{
		kind: localTimeMarker,
		clockFields: clockFields{
			hour:       hour,
			minute:     minute,
			second:     second,
			nanosecond: nanosecond,
		},
	}
}

// LocalTimeFromStandardDate returns the local time of day of d.
func LocalTimeFromStandardDate(d stddate.Date) LocalTime {
	return LocalTime{kind: localTimeMarker, clockFields: clockPart(d.Local())}
}

// ParseLocalTime parses src in the "HH:MM:SS.nnnnnnnnn" format, where the
// fraction is optional.
func ParseLocalTime(src string) (LocalTime, error) {
	m := localTimeRegex.FindStringSubmatch(src)
	if m == nil {
		return LocalTime{}, parseError(src, "LocalTime")
	}
	f, ok := parseClockMatch(m[1:])
	if !ok {
		return LocalTime{}, parseError(src, "LocalTime")
	}
	return LocalTime{kind: localTimeMarker, clockFields: f}, nil
}

// TemporalMarker returns the kind marker of t.
func (t LocalTime) TemporalMarker() string { return string(t.kind) }

// ToStandardDate returns the host date at t on 1970-01-01 in the zone in
// ctx, truncated to the millisecond.
func (t LocalTime) ToStandardDate(ctx context.Context) (stddate.Date, error) {
	std, err := stddate.FromLocal(
		stddate.TZFromContext(ctx),
		stdFields(epochDate, t.clockFields),
	)
	if err != nil {
		return stddate.Date{}, conversionError(t, err)
	}
	return std, nil
}

// epochDate anchors times of day converted to host dates.
//
//nolint:gochecknoglobals
var epochDate = dateFields{year: 1970, month: 1, day: 1}

// String returns the string representation of t using the format
// "HH:MM:SS.nnnnnnnnn", omitting a zero fraction.
func (t LocalTime) String() string {
	return formatClock(t.clockFields)
}

// MarshalJSON implements the json.Marshaler interface. The time is a quoted
// string in the format returned by String.
func (t LocalTime) MarshalJSON() ([]byte, error) {
	return marshalString(t)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *LocalTime) UnmarshalJSON(data []byte) error {
	src, err := unmarshalString(data, "LocalTime")
	if err != nil {
		return err
	}
	tim, err := ParseLocalTime(src)
	if err != nil {
		return err
	}
	*t = tim
	return nil
}
