package types

import (
	"context"

	"github.com/theory/dbtime/temporal/stddate"
)

// ZonedTime represents a time of day with a UTC offset. There is no named
// zone form: a zone's offset depends on the date, which a ZonedTime lacks.
type ZonedTime struct {
	kind marker
	clockFields
	offset int
}

// NewZonedTime creates a ZonedTime. The clock fields follow the ranges of
// NewLocalTime; offsetSeconds is the offset in seconds east of UTC.
func NewZonedTime(hour, minute, second, nanosecond, offsetSeconds int) ZonedTime {
	return ZonedTime{
		kind: zonedTimeMarker,
		clockFields: clockFields{
			hour:       hour,
			minute:     minute,
			second:     second,
			nanosecond: nanosecond,
		},
		offset: offsetSeconds,
	}
}

// ZonedTimeFromStandardDate returns the local time of day of d together
// with the offset in effect at d in its zone.
func ZonedTimeFromStandardDate(d stddate.Date) ZonedTime {
	return ZonedTime{
		kind:        zonedTimeMarker,
		clockFields: clockPart(d.Local()),
		offset:      d.Offset(),
	}
}

// ParseZonedTime parses src in the "HH:MM:SS.nnnnnnnnn+HH:MM" format, where
// the fraction is optional and the offset may be Z or include seconds.
func ParseZonedTime(src string) (ZonedTime, error) {
	m := zonedTimeRegex.FindStringSubmatch(src)
	if m == nil {
		return ZonedTime{}, parseError(src, "ZonedTime")
	}
	f, ok := parseClockMatch(m[1:5])
	if !ok {
		return ZonedTime{}, parseError(src, "ZonedTime")
	}
	return ZonedTime{
		kind:        zonedTimeMarker,
		clockFields: f,
		offset:      parseOffset(m[5]),
	}, nil
}

// TemporalMarker returns the kind marker of t.
func (t ZonedTime) TemporalMarker() string { return string(t.kind) }

// LocalTime returns the time of day of t without its offset.
func (t ZonedTime) LocalTime() LocalTime {
	return LocalTime{kind: localTimeMarker, clockFields: t.clockFields}
}

// Offset returns the offset in seconds east of UTC.
func (t ZonedTime) Offset() int { return t.offset }

// ToStandardDate returns the host date at t on 1970-01-01 in t's own offset,
// truncated to the millisecond. The result reads its local fields in the
// zone in ctx.
func (t ZonedTime) ToStandardDate(ctx context.Context) (stddate.Date, error) {
	std, err := instantFromOffset(ctx, epochDate, t.clockFields, t.offset)
	if err != nil {
		return stddate.Date{}, conversionError(t, err)
	}
	return std, nil
}

// String returns the string representation of t using the format
// "HH:MM:SS.nnnnnnnnn+HH:MM".
func (t ZonedTime) String() string {
	return formatClock(t.clockFields) + formatOffset(t.offset)
}

// MarshalJSON implements the json.Marshaler interface. The time is a quoted
// string in the format returned by String.
func (t ZonedTime) MarshalJSON() ([]byte, error) {
	return marshalString(t)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *ZonedTime) UnmarshalJSON(data []byte) error {
	src, err := unmarshalString(data, "ZonedTime")
	if err != nil {
		return err
	}
	tim, err := ParseZonedTime(src)
	if err != nil {
		return err
	}
	*t = tim
	return nil
}

// instantFromOffset returns the host date for the wall clock d and c at
// offset seconds east of UTC. The wall clock is read as UTC and shifted by
// the offset, so the instant is exact to the millisecond.
func instantFromOffset(
	ctx context.Context,
	d dateFields,
	c clockFields,
	offset int,
) (stddate.Date, error) {
	// Shift the wall clock into UTC; FromUTC rolls the seconds over.
	f := stdFields(d, c)
	f.Second -= offset
	return stddate.FromUTC(stddate.TZFromContext(ctx), f)
}
