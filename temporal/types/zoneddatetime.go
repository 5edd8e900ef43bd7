package types

import (
	"context"
	"fmt"

	"github.com/theory/dbtime/temporal/stddate"
)

// ZonedDateTime represents a date and time of day with a UTC offset, a
// named time zone, or both. With an offset it denotes an absolute instant;
// with only a zone id it does not, since resolving the zone's offset needs a
// time zone database this package does not consult.
type ZonedDateTime struct {
	kind marker
	dateFields
	clockFields
	offset    int
	hasOffset bool
	zoneID    string
}

// NewZonedDateTime creates a ZonedDateTime with both an offset in seconds
// east of UTC and a zone id such as "Europe/Stockholm". The remaining fields
// follow the ranges of NewLocalDateTime and are stored as given.
func NewZonedDateTime(
	year, month, day, hour, minute, second, nanosecond int,
	offsetSeconds int,
	zoneID string,
) ZonedDateTime {
	dt := NewZonedDateTimeWithOffset(
		year, month, day, hour, minute, second, nanosecond, offsetSeconds,
	)
	dt.zoneID = zoneID
	return dt
}

// NewZonedDateTimeWithOffset creates a ZonedDateTime with an offset in
// seconds east of UTC and no zone id.
func NewZonedDateTimeWithOffset(
	year, month, day, hour, minute, second, nanosecond int,
	offsetSeconds int,
) ZonedDateTime {
	return ZonedDateTime{
		kind:       zonedDateTimeMarker,
		dateFields: dateFields{year: year, month: month, day: day},
		clockFields: clockFields{
			hour:       hour,
			minute:     minute,
			second:     second,
			nanosecond: nanosecond,
		},
		offset:    offsetSeconds,
		hasOffset: true,
	}
}

// NewZonedDateTimeWithZoneID creates a ZonedDateTime with a zone id and no
// offset. Such a value cannot be converted to a host date.
func NewZonedDateTimeWithZoneID(
	year, month, day, hour, minute, second, nanosecond int,
	zoneID string,
) ZonedDateTime {
	return ZonedDateTime{
		kind:       zonedDateTimeMarker,
		dateFields: dateFields{year: year, month: month, day: day},
		clockFields: clockFields{
			hour:       hour,
			minute:     minute,
			second:     second,
			nanosecond: nanosecond,
		},
		zoneID: zoneID,
	}
}

// ZonedDateTimeFromStandardDate returns the local date and time of day of
// d with the offset in effect at d in its zone. The result carries no zone
// id: the identifier of the host zone is not necessarily knowable.
func ZonedDateTimeFromStandardDate(d stddate.Date) ZonedDateTime {
	f := d.Local()
	return ZonedDateTime{
		kind:        zonedDateTimeMarker,
		dateFields:  datePart(f),
		clockFields: clockPart(f),
		offset:      d.Offset(),
		hasOffset:   true,
	}
}

// ParseZonedDateTime parses src in the
// "YYYY-MM-DDTHH:MM:SS.nnnnnnnnn+HH:MM[Zone/Id]" format, where the fraction
// is optional and at least one of the offset and bracketed zone id must be
// present.
func ParseZonedDateTime(src string) (ZonedDateTime, error) {
	m := zonedDateTimeRegex.FindStringSubmatch(src)
	if m == nil || (m[8] == "" && m[9] == "") {
		return ZonedDateTime{}, parseError(src, "ZonedDateTime")
	}
	d, ok := parseDateMatch(m[1:4])
	if !ok {
		return ZonedDateTime{}, parseError(src, "ZonedDateTime")
	}
	c, ok := parseClockMatch(m[4:8])
	if !ok {
		return ZonedDateTime{}, parseError(src, "ZonedDateTime")
	}
	if m[9] != "" && !validZoneID(m[9]) {
		return ZonedDateTime{}, fmt.Errorf(
			"%w: Cannot parse %q as ZonedDateTime: invalid zone id %q",
			ErrTemporal, src, m[9],
		)
	}

	dt := ZonedDateTime{
		kind:        zonedDateTimeMarker,
		dateFields:  d,
		clockFields: c,
		zoneID:      m[9],
	}
	if m[8] != "" {
		dt.offset, dt.hasOffset = parseOffset(m[8]), true
	}
	return dt, nil
}

// TemporalMarker returns the kind marker of dt.
func (dt ZonedDateTime) TemporalMarker() string { return string(dt.kind) }

// Offset returns the offset in seconds east of UTC and true, or zero and
// false when dt has only a zone id.
func (dt ZonedDateTime) Offset() (int, bool) { return dt.offset, dt.hasOffset }

// ZoneID returns the zone id and true, or the empty string and false when
// dt has only an offset.
func (dt ZonedDateTime) ZoneID() (string, bool) { return dt.zoneID, dt.zoneID != "" }

// LocalDateTime returns the wall clock of dt without zone information.
func (dt ZonedDateTime) LocalDateTime() LocalDateTime {
	return LocalDateTime{
		kind:        localDateTimeMarker,
		dateFields:  dt.dateFields,
		clockFields: dt.clockFields,
	}
}

// ToStandardDate returns the host date for the instant dt denotes, truncated
// to the millisecond. The instant is the wall clock of dt shifted by its
// offset; the zone in ctx only determines how the result reads its local
// fields. Returns ErrUnresolvableZone when dt has no offset, since resolving
// its zone id would require a time zone database.
func (dt ZonedDateTime) ToStandardDate(ctx context.Context) (stddate.Date, error) {
	if !dt.hasOffset {
		return stddate.Date{}, fmt.Errorf(
			"%w: %w: cannot convert %v to a standard date without an offset for zone %q",
			ErrTemporal, ErrUnresolvableZone, dt, dt.zoneID,
		)
	}

	std, err := instantFromOffset(ctx, dt.dateFields, dt.clockFields, dt.offset)
	if err != nil {
		return stddate.Date{}, conversionError(dt, err)
	}
	return std, nil
}

// String returns the string representation of dt using the format
// "YYYY-MM-DDTHH:MM:SS.nnnnnnnnn+HH:MM[Zone/Id]", omitting a zero fraction
// and whichever of the offset and zone id is absent.
func (dt ZonedDateTime) String() string {
	str := formatDate(dt.dateFields) + "T" + formatClock(dt.clockFields)
	if dt.hasOffset {
		str += formatOffset(dt.offset)
	}
	if dt.zoneID != "" {
		str += "[" + dt.zoneID + "]"
	}
	return str
}

// MarshalJSON implements the json.Marshaler interface. The date time is a
// quoted string in the format returned by String.
func (dt ZonedDateTime) MarshalJSON() ([]byte, error) {
	return marshalString(dt)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (dt *ZonedDateTime) UnmarshalJSON(data []byte) error {
	src, err := unmarshalString(data, "ZonedDateTime")
	if err != nil {
		return err
	}
	val, err := ParseZonedDateTime(src)
	if err != nil {
		return err
	}
	*dt = val
	return nil
}
