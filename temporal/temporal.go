// Package temporal classifies and converts the temporal values of package
// [types] without knowing their concrete types up front. Use it where values
// arrive untyped, for example as decoded database results, and must be
// dispatched on their kind or converted to a host date.
package temporal

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/theory/dbtime/temporal/stddate"
	"github.com/theory/dbtime/temporal/types"
)

var (
	// ErrTemporal wraps errors returned by the temporal package.
	ErrTemporal = types.ErrTemporal

	// ErrUnresolvableZone indicates a conversion that requires resolving a
	// named time zone to an offset.
	ErrUnresolvableZone = types.ErrUnresolvableZone

	// ErrOutOfRange indicates a value outside the range of the host date.
	ErrOutOfRange = types.ErrOutOfRange
)

// Kind identifies one of the temporal value types.
type Kind uint8

const (
	// UnknownKind identifies values that are not temporal values.
	UnknownKind Kind = iota

	// CalendarDateKind identifies [types.CalendarDate].
	CalendarDateKind

	// LocalTimeKind identifies [types.LocalTime].
	LocalTimeKind

	// ZonedTimeKind identifies [types.ZonedTime].
	ZonedTimeKind

	// LocalDateTimeKind identifies [types.LocalDateTime].
	LocalDateTimeKind

	// ZonedDateTimeKind identifies [types.ZonedDateTime].
	ZonedDateTimeKind

	// DurationKind identifies [types.Duration].
	DurationKind
)

//nolint:gochecknoglobals
var (
	kindNames = [...]string{
		UnknownKind:       "Unknown",
		CalendarDateKind:  "CalendarDate",
		LocalTimeKind:     "LocalTime",
		ZonedTimeKind:     "ZonedTime",
		LocalDateTimeKind: "LocalDateTime",
		ZonedDateTimeKind: "ZonedDateTime",
		DurationKind:      "Duration",
	}

	allKinds = []Kind{
		CalendarDateKind,
		LocalTimeKind,
		ZonedTimeKind,
		LocalDateTimeKind,
		ZonedDateTimeKind,
		DurationKind,
	}
)

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds returns every kind of temporal value, in declaration order.
func Kinds() []Kind {
	return slices.Clone(allKinds)
}

// ParseKind returns the kind named name, ignoring case.
func ParseKind(name string) (Kind, error) {
	idx := slices.IndexFunc(allKinds, func(k Kind) bool {
		return strings.EqualFold(k.String(), name)
	})
	if idx < 0 {
		return UnknownKind, fmt.Errorf("%w: unknown kind %q", ErrTemporal, name)
	}
	return allKinds[idx], nil
}

// KindOf returns the kind of v, or UnknownKind if v is not a temporal value
// or a non-nil pointer to one. Values constructed by another copy of package
// types classify the same as values constructed by this one.
func KindOf(v any) Kind {
	switch {
	case types.IsCalendarDate(v):
		return CalendarDateKind
	case types.IsLocalTime(v):
		return LocalTimeKind
	case types.IsZonedTime(v):
		return ZonedTimeKind
	case types.IsLocalDateTime(v):
		return LocalDateTimeKind
	case types.IsZonedDateTime(v):
		return ZonedDateTimeKind
	case types.IsDuration(v):
		return DurationKind
	default:
		return UnknownKind
	}
}

// Parse parses src as the canonical string form of kind.
func Parse(kind Kind, src string) (types.Value, error) {
	switch kind {
	case CalendarDateKind:
		return wrapParse(types.ParseCalendarDate(src))
	case LocalTimeKind:
		return wrapParse(types.ParseLocalTime(src))
	case ZonedTimeKind:
		return wrapParse(types.ParseZonedTime(src))
	case LocalDateTimeKind:
		return wrapParse(types.ParseLocalDateTime(src))
	case ZonedDateTimeKind:
		return wrapParse(types.ParseZonedDateTime(src))
	case DurationKind:
		return wrapParse(types.ParseDuration(src))
	case UnknownKind:
	}
	return nil, fmt.Errorf("%w: cannot parse %v", ErrTemporal, kind)
}

// wrapParse returns val as a types.Value, or nil on error.
func wrapParse[T types.Value](val T, err error) (types.Value, error) {
	if err != nil {
		return nil, err
	}
	return val, nil
}

// FromStandardDate converts the host date d to a value of kind. Durations
// and unknown kinds have no host date form and return an error.
func FromStandardDate(kind Kind, d stddate.Date) (types.StandardDater, error) {
	switch kind {
	case CalendarDateKind:
		return types.CalendarDateFromStandardDate(d), nil
	case LocalTimeKind:
		return types.LocalTimeFromStandardDate(d), nil
	case ZonedTimeKind:
		return types.ZonedTimeFromStandardDate(d), nil
	case LocalDateTimeKind:
		return types.LocalDateTimeFromStandardDate(d), nil
	case ZonedDateTimeKind:
		return types.ZonedDateTimeFromStandardDate(d), nil
	case DurationKind, UnknownKind:
	}
	return nil, fmt.Errorf("%w: cannot convert a standard date to %v", ErrTemporal, kind)
}

// ToStandardDate converts v to a host date, reading the ambient zone from
// ctx as described by [types.StandardDater]. Returns an error wrapping
// ErrTemporal if v is a Duration or not a temporal value of this package.
func ToStandardDate(ctx context.Context, v any) (stddate.Date, error) {
	kind := KindOf(v)
	switch kind {
	case UnknownKind:
		return stddate.Date{}, fmt.Errorf("%w: %T is not a temporal value", ErrTemporal, v)
	case DurationKind:
		return stddate.Date{}, fmt.Errorf("%w: cannot convert %v to a standard date", ErrTemporal, kind)
	case CalendarDateKind, LocalTimeKind, ZonedTimeKind, LocalDateTimeKind, ZonedDateTimeKind:
	}

	val, ok := v.(types.StandardDater)
	if !ok {
		// Marked by another copy of package types, whose host date type
		// differs from this one.
		return stddate.Date{}, fmt.Errorf("%w: cannot convert %T to a standard date", ErrTemporal, v)
	}
	return val.ToStandardDate(ctx)
}
