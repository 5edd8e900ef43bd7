package types

import "reflect"

// marked is satisfied by every temporal value, including values constructed
// by another copy of this package: interface satisfaction depends only on
// the method set, not on the package that declared the type.
type marked interface {
	TemporalMarker() string
}

// markerOf returns the kind marker of v, or the empty string if v is not a
// marked value. Nil pointers yield the empty string rather than panicking
// in a value-receiver method.
func markerOf(v any) marker {
	m, ok := v.(marked)
	if !ok {
		return ""
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}
	return marker(m.TemporalMarker())
}

// IsCalendarDate reports whether v is a CalendarDate or a pointer to one.
func IsCalendarDate(v any) bool { return markerOf(v) == calendarDateMarker }

// IsLocalTime reports whether v is a LocalTime or a pointer to one.
func IsLocalTime(v any) bool { return markerOf(v) == localTimeMarker }

// IsZonedTime reports whether v is a ZonedTime or a pointer to one.
func IsZonedTime(v any) bool { return markerOf(v) == zonedTimeMarker }

// IsLocalDateTime reports whether v is a LocalDateTime or a pointer to one.
func IsLocalDateTime(v any) bool { return markerOf(v) == localDateTimeMarker }

// IsZonedDateTime reports whether v is a ZonedDateTime or a pointer to one.
func IsZonedDateTime(v any) bool { return markerOf(v) == zonedDateTimeMarker }

// IsDuration reports whether v is a Duration or a pointer to one.
func IsDuration(v any) bool { return markerOf(v) == durationMarker }
