package types

import (
	"strconv"
)

// Duration represents an amount of time in months, days, seconds, and
// nanoseconds. The components are independent: 400 days is not 13 months,
// and a day is not 86,400 seconds, so none is ever folded into another.
// Durations have no host date form.
type Duration struct {
	kind        marker
	months      int
	days        int
	seconds     int
	nanoseconds int
}

// NewDuration creates a Duration. Nanoseconds must be 0-999,999,999 and
// count forward from seconds, so minus one and a half seconds is -2 seconds
// and 500,000,000 nanoseconds. The fields are stored as given.
func NewDuration(months, days, seconds, nanoseconds int) Duration {
	return Duration{
		kind:        durationMarker,
		months:      months,
		days:        days,
		seconds:     seconds,
		nanoseconds: nanoseconds,
	}
}

// ParseDuration parses src in the "P{months}M{days}DT{seconds}.nnnnnnnnnS"
// format returned by String.
func ParseDuration(src string) (Duration, error) {
	m := durationRegex.FindStringSubmatch(src)
	if m == nil {
		return Duration{}, parseError(src, "Duration")
	}
	ints, ok := atoi(m[1], m[2], m[4])
	if !ok {
		return Duration{}, parseError(src, "Duration")
	}

	seconds, nanos := ints[2], parseFraction(m[5])
	if m[3] == "-" {
		// Negative decimals count the fraction back from the whole seconds.
		seconds = -seconds
		if nanos > 0 {
			seconds--
			nanos = nanosPerSecond - nanos
		}
	}
	return NewDuration(ints[0], ints[1], seconds, nanos), nil
}

// TemporalMarker returns the kind marker of d.
func (d Duration) TemporalMarker() string { return string(d.kind) }

// Months returns the number of months.
func (d Duration) Months() int { return d.months }

// Days returns the number of days.
func (d Duration) Days() int { return d.days }

// Seconds returns the number of seconds.
func (d Duration) Seconds() int { return d.seconds }

// Nanoseconds returns the nanoseconds past Seconds.
func (d Duration) Nanoseconds() int { return d.nanoseconds }

// String returns the string representation of d using the format
// "P{months}M{days}DT{seconds}.nnnnnnnnnS". Seconds and nanoseconds render
// as a single decimal, so -2 seconds and 500,000,000 nanoseconds is "-1.5"
// seconds, written "P0M0DT-1.500000000S".
func (d Duration) String() string {
	return "P" + strconv.Itoa(d.months) + "M" +
		strconv.Itoa(d.days) + "DT" +
		formatSeconds(d.seconds, d.nanoseconds) + "S"
}

// formatSeconds formats seconds and nanoseconds as one decimal number.
func formatSeconds(seconds, nanos int) string {
	if seconds < 0 && nanos > 0 {
		whole := "-" + strconv.Itoa(-(seconds + 1))
		return whole + formatNanosecond(nanosPerSecond-nanos)
	}
	return strconv.Itoa(seconds) + formatNanosecond(nanos)
}

// MarshalJSON implements the json.Marshaler interface. The duration is a
// quoted string in the format returned by String.
func (d Duration) MarshalJSON() ([]byte, error) {
	return marshalString(d)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Duration) UnmarshalJSON(data []byte) error {
	src, err := unmarshalString(data, "Duration")
	if err != nil {
		return err
	}
	dur, err := ParseDuration(src)
	if err != nil {
		return err
	}
	*d = dur
	return nil
}
