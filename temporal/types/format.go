package types

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// Regular expression fragments for the canonical string formats.
const (
	yearPattern   = `([+-]\d{6,}|\d{4})`
	datePattern   = yearPattern + `-(\d{2})-(\d{2})`
	clockPattern  = `(\d{2}):(\d{2}):(\d{2})(?:\.(\d{1,9}))?`
	offsetPattern = `(Z|[+-]\d{2}:\d{2}(?::\d{2})?)`
	zonePattern   = `\[([^\[\]]+)\]`
)

//nolint:gochecknoglobals
var (
	calendarDateRegex  = regexp.MustCompile(`^` + datePattern + `$`)
	localTimeRegex     = regexp.MustCompile(`^` + clockPattern + `$`)
	zonedTimeRegex     = regexp.MustCompile(`^` + clockPattern + offsetPattern + `$`)
	localDateTimeRegex = regexp.MustCompile(`^` + datePattern + `T` + clockPattern + `$`)
	zonedDateTimeRegex = regexp.MustCompile(
		`^` + datePattern + `T` + clockPattern + offsetPattern + `?(?:` + zonePattern + `)?$`,
	)
	durationRegex = regexp.MustCompile(`^P(-?\d+)M(-?\d+)DT(-?)(\d+)(?:\.(\d{1,9}))?S$`)
)

// parseError returns an error reporting that src cannot be parsed as kind.
func parseError(src, kind string) error {
	return fmt.Errorf("%w: Cannot parse %q as %v", ErrTemporal, src, kind)
}

// formatYear formats year with four digits, or as a signed six-digit year
// when it falls outside 0-9999.
func formatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("-%06d", -year)
	}
	if year > 9999 {
		return fmt.Sprintf("+%06d", year)
	}
	return fmt.Sprintf("%04d", year)
}

// formatDate formats f as YYYY-MM-DD.
func formatDate(f dateFields) string {
	return fmt.Sprintf("%v-%02d-%02d", formatYear(f.year), f.month, f.day)
}

// formatNanosecond formats nanos as a nine-digit fraction, or as the empty
// string when it is zero.
func formatNanosecond(nanos int) string {
	if nanos == 0 {
		return ""
	}
	return fmt.Sprintf(".%09d", nanos)
}

// formatClock formats f as HH:MM:SS with an optional fraction.
func formatClock(f clockFields) string {
	return fmt.Sprintf(
		"%02d:%02d:%02d%v",
		f.hour, f.minute, f.second, formatNanosecond(f.nanosecond),
	)
}

// formatOffset formats offset seconds as Z, +HH:MM, or +HH:MM:SS.
func formatOffset(offset int) string {
	if offset == 0 {
		return "Z"
	}
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	hours := offset / secondsPerHour
	minutes := offset % secondsPerHour / secondsPerMinute
	seconds := offset % secondsPerMinute
	if seconds != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, hours, minutes, seconds)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, hours, minutes)
}

// atoi converts the integer strings in src to ints. Returns false if any
// of them overflows.
func atoi(src ...string) ([]int, bool) {
	ints := make([]int, len(src))
	for i, s := range src {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, false
		}
		ints[i] = n
	}
	return ints, true
}

// parseDateMatch parses the year, month, and day submatches of m.
func parseDateMatch(m []string) (dateFields, bool) {
	ints, ok := atoi(m[0], m[1], m[2])
	if !ok {
		return dateFields{}, false
	}
	return dateFields{year: ints[0], month: ints[1], day: ints[2]}, true
}

// parseClockMatch parses the hour, minute, second, and fraction submatches
// of m.
func parseClockMatch(m []string) (clockFields, bool) {
	ints, ok := atoi(m[0], m[1], m[2])
	if !ok {
		return clockFields{}, false
	}
	return clockFields{
		hour:       ints[0],
		minute:     ints[1],
		second:     ints[2],
		nanosecond: parseFraction(m[3]),
	}, true
}

// parseFraction converts up to nine fractional digits to nanoseconds.
func parseFraction(frac string) int {
	if frac == "" {
		return 0
	}
	// Pad to nanosecond precision; the pattern guarantees digits only.
	n, _ := strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
	return n
}

// parseOffset converts Z, +HH:MM, or +HH:MM:SS into seconds east of UTC.
func parseOffset(src string) int {
	if src == "Z" {
		return 0
	}
	sign := 1
	if src[0] == '-' {
		sign = -1
	}
	parts := strings.Split(src[1:], ":")
	ints, _ := atoi(parts...)
	offset := ints[0]*secondsPerHour + ints[1]*secondsPerMinute
	if len(ints) == 3 {
		offset += ints[2]
	}
	return sign * offset
}

// validZoneID reports whether id lexes as a zone identifier: one or more
// slash-separated segments, each starting with a Unicode identifier start
// character and continuing with identifier characters, '-', or '+'.
func validZoneID(id string) bool {
	if id == "" {
		return false
	}
	for _, seg := range strings.Split(id, "/") {
		r, size := utf8.DecodeRuneInString(seg)
		if size == 0 || !xid.Start(r) {
			return false
		}
		for _, r := range seg[size:] {
			if !xid.Continue(r) && r != '-' && r != '+' {
				return false
			}
		}
	}
	return true
}

// marshalString returns the JSON string encoding of v's canonical form.
func marshalString(v Value) ([]byte, error) {
	return json.Marshal(v.String())
}

// unmarshalString decodes a JSON string from data.
func unmarshalString(data []byte, kind string) (string, error) {
	var src string
	if err := json.Unmarshal(data, &src); err != nil {
		return "", fmt.Errorf("%w: Cannot parse %s as %v", ErrTemporal, data, kind)
	}
	return src, nil
}
