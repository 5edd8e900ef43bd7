// Package stddate models the host-native date: a millisecond-resolution
// instant limited to 8.64e15 milliseconds either side of the Unix epoch, read
// through the calendar fields of an ambient local time zone.
//
// Go's [time.Time] carries nanoseconds and a far larger range, so Date
// reproduces the narrower host contract on top of it. Temporal values convert
// to and from Date at the boundary of a database client.
package stddate

import (
	"errors"
	"fmt"
	"time"
)

// ErrOutOfRange indicates an instant or field tuple that falls outside the
// range a Date can represent.
var ErrOutOfRange = errors.New("out of range")

const (
	// MaxMillis is the largest number of milliseconds since the Unix epoch a
	// Date can hold.
	MaxMillis int64 = 8_640_000_000_000_000

	// MinMillis is the smallest number of milliseconds since the Unix epoch a
	// Date can hold.
	MinMillis = -MaxMillis

	// maxYear bounds the magnitude of a year field before any arithmetic is
	// done with it. It sits just past the years reachable from MinMillis and
	// MaxMillis in any zone so that in-range instants are never rejected.
	maxYear = 275_761

	// maxField bounds the magnitude of every other field.
	maxField = 1 << 31
)

// Fields holds the calendar and clock fields of a Date in one time zone.
// Month runs from 1 to 12.
type Fields struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// Date is a host-native date. The zero value is the Unix epoch read in UTC.
type Date struct {
	ms  int64
	loc *time.Location
}

// UnixMilli returns the Date ms milliseconds after the Unix epoch, read in
// loc. A nil loc reads in UTC. Returns ErrOutOfRange if ms lies outside
// [MinMillis, MaxMillis].
func UnixMilli(ms int64, loc *time.Location) (Date, error) {
	if ms < MinMillis || ms > MaxMillis {
		return Date{}, fmt.Errorf("%w: %d milliseconds from the epoch", ErrOutOfRange, ms)
	}
	return Date{ms: ms, loc: loc}, nil
}

// FromTime returns the Date for t truncated to the millisecond and read in
// t's location.
func FromTime(t time.Time) (Date, error) {
	if t.Before(minTime) || t.After(maxTime) {
		return Date{}, fmt.Errorf("%w: %v", ErrOutOfRange, t)
	}
	return Date{ms: t.UnixMilli(), loc: t.Location()}, nil
}

// FromLocal constructs a Date from fields interpreted as a wall clock in
// loc. Fields outside their natural ranges roll over into the neighboring
// unit. A wall clock that occurs twice in loc resolves to the earlier
// instant; one skipped by a transition resolves past the transition.
func FromLocal(loc *time.Location, f Fields) (Date, error) {
	if err := checkFields(f); err != nil {
		return Date{}, err
	}
	if loc == nil {
		loc = time.UTC
	}

	t := resolveLocal(wallClock(f), loc)
	if t.Before(minTime) || t.After(maxTime) {
		return Date{}, fmt.Errorf("%w: %v", ErrOutOfRange, f)
	}
	return Date{ms: t.UnixMilli(), loc: loc}, nil
}

// FromUTC constructs a Date from fields interpreted as a UTC wall clock.
// The resulting Date reads its local fields in loc.
func FromUTC(loc *time.Location, f Fields) (Date, error) {
	if err := checkFields(f); err != nil {
		return Date{}, err
	}

	t := wallClock(f)
	if t.Before(minTime) || t.After(maxTime) {
		return Date{}, fmt.Errorf("%w: %v", ErrOutOfRange, f)
	}
	return Date{ms: t.UnixMilli(), loc: loc}, nil
}

// UnixMilli returns the number of milliseconds since the Unix epoch.
func (d Date) UnixMilli() int64 { return d.ms }

// Location returns the zone d reads its local fields in.
func (d Date) Location() *time.Location {
	if d.loc == nil {
		return time.UTC
	}
	return d.loc
}

// In returns d read in loc.
func (d Date) In(loc *time.Location) Date {
	return Date{ms: d.ms, loc: loc}
}

// Time returns d as a [time.Time] in d's location.
func (d Date) Time() time.Time {
	return time.UnixMilli(d.ms).In(d.Location())
}

// Local returns the calendar and clock fields of d in its location.
func (d Date) Local() Fields {
	return fieldsOf(d.Time())
}

// UTC returns the calendar and clock fields of d in UTC.
func (d Date) UTC() Fields {
	return fieldsOf(time.UnixMilli(d.ms).UTC())
}

// Offset returns the UTC offset in seconds east of UTC in effect at d in
// its location.
func (d Date) Offset() int {
	_, off := d.Time().Zone()
	return off
}

// Equal reports whether d and u denote the same instant.
func (d Date) Equal(u Date) bool {
	return d.ms == u.ms
}

// stringFormat represents the canonical string format for Date values.
const stringFormat = "2006-01-02T15:04:05.000Z07:00"

// String returns d in RFC 3339 format with milliseconds in its location.
func (d Date) String() string {
	return d.Time().Format(stringFormat)
}

//nolint:gochecknoglobals
var (
	minTime = time.UnixMilli(MinMillis)
	maxTime = time.UnixMilli(MaxMillis)
)

// checkFields returns ErrOutOfRange if any field of f is too large in
// magnitude to compute with.
func checkFields(f Fields) error {
	if f.Year < -maxYear || f.Year > maxYear {
		return fmt.Errorf("%w: year %d", ErrOutOfRange, f.Year)
	}
	for _, v := range []int{f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Millisecond} {
		if v <= -maxField || v >= maxField {
			return fmt.Errorf("%w: %v", ErrOutOfRange, f)
		}
	}
	return nil
}

// wallClock returns f as a UTC time.Time.
func wallClock(f Fields) time.Time {
	return time.Date(
		f.Year, time.Month(f.Month), f.Day,
		f.Hour, f.Minute, f.Second, f.Millisecond*int(time.Millisecond),
		time.UTC,
	)
}

// fieldsOf returns the fields of t in its own location.
func fieldsOf(t time.Time) Fields {
	return Fields{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

// resolveLocal returns the earliest instant whose wall clock in loc equals
// wall, expressed as a UTC time.Time. When no instant matches, wall falls in
// a transition gap and the offset in effect before the gap moves it forward.
func resolveLocal(wall time.Time, loc *time.Location) time.Time {
	if loc == time.UTC {
		return wall
	}

	// Candidate offsets are those in effect a day either side of wall, which
	// covers every real-world transition.
	var (
		best  time.Time
		found bool
	)
	for _, probe := range []time.Duration{-24 * time.Hour, 0, 24 * time.Hour} {
		_, off := wall.Add(probe).In(loc).Zone()
		cand := wall.Add(-time.Duration(off) * time.Second)
		if !sameWallClock(cand.In(loc), wall) {
			continue
		}
		if !found || cand.Before(best) {
			best, found = cand, true
		}
	}
	if found {
		return best
	}

	_, off := wall.Add(-24 * time.Hour).In(loc).Zone()
	return wall.Add(-time.Duration(off) * time.Second)
}

// sameWallClock reports whether local shows the same wall clock as the UTC
// time wall.
func sameWallClock(local, wall time.Time) bool {
	return time.Date(
		local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(),
		time.UTC,
	).Equal(wall)
}
