package types

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/dbtime/temporal/stddate"
)

func loadTZ(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

//nolint:unparam // keep s in case we need it in the future.
func pos(h, m, s int) *time.Location {
	return time.FixedZone("", h*60*60+m*60+s)
}

//nolint:unparam // keep s in case we need it in the future.
func neg(h, m, s int) *time.Location {
	return time.FixedZone("", -(h*60*60 + m*60 + s))
}

// testZones returns the zones conversion tests run in.
func testZones() []*time.Location {
	return []*time.Location{
		time.UTC,
		pos(5, 30, 0),
		neg(11, 0, 0),
		pos(14, 0, 0),
		loadTZ("Europe/Stockholm"),
		loadTZ("America/New_York"),
	}
}

// testMillis returns instants within a day of the host range limits and
// around the epoch.
func testMillis() []int64 {
	const day = 86_400_000
	return []int64{
		stddate.MinMillis + day,
		stddate.MinMillis + day + 123,
		-62_135_596_800_000, // 0001-01-01
		-1,
		0,
		1,
		1_583_107_200_000, // 2020-03-02
		1_655_371_165_004, // 2022-06-16T09:19:25.004Z
		1_730_611_800_000, // 2024-11-03T05:30:00Z, NYC fall-back overlap
		1_730_615_400_000, // 2024-11-03T06:30:00Z, second pass
		253_402_300_799_999,
		stddate.MaxMillis - day,
	}
}

func stdDate(t *testing.T, ms int64, loc *time.Location) stddate.Date {
	t.Helper()
	d, err := stddate.UnixMilli(ms, loc)
	require.NoError(t, err)
	return d
}

func TestCalendarDate(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		year  int
		month int
		day   int
		str   string
	}{
		{"modern", 2020, 3, 2, "2020-03-02"},
		{"year_zero", 0, 1, 1, "0000-01-01"},
		{"four_digits", 9999, 12, 31, "9999-12-31"},
		{"five_digits", 10000, 1, 1, "+010000-01-01"},
		{"negative", -1, 6, 30, "-000001-06-30"},
		{"far_future", 275760, 9, 13, "+275760-09-13"},
		{"huge", 1_000_000, 1, 1, "+1000000-01-01"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			d := NewCalendarDate(tc.year, tc.month, tc.day)
			a.Equal(tc.year, d.Year())
			a.Equal(tc.month, d.Month())
			a.Equal(tc.day, d.Day())
			a.Equal(tc.str, d.String())
			a.Equal(string(calendarDateMarker), d.TemporalMarker())

			parsed, err := ParseCalendarDate(tc.str)
			r.NoError(err)
			a.Equal(d, parsed)

			// Check JSON
			data, err := json.Marshal(d)
			r.NoError(err)
			a.JSONEq(fmt.Sprintf("%q", tc.str), string(data))
			d2 := new(CalendarDate)
			r.NoError(json.Unmarshal(data, d2))
			a.Equal(d, *d2)
		})
	}
}

func TestCalendarDateEcho(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// Out-of-range fields are stored as given.
	d := NewCalendarDate(2021, 13, 42)
	a.Equal(2021, d.Year())
	a.Equal(13, d.Month())
	a.Equal(42, d.Day())
	a.Equal(NewCalendarDate(2021, 13, 42), d)
	a.NotEqual(NewCalendarDate(2021, 12, 42), d)
}

func TestCalendarDateToStandardDate(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	for _, loc := range testZones() {
		ctx := stddate.ContextWithTZ(context.Background(), loc)
		std, err := NewCalendarDate(2020, 3, 2).ToStandardDate(ctx)
		r.NoError(err)
		a.Equal(stddate.Fields{Year: 2020, Month: 3, Day: 2}, std.UTC())
		a.Equal(loc, std.Location())
		a.Equal(time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC).UnixMilli(), std.UnixMilli())
	}

	// Outside the host range.
	_, err := NewCalendarDate(275760, 9, 14).ToStandardDate(context.Background())
	r.ErrorIs(err, ErrOutOfRange)
	r.ErrorIs(err, ErrTemporal)
	_, err = NewCalendarDate(-271821, 4, 19).ToStandardDate(context.Background())
	r.ErrorIs(err, ErrOutOfRange)
	_, err = NewCalendarDate(-1_000_000_000, 1, 1).ToStandardDate(context.Background())
	r.ErrorIs(err, ErrOutOfRange)
	r.EqualError(err, "temporal: cannot convert -1000000000-01-01 to a standard date: out of range: year -1000000000")
}

func TestCalendarDateFromStandardDate(t *testing.T) {
	t.Parallel()

	for _, loc := range testZones() {
		for _, ms := range testMillis() {
			loc, ms := loc, ms
			t.Run(fmt.Sprintf("%v_%v", loc, ms), func(t *testing.T) {
				t.Parallel()
				a := assert.New(t)

				d := stdDate(t, ms, loc)
				local := d.Local()
				date := CalendarDateFromStandardDate(d)
				a.Equal(NewCalendarDate(local.Year, local.Month, local.Day), date)

				// Local digits become UTC midnight.
				ctx := stddate.ContextWithTZ(context.Background(), loc)
				std, err := date.ToStandardDate(ctx)
				require.NoError(t, err)
				a.Equal(
					stddate.Fields{Year: local.Year, Month: local.Month, Day: local.Day},
					std.UTC(),
				)
			})
		}
	}
}

func TestCalendarDateInvalid(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		src  string
	}{
		{"garbage", "i am not a date"},
		{"short_year", "202-03-02"},
		{"five_digit_unsigned", "20200-03-02"},
		{"short_signed", "+20200-03-02"},
		{"single_month", "2020-3-02"},
		{"with_time", "2020-03-02T00:00:00"},
		{"overflow", "+99999999999999999999-01-01"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseCalendarDate(tc.src)
			require.EqualError(t, err, fmt.Sprintf("temporal: Cannot parse %q as CalendarDate", tc.src))
			require.ErrorIs(t, err, ErrTemporal)
		})
	}

	d := new(CalendarDate)
	err := d.UnmarshalJSON([]byte(`42`))
	require.EqualError(t, err, "temporal: Cannot parse 42 as CalendarDate")
	require.ErrorIs(t, err, ErrTemporal)
	err = d.UnmarshalJSON([]byte(`"nope"`))
	require.ErrorIs(t, err, ErrTemporal)
}
