package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		obj    any
		stdDay bool
	}{
		{"date", &CalendarDate{}, true},
		{"local_time", &LocalTime{}, true},
		{"zoned_time", &ZonedTime{}, true},
		{"local_date_time", &LocalDateTime{}, true},
		{"zoned_date_time", &ZonedDateTime{}, true},
		{"duration", &Duration{}, false},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			a.Implements((*Value)(nil), tc.obj)
			a.Implements((*json.Marshaler)(nil), tc.obj)
			a.Implements((*json.Unmarshaler)(nil), tc.obj)
			if tc.stdDay {
				a.Implements((*StandardDater)(nil), tc.obj)
			} else {
				a.NotImplements((*StandardDater)(nil), tc.obj)
			}
		})
	}
}

func TestConversionError(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	err := conversionError(NewCalendarDate(2020, 3, 2), ErrOutOfRange)
	a.ErrorIs(err, ErrTemporal)
	a.ErrorIs(err, ErrOutOfRange)
	a.EqualError(err, "temporal: cannot convert 2020-03-02 to a standard date: out of range")
}
