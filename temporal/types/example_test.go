//nolint:godot
package types_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/theory/dbtime/temporal/stddate"
	"github.com/theory/dbtime/temporal/types"
)

// A ZonedDateTime with an offset denotes an absolute instant, so it
// converts exactly whatever zone it names.
func ExampleZonedDateTime_ToStandardDate() {
	ctx := stddate.ContextWithTZ(context.Background(), time.UTC)
	dt := types.NewZonedDateTime(
		2022, 6, 16, 11, 19, 25, 4_000_004, 2*3600, "Europe/Stockholm",
	)

	std, err := dt.ToStandardDate(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(dt)
	fmt.Println(std)
	// Output:
	// 2022-06-16T11:19:25.004000004+02:00[Europe/Stockholm]
	// 2022-06-16T09:19:25.004Z
}

// Without an offset, converting requires resolving the zone, which the
// types package never does.
func Example_unresolvableZone() {
	dt := types.NewZonedDateTimeWithZoneID(
		2020, 12, 15, 12, 2, 3, 4_000_000, "Europe/Stockholm",
	)

	_, err := dt.ToStandardDate(context.Background())
	fmt.Println(errors.Is(err, types.ErrUnresolvableZone))
	// Output: true
}

// CalendarDate converts to midnight UTC, read in the ambient zone.
func ExampleCalendarDate_ToStandardDate() {
	tz, err := time.LoadLocation("America/New_York")
	if err != nil {
		log.Fatal(err)
	}
	ctx := stddate.ContextWithTZ(context.Background(), tz)

	std, err := types.NewCalendarDate(2020, 3, 2).ToStandardDate(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(std.UTC())
	fmt.Println(std)
	// Output:
	// {2020 3 2 0 0 0 0}
	// 2020-03-01T19:00:00.000-05:00
}

// LocalDateTime reads the local wall clock of a host date and converts
// back to the same instant.
func ExampleLocalDateTimeFromStandardDate() {
	tz, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		log.Fatal(err)
	}
	ctx := stddate.ContextWithTZ(context.Background(), tz)

	std, err := stddate.UnixMilli(1_655_371_165_004, tz)
	if err != nil {
		log.Fatal(err)
	}
	dt := types.LocalDateTimeFromStandardDate(std)
	back, err := dt.ToStandardDate(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(dt)
	fmt.Println(back.UnixMilli())
	// Output:
	// 2022-06-16T11:19:25.004000000
	// 1655371165004
}

// Extended years carry a sign and at least six digits.
func ExampleCalendarDate_String() {
	fmt.Println(types.NewCalendarDate(2020, 3, 2))
	fmt.Println(types.NewCalendarDate(-1, 6, 30))
	fmt.Println(types.NewCalendarDate(275760, 9, 13))
	// Output:
	// 2020-03-02
	// -000001-06-30
	// +275760-09-13
}

// Negative seconds with nanoseconds render as a single decimal.
func ExampleDuration_String() {
	fmt.Println(types.NewDuration(14, 400, 90_000, 0))
	fmt.Println(types.NewDuration(0, 0, -2, 500_000_000))
	// Output:
	// P14M400DT90000S
	// P0M0DT-1.500000000S
}

// Predicates classify values of any type without panicking.
func ExampleIsCalendarDate() {
	date := types.NewCalendarDate(2020, 3, 2)
	fmt.Println(types.IsCalendarDate(date))
	fmt.Println(types.IsCalendarDate(&date))
	fmt.Println(types.IsCalendarDate((*types.CalendarDate)(nil)))
	fmt.Println(types.IsLocalDateTime(date))
	fmt.Println(types.IsCalendarDate(struct{ Year, Month, Day int }{2020, 3, 2}))
	// Output:
	// true
	// true
	// false
	// false
	// false
}
