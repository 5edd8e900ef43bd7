// Package main converts a ZonedDateTime literal to a standard date in order
// to test WASM compilation.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/theory/dbtime/temporal"
	"github.com/theory/dbtime/temporal/stddate"
)

func main() {
	ctx := stddate.ContextWithTZ(context.Background(), time.UTC)

	// Parse a zoned date time literal.
	val, _ := temporal.Parse(temporal.ZonedDateTimeKind, "2022-06-16T11:19:25.004+02:00[Europe/Stockholm]")

	// Convert it to a standard date.
	std, _ := temporal.ToStandardDate(ctx, val)

	// Show the result.
	//nolint:errchkjson
	items, _ := json.Marshal(map[string]any{"value": val, "standardDate": std.String()})

	//nolint:forbidigo
	fmt.Printf("%s\n", items)
}
