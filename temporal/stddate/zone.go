package stddate

import (
	"context"
	"time"
)

// key is an unexported type for keys defined in this package. This prevents
// collisions with keys defined in other packages.
type key int

// tzKey is the key for time.Location values in Contexts. It is unexported;
// clients use ContextWithTZ and TZFromContext instead of using this key
// directly.
const tzKey key = 0

// ContextWithTZ returns a new Context that carries tz as the ambient local
// time zone for conversions to Date.
func ContextWithTZ(ctx context.Context, tz *time.Location) context.Context {
	if tz == nil {
		return ctx
	}
	return context.WithValue(ctx, tzKey, tz)
}

// TZFromContext returns the time.Location value stored in ctx or
// [time.Local], the host environment's zone.
func TZFromContext(ctx context.Context) *time.Location {
	tz, ok := ctx.Value(tzKey).(*time.Location)
	if ok {
		return tz
	}
	//nolint:gosmopolitan // The host zone is the documented default.
	return time.Local
}

// LocalOffset returns the offset in seconds east of UTC in effect at the
// instant ms in the ambient zone of ctx.
func LocalOffset(ctx context.Context, ms int64) int {
	_, off := time.UnixMilli(ms).In(TZFromContext(ctx)).Zone()
	return off
}
