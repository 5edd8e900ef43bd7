// Package playground converts between host dates and temporal values on
// behalf of the temporal command and the Wasm playground.
package playground

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/theory/dbtime/temporal"
	"github.com/theory/dbtime/temporal/stddate"
)

// Options for Execute, combined as a bitmask.
const (
	OptToStandard int = 1 << iota
	OptLocalTZ
	OptIndent
)

// ErrInput wraps errors parsing conversion input.
var ErrInput = errors.New("input")

// Result describes a conversion. Value holds the temporal value and
// StandardDate its host date form. RoundTrip holds the result of converting
// back in the other direction: a host date when converting from one, and a
// temporal value when converting from a temporal literal.
type Result struct {
	Kind         string `json:"kind"`
	Value        string `json:"value"`
	StandardDate string `json:"standardDate"`
	EpochMillis  int64  `json:"epochMillis"`
	RoundTrip    string `json:"roundTrip,omitempty"`
}

// Convert converts input according to kind. When toStandard is true input
// must be the canonical string form of kind, which is converted to a host
// date. Otherwise input is a host instant, either RFC 3339 or integer epoch
// milliseconds, which is converted to kind. The ambient zone in ctx
// determines the local fields of host dates.
func Convert(ctx context.Context, input string, kind temporal.Kind, toStandard bool) (*Result, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().
		Str("input", input).
		Stringer("kind", kind).
		Bool("to_standard", toStandard).
		Stringer("tz", stddate.TZFromContext(ctx)).
		Msg("convert")

	if toStandard {
		return fromLiteral(ctx, input, kind)
	}
	return fromInstant(ctx, input, kind)
}

// fromLiteral parses input as kind and converts it to a host date.
func fromLiteral(ctx context.Context, input string, kind temporal.Kind) (*Result, error) {
	val, err := temporal.Parse(kind, input)
	if err != nil {
		return nil, err
	}
	std, err := temporal.ToStandardDate(ctx, val)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Kind:         kind.String(),
		Value:        val.String(),
		StandardDate: std.String(),
		EpochMillis:  std.UnixMilli(),
	}
	if back, err := temporal.FromStandardDate(kind, std); err == nil {
		res.RoundTrip = back.String()
	}
	zerolog.Ctx(ctx).Debug().Str("result", res.StandardDate).Msg("converted literal")
	return res, nil
}

// fromInstant parses input as a host instant and converts it to kind.
func fromInstant(ctx context.Context, input string, kind temporal.Kind) (*Result, error) {
	std, err := ParseInstant(input, stddate.TZFromContext(ctx))
	if err != nil {
		return nil, err
	}
	val, err := temporal.FromStandardDate(kind, std)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Kind:         kind.String(),
		Value:        val.String(),
		StandardDate: std.String(),
		EpochMillis:  std.UnixMilli(),
	}
	back, err := val.ToStandardDate(ctx)
	if err != nil {
		// Values read near the host range limits may not convert back.
		zerolog.Ctx(ctx).Warn().Err(err).Msg("round trip")
	} else {
		res.RoundTrip = back.String()
	}
	zerolog.Ctx(ctx).Debug().Str("result", res.Value).Msg("converted instant")
	return res, nil
}

// ParseInstant parses input as integer epoch milliseconds or as an RFC 3339
// timestamp, and returns the host date read in loc.
func ParseInstant(input string, loc *time.Location) (stddate.Date, error) {
	input = strings.TrimSpace(input)
	if ms, err := strconv.ParseInt(input, 10, 64); err == nil {
		d, err := stddate.UnixMilli(ms, loc)
		if err != nil {
			return stddate.Date{}, fmt.Errorf("%w: %w", ErrInput, err)
		}
		return d, nil
	}

	t, err := time.Parse(time.RFC3339Nano, input)
	if err != nil {
		return stddate.Date{}, fmt.Errorf("%w: cannot parse %q as an instant", ErrInput, input)
	}
	d, err := stddate.FromTime(t.In(loc))
	if err != nil {
		return stddate.Date{}, fmt.Errorf("%w: %w", ErrInput, err)
	}
	return d, nil
}

// Render encodes res as JSON, indented if indent is true.
func Render(res *Result, indent bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Execute converts input as described by Convert and returns the rendered
// result, HTML-escaped for display in a browser. Errors are returned as
// strings starting with "Error".
func Execute(ctx context.Context, input, kindName string, opts int) string {
	kind, err := temporal.ParseKind(kindName)
	if err != nil {
		return fmt.Sprintf("Error %v", err)
	}

	// Use local time zone if requested.
	if opts&OptLocalTZ == OptLocalTZ {
		//nolint:gosmopolitan // We want the browser time.
		ctx = stddate.ContextWithTZ(ctx, time.Local)
	} else {
		ctx = stddate.ContextWithTZ(ctx, time.UTC)
	}

	res, err := Convert(ctx, input, kind, opts&OptToStandard == OptToStandard)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("convert")
		return fmt.Sprintf("Error %v", err)
	}

	out, err := Render(res, opts&OptIndent == OptIndent)
	if err != nil {
		return fmt.Sprintf("Error rendering results: %v", err)
	}
	return html.EscapeString(out)
}
