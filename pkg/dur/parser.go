// Package dur parses human readable duration expressions such as
// "1y 5hours 10min" or "4h2m".
//
// An expression is a sequence of <integer><unit> pairs whose values are
// added up. A bare integer is accepted as the last token and means seconds.
// A year is exactly 365 days.
package dur

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Parse converts a duration expression into a time.Duration. Errors are
// always of type *Error.
func Parse(s string) (time.Duration, error) {
	l := newLexer(s)

	var total time.Duration
	seen := false

	for {
		t, ok, err := l.next()
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
		seen = true

		if t.kind == tokenUnit {
			return 0, unexpectedToken(tokenNumber.String(), t.kind.String(), t.pos)
		}

		next, ok, err := l.next()
		if err != nil {
			return 0, err
		}
		if !ok {
			total = add(total, unitSeconds.scale(t.num))
			break
		}

		if next.kind != tokenUnit {
			return 0, unexpectedToken(tokenUnit.String(), next.kind.String(), next.pos)
		}

		total = add(total, next.unit.scale(t.num))
	}

	if !seen {
		return 0, empty()
	}

	return total, nil
}

func add(a, b time.Duration) time.Duration {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

var formatOrder = []struct {
	u    unit
	name string
}{
	{unitYears, "y"},
	{unitDays, "d"},
	{unitHours, "h"},
	{unitMinutes, "m"},
	{unitSeconds, "s"},
	{unitMillis, "ms"},
	{unitMicros, "us"},
	{unitNanos, "ns"},
}

// Format renders d in the expression grammar, largest units first, so that
// Parse(Format(d)) == d for every non-negative d.
func Format(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	var sb strings.Builder
	for _, f := range formatOrder {
		scale := unitScale[f.u]
		if n := d / scale; n > 0 {
			sb.WriteString(strconv.FormatInt(int64(n), 10))
			sb.WriteString(f.name)
			d -= n * scale
		}
	}

	return sb.String()
}
