package dur

import (
	"math"
	"strings"
	"time"
	"unicode"
)

type unit int

const (
	unitNanos unit = iota
	unitMicros
	unitMillis
	unitSeconds
	unitMinutes
	unitHours
	unitDays
	unitWeeks
	unitYears
)

const (
	day  = 24 * time.Hour
	week = 7 * day
	year = 365 * day
)

var unitScale = [...]time.Duration{
	unitNanos:   time.Nanosecond,
	unitMicros:  time.Microsecond,
	unitMillis:  time.Millisecond,
	unitSeconds: time.Second,
	unitMinutes: time.Minute,
	unitHours:   time.Hour,
	unitDays:    day,
	unitWeeks:   week,
	unitYears:   year,
}

// Keys are lower-cased spellings.
var units = map[string]unit{
	"ns": unitNanos, "nanos": unitNanos, "nanosecond": unitNanos, "nanoseconds": unitNanos,

	"µs": unitMicros, "μs": unitMicros, "us": unitMicros, "micros": unitMicros, "microsecond": unitMicros, "microseconds": unitMicros,

	"ms": unitMillis, "millis": unitMillis, "millisecond": unitMillis, "milliseconds": unitMillis,

	"s": unitSeconds, "sec": unitSeconds, "secs": unitSeconds, "second": unitSeconds, "seconds": unitSeconds,

	"m": unitMinutes, "min": unitMinutes, "mins": unitMinutes, "minute": unitMinutes, "minutes": unitMinutes,

	"h": unitHours, "hr": unitHours, "hrs": unitHours, "hour": unitHours, "hours": unitHours,

	"d": unitDays, "day": unitDays, "days": unitDays,

	"w": unitWeeks, "week": unitWeeks, "weeks": unitWeeks,

	"y": unitYears, "yr": unitYears, "yrs": unitYears, "year": unitYears, "years": unitYears,
}

// scale returns n units, saturating at the largest representable duration.
func (u unit) scale(n uint64) time.Duration {
	s := uint64(unitScale[u])
	if n > uint64(math.MaxInt64)/s {
		return math.MaxInt64
	}
	return time.Duration(n * s)
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenUnit
)

func (k tokenKind) String() string {
	if k == tokenUnit {
		return "Unit"
	}
	return "Number"
}

type pos struct {
	line, col int
}

type token struct {
	kind tokenKind
	num  uint64
	unit unit
	pos  pos
}

type lexer struct {
	input []rune
	off   int
	line  int
	col   int
}

func newLexer(s string) *lexer {
	return &lexer{input: []rune(s)}
}

// next returns the next token. ok is false once the input is exhausted.
func (l *lexer) next() (t token, ok bool, err error) {
	l.skipWhitespace()

	if l.off >= len(l.input) {
		return token{}, false, nil
	}

	c := l.input[l.off]

	switch {
	case isDigit(c):
		return l.number(), true, nil
	case unicode.IsLetter(c):
		t, err = l.unit()
		return t, err == nil, err
	default:
		return token{}, false, illegalChar(c, l.pos())
	}
}

func (l *lexer) pos() pos {
	return pos{line: l.line, col: l.col}
}

func (l *lexer) skipWhitespace() {
	for l.off < len(l.input) && unicode.IsSpace(l.input[l.off]) {
		switch l.input[l.off] {
		case '\n':
			l.line++
			l.col = 0
		case '\r':
		default:
			l.col++
		}
		l.off++
	}
}

func (l *lexer) number() token {
	start := l.pos()

	var n uint64
	overflow := false

	for l.off < len(l.input) && isDigit(l.input[l.off]) {
		d := uint64(l.input[l.off] - '0')
		if n > (math.MaxUint64-d)/10 {
			overflow = true
		} else {
			n = n*10 + d
		}
		l.off++
		l.col++
	}

	if overflow {
		n = math.MaxUint64
	}

	return token{kind: tokenNumber, num: n, pos: start}
}

func (l *lexer) unit() (token, error) {
	start := l.pos()

	var sb strings.Builder
	for l.off < len(l.input) && unicode.IsLetter(l.input[l.off]) {
		sb.WriteRune(l.input[l.off])
		l.off++
		l.col++
	}

	s := strings.ToLower(sb.String())

	u, ok := units[s]
	if !ok {
		return token{}, unknownUnit(s, start)
	}

	return token{kind: tokenUnit, unit: u, pos: start}, nil
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
