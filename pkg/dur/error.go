package dur

import "fmt"

type ErrorKind int

const (
	KindIllegalChar ErrorKind = iota
	KindEmpty
	KindUnexpectedToken
	KindUnknownUnit
)

// Error describes why a duration expression could not be parsed. Line and Col
// are 0-based and point at the offending character.
type Error struct {
	Kind ErrorKind

	Char     rune   // KindIllegalChar
	Unit     string // KindUnknownUnit
	Expected string // KindUnexpectedToken
	Got      string // KindUnexpectedToken

	Line int
	Col  int
}

func (e *Error) Error() string {
	var msg string

	switch e.Kind {
	case KindIllegalChar:
		msg = fmt.Sprintf("illegal char '%c'", e.Char)
	case KindEmpty:
		msg = "empty input"
	case KindUnexpectedToken:
		msg = fmt.Sprintf("unexpected token (expected %s, got %s)", e.Expected, e.Got)
	case KindUnknownUnit:
		msg = fmt.Sprintf("unknown unit `%s`", e.Unit)
	default:
		msg = "invalid duration"
	}

	return fmt.Sprintf("%d:%d | %s", e.Line, e.Col, msg)
}

func illegalChar(c rune, p pos) *Error {
	return &Error{Kind: KindIllegalChar, Char: c, Line: p.line, Col: p.col}
}

func unknownUnit(s string, p pos) *Error {
	return &Error{Kind: KindUnknownUnit, Unit: s, Line: p.line, Col: p.col}
}

func unexpectedToken(expected, got string, p pos) *Error {
	return &Error{Kind: KindUnexpectedToken, Expected: expected, Got: got, Line: p.line, Col: p.col}
}

func empty() *Error {
	return &Error{Kind: KindEmpty}
}
