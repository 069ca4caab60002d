package domain

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	// Reading metadata of, or removing, a matched entry failed
	KindIO ErrorKind = iota

	// Walking the filesystem while expanding a pattern failed on some path
	KindGlob

	// The pattern itself is not valid glob syntax
	KindPattern

	// Several failures of a single clearing pass
	KindMany
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindGlob:
		return "glob"
	case KindPattern:
		return "pattern"
	case KindMany:
		return "many"
	}
	return "unknown"
}

// Error is either a leaf failure bound to a path (or pattern), or an
// aggregate of other errors when Kind is KindMany.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
	Errs []*Error
}

func ioError(path string, err error) *Error {
	return &Error{Kind: KindIO, Path: path, Err: err}
}

func globError(path string, err error) *Error {
	return &Error{Kind: KindGlob, Path: path, Err: err}
}

func patternError(pattern string, err error) *Error {
	return &Error{Kind: KindPattern, Path: pattern, Err: err}
}

func Many(errs ...*Error) *Error {
	return &Error{Kind: KindMany, Errs: errs}
}

func (e *Error) Error() string {
	if e.Kind != KindMany {
		var pathErr *fs.PathError
		if e.Path == "" || errors.As(e.Err, &pathErr) {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}

	var sb strings.Builder
	for _, leaf := range e.Flatten() {
		sb.WriteString("-  ")
		sb.WriteString(leaf.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Flatten returns the leaf failures in encounter order, splicing nested
// aggregates in place of themselves. A leaf flattens to itself.
func (e *Error) Flatten() []*Error {
	if e.Kind != KindMany {
		return []*Error{e}
	}

	var leaves []*Error
	for _, child := range e.Errs {
		if child == nil {
			continue
		}
		leaves = append(leaves, child.Flatten()...)
	}
	return leaves
}
