package domain

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

type Entry struct {
	IsDir bool
	Timestamps
}

type Filesystem interface {
	// Stat describes path itself; symbolic links are not followed.
	Stat(path string) (Entry, error)
	Remove(path string) error
	RemoveAll(path string) error
}

// Stats summarize a single clearing pass.
type Stats struct {
	Matched int
	Deleted int
	Kept    int
	Failed  int
}

// Target binds a glob pattern to the rule deciding which of its matches are
// removed.
type Target struct {
	Pattern string
	Rule    Rule

	fs  Filesystem
	now func() time.Time
}

func NewTarget(pattern string, rule Rule, fs Filesystem) *Target {
	return &Target{
		Pattern: pattern,
		Rule:    rule,
		fs:      fs,
		now:     time.Now,
	}
}

// Clear removes every match of the pattern the rule considers old enough.
// Failures on single matches never stop the pass; they are returned together
// as a KindMany *Error. An invalid pattern yields a KindPattern *Error and
// nothing is touched.
func (t *Target) Clear(ctx context.Context) (Stats, error) {
	var stats Stats

	matches, err := expand(ctx, t.Pattern)
	if errors.Is(err, doublestar.ErrBadPattern) {
		stats.Failed = 1
		return stats, patternError(t.Pattern, err)
	}

	var errs []*Error
	if err != nil {
		errs = append(errs, globError(t.Pattern, err))
	}

	now := t.now()
	var removedDirs []string

	for _, m := range matches {
		if ctxErr := ctx.Err(); ctxErr != nil {
			errs = append(errs, globError(t.Pattern, ctxErr))
			break
		}

		if m.err != nil {
			errs = append(errs, globError(m.path, m.err))
			continue
		}

		stats.Matched++

		if within(m.path, removedDirs) {
			continue
		}

		entry, err := t.fs.Stat(m.path)
		if err != nil {
			errs = append(errs, ioError(m.path, err))
			continue
		}

		if !t.Rule.ShouldDeleteAt(entry.Timestamps, now) {
			stats.Kept++
			continue
		}

		if entry.IsDir {
			err = t.fs.RemoveAll(m.path)
		} else {
			err = t.fs.Remove(m.path)
		}
		if err != nil {
			errs = append(errs, ioError(m.path, err))
			continue
		}

		stats.Deleted++

		if entry.IsDir {
			removedDirs = append(removedDirs, m.path)
		}
	}

	stats.Failed = len(errs)

	if len(errs) == 0 {
		return stats, nil
	}

	return stats, Many(errs...)
}

func within(path string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
