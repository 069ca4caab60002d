package domain

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

type match struct {
	path string
	err  error
}

// expand resolves pattern against the filesystem. Matches come in lexical
// walk order; a path that could not be walked is reported as a match with a
// non-nil err. The static base of the pattern is never matched itself and
// symbolic links below it are not followed. A trailing slash restricts the
// pattern to directories.
func expand(ctx context.Context, pattern string) ([]match, error) {
	p := filepath.ToSlash(pattern)

	dirsOnly := len(p) > 1 && strings.HasSuffix(p, "/")
	if dirsOnly {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}

	if !doublestar.ValidatePattern(p) {
		return nil, doublestar.ErrBadPattern
	}

	base, rest := doublestar.SplitPattern(p)

	root := filepath.FromSlash(base)
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		// follow the base itself when it's a symlink to a directory
		root += string(filepath.Separator)
	}

	maxDepth := -1
	if !strings.Contains(rest, "**") {
		maxDepth = strings.Count(rest, "/") + 1
	}

	var matches []match

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			missing := os.IsNotExist(err) || (path == root && errors.Is(err, syscall.ENOTDIR))
			if !missing {
				matches = append(matches, match{path: path, err: err})
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		ok, matchErr := doublestar.Match(rest, rel)
		if matchErr != nil {
			return matchErr
		}
		if ok && (!dirsOnly || d.IsDir()) {
			matches = append(matches, match{path: filepath.Join(filepath.FromSlash(base), filepath.FromSlash(rel))})
		}

		if d.IsDir() && maxDepth >= 0 && strings.Count(rel, "/")+1 >= maxDepth {
			return fs.SkipDir
		}

		return nil
	})

	return matches, err
}
