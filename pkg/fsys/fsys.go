package fsys

import (
	"os"

	"github.com/djherbis/times"

	"github.com/yurykabanov/fsgc/pkg/domain"
)

// Local is the real, OS backed filesystem.
type Local struct{}

func New() *Local {
	return &Local{}
}

func (l *Local) Stat(path string) (domain.Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return domain.Entry{}, err
	}

	ts, err := times.Lstat(path)
	if err != nil {
		return domain.Entry{}, err
	}

	entry := domain.Entry{
		IsDir: info.IsDir(),
		Timestamps: domain.Timestamps{
			Modified: ts.ModTime(),
			Accessed: ts.AccessTime(),
		},
	}

	if ts.HasBirthTime() {
		entry.Created = ts.BirthTime()
	}

	return entry, nil
}

func (l *Local) Remove(path string) error {
	return os.Remove(path)
}

func (l *Local) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
