package domain_test

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurykabanov/fsgc/pkg/domain"
	"github.com/yurykabanov/fsgc/pkg/fsys"
)

// region failingFs
type failingFs struct {
	*fsys.Local

	statErrors   map[string]error
	removeErrors map[string]error
}

func (f *failingFs) Stat(path string) (domain.Entry, error) {
	if err, ok := f.statErrors[path]; ok {
		return domain.Entry{}, err
	}
	return f.Local.Stat(path)
}

func (f *failingFs) Remove(path string) error {
	if err, ok := f.removeErrors[path]; ok {
		return err
	}
	return f.Local.Remove(path)
}

// endregion

var modifiedOnly = domain.Rule{Age: 24 * time.Hour, Modified: true}

func writeAged(t *testing.T, path string, age time.Duration) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, ioutil.WriteFile(path, []byte(path), 0644))
	setAge(t, path, age)
}

func setAge(t *testing.T, path string, age time.Duration) {
	t.Helper()

	ts := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, ts, ts))
}

func TestTarget_Clear(t *testing.T) {
	dir := t.TempDir()

	writeAged(t, filepath.Join(dir, "old.log"), 48*time.Hour)
	writeAged(t, filepath.Join(dir, "new.log"), time.Hour)
	writeAged(t, filepath.Join(dir, "old.txt"), 48*time.Hour)

	target := domain.NewTarget(filepath.Join(dir, "*.log"), modifiedOnly, fsys.New())

	stats, err := target.Clear(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, domain.Stats{Matched: 2, Deleted: 1, Kept: 1}, stats)
	assert.NoFileExists(t, filepath.Join(dir, "old.log"))
	assert.FileExists(t, filepath.Join(dir, "new.log"))
	assert.FileExists(t, filepath.Join(dir, "old.txt"))
}

func TestTarget_Clear_Directories(t *testing.T) {
	dir := t.TempDir()

	writeAged(t, filepath.Join(dir, "build-1", "nested", "artifact.bin"), time.Minute)
	setAge(t, filepath.Join(dir, "build-1"), 48*time.Hour)
	writeAged(t, filepath.Join(dir, "build-2", "artifact.bin"), time.Minute)

	target := domain.NewTarget(filepath.Join(dir, "build-*"), modifiedOnly, fsys.New())

	stats, err := target.Clear(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, 1, stats.Deleted)
	assert.NoDirExists(t, filepath.Join(dir, "build-1"))
	assert.DirExists(t, filepath.Join(dir, "build-2"))
}

func TestTarget_Clear_RecursivePatternSkipsRemovedChildren(t *testing.T) {
	dir := t.TempDir()

	writeAged(t, filepath.Join(dir, "cache", "a", "x.tmp"), 48*time.Hour)
	setAge(t, filepath.Join(dir, "cache", "a"), 48*time.Hour)

	target := domain.NewTarget(filepath.Join(dir, "cache", "**"), modifiedOnly, fsys.New())

	stats, err := target.Clear(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, domain.Stats{Matched: 2, Deleted: 1}, stats)
	assert.NoDirExists(t, filepath.Join(dir, "cache", "a"))
	assert.DirExists(t, filepath.Join(dir, "cache"))
}

func TestTarget_Clear_NoMatches(t *testing.T) {
	target := domain.NewTarget(filepath.Join(t.TempDir(), "*.nothing"), modifiedOnly, fsys.New())

	stats, err := target.Clear(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, domain.Stats{}, stats)
}

func TestTarget_Clear_BadPattern(t *testing.T) {
	dir := t.TempDir()
	writeAged(t, filepath.Join(dir, "old.log"), 48*time.Hour)

	target := domain.NewTarget(filepath.Join(dir, "[*.log"), modifiedOnly, fsys.New())

	stats, err := target.Clear(context.Background())

	require.Error(t, err)

	clearErr, ok := err.(*domain.Error)
	require.True(t, ok)
	assert.Equal(t, domain.KindPattern, clearErr.Kind)
	assert.Equal(t, 1, stats.Failed)
	assert.FileExists(t, filepath.Join(dir, "old.log"))
}

func TestTarget_Clear_FailureDoesNotStopOthers(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "a.log")
	b := filepath.Join(dir, "b.log")
	c := filepath.Join(dir, "c.log")
	d := filepath.Join(dir, "d.log")

	for _, p := range []string{a, b, c, d} {
		writeAged(t, p, 48*time.Hour)
	}

	fs := &failingFs{
		Local:        fsys.New(),
		statErrors:   map[string]error{a: os.ErrPermission},
		removeErrors: map[string]error{c: os.ErrPermission},
	}

	target := domain.NewTarget(filepath.Join(dir, "*.log"), modifiedOnly, fs)

	stats, err := target.Clear(context.Background())

	require.Error(t, err)

	clearErr, ok := err.(*domain.Error)
	require.True(t, ok)
	assert.Equal(t, domain.KindMany, clearErr.Kind)

	leaves := clearErr.Flatten()
	require.Len(t, leaves, 2)
	assert.Equal(t, a, leaves[0].Path)
	assert.Equal(t, domain.KindIO, leaves[0].Kind)
	assert.Equal(t, c, leaves[1].Path)

	assert.Equal(t, domain.Stats{Matched: 4, Deleted: 2, Failed: 2}, stats)
	assert.FileExists(t, a)
	assert.NoFileExists(t, b)
	assert.FileExists(t, c)
	assert.NoFileExists(t, d)
}

func TestTarget_Clear_UnreadableDirectoryDoesNotStopOthers(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}

	dir := t.TempDir()

	a := filepath.Join(dir, "a.log")
	z := filepath.Join(dir, "z.log")
	locked := filepath.Join(dir, "locked")

	writeAged(t, a, 48*time.Hour)
	writeAged(t, z, 48*time.Hour)
	writeAged(t, filepath.Join(locked, "hidden.log"), 48*time.Hour)

	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	target := domain.NewTarget(filepath.Join(dir, "**", "*.log"), modifiedOnly, fsys.New())

	stats, err := target.Clear(context.Background())

	require.Error(t, err)

	clearErr, ok := err.(*domain.Error)
	require.True(t, ok)

	leaves := clearErr.Flatten()
	require.Len(t, leaves, 1)
	assert.Equal(t, domain.KindGlob, leaves[0].Kind)
	assert.Equal(t, locked, leaves[0].Path)

	assert.Equal(t, domain.Stats{Matched: 2, Deleted: 2, Failed: 1}, stats)
	assert.NoFileExists(t, a)
	assert.NoFileExists(t, z)
}

func TestTarget_Clear_Idempotent(t *testing.T) {
	dir := t.TempDir()

	writeAged(t, filepath.Join(dir, "old.log"), 48*time.Hour)
	writeAged(t, filepath.Join(dir, "new.log"), time.Hour)

	target := domain.NewTarget(filepath.Join(dir, "*.log"), modifiedOnly, fsys.New())

	_, err := target.Clear(context.Background())
	require.Nil(t, err)

	stats, err := target.Clear(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, domain.Stats{Matched: 1, Kept: 1}, stats)
	assert.FileExists(t, filepath.Join(dir, "new.log"))
}

func TestTarget_Clear_DisabledRuleKeepsEverything(t *testing.T) {
	dir := t.TempDir()
	writeAged(t, filepath.Join(dir, "ancient.log"), 10000*time.Hour)

	target := domain.NewTarget(filepath.Join(dir, "*"), domain.Rule{Age: time.Nanosecond}, fsys.New())

	stats, err := target.Clear(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, 1, stats.Kept)
	assert.FileExists(t, filepath.Join(dir, "ancient.log"))
}
