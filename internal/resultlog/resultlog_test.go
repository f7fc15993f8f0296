package resultlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(ts ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := ts[i]
		if i < len(ts)-1 {
			i++
		}
		return t
	}
}

func TestFormatEntry(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 2, 0, time.Local)
	got := FormatEntry(ts, "=== Results ===\nPace: 5:00 per km")
	assert.Equal(t, "[2024-03-09 07:05:02]\n=== Results ===\nPace: 5:00 per km\n\n", got)
}

func TestSave_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	first := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	second := time.Date(2024, 1, 2, 9, 30, 15, 0, time.Local)

	w := New(path, true)
	w.Now = fixedClock(first, second)

	require.NoError(t, w.Save("run one"))
	require.NoError(t, w.Save("run two"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"[2024-01-01 08:00:00]\nrun one\n\n[2024-01-02 09:30:15]\nrun two\n\n",
		string(data))

	n, err := w.Entries()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	size, err := w.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), size)
}

func TestSave_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, os.WriteFile(path, []byte("old contents\n"), 0644))

	w := New(path, false)
	w.Now = fixedClock(time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local))
	require.NoError(t, w.Save("fresh"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2024-05-06 07:08:09]\nfresh\n\n", string(data))
}

func TestSave_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "results.txt")
	w := New(path, true)
	require.NoError(t, w.Save("x"))
	assert.FileExists(t, path)
}

func TestSave_Error(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, true) // a directory cannot be opened for writing
	err := w.Save("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening results file")
}

func TestNew_DefaultPath(t *testing.T) {
	w := New("", true)
	assert.Equal(t, DefaultFile, w.Path)
	assert.True(t, w.Append)
	assert.NotNil(t, w.Now)
}

func TestMissingFile(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "none.txt"), true)

	n, err := w.Entries()
	require.NoError(t, err)
	assert.Zero(t, n)

	size, err := w.Size()
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestEntries_IgnoresIndentedBrackets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	content := "[2024-01-01 08:00:00]\n  Easy [green]: 5:45 - 7:00 per km (approx)\n[not a timestamp]\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	n, err := New(path, true).Entries()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
