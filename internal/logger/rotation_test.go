package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateBasedRotation(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, time.October, 19, 23, 59, 0, 0, time.UTC)

	l, err := newLogger(Config{
		Enabled:         true,
		Directory:       dir,
		FilenamePattern: "bsdate-%Y%m%d.log",
		Level:           "info",
	}, &bytes.Buffer{}, func() time.Time { return now })
	require.NoError(t, err)
	defer l.Close()

	l.Info("before midnight")
	now = now.Add(2 * time.Minute)
	l.Info("after midnight")

	assert.Equal(t, filepath.Join(dir, "bsdate-20261020.log"), l.FileName())

	first, err := os.ReadFile(filepath.Join(dir, "bsdate-20261019.log"))
	require.NoError(t, err)
	assert.Contains(t, string(first), "before midnight")
	assert.NotContains(t, string(first), "after midnight")
}

func TestSizeBasedRotation(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

	l, err := newLogger(Config{
		Enabled:         true,
		Directory:       dir,
		FilenamePattern: "bsdate-%Y%m%d.log",
		Level:           "info",
		MaxSizeMB:       1,
	}, &bytes.Buffer{}, func() time.Time { return now })
	require.NoError(t, err)
	defer l.Close()

	l.Info(strings.Repeat("x", 1024*1024))
	l.Info("fresh file")

	current, err := os.ReadFile(l.FileName())
	require.NoError(t, err)
	assert.Contains(t, string(current), "fresh file")
	assert.Less(t, len(current), 1024)

	_, err = os.Stat(filepath.Join(dir, "bsdate-20261019-100000.log"))
	assert.NoError(t, err, "full file should be renamed aside")
}

func TestCleanOldFiles(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		day := base.AddDate(0, 0, i)
		path := filepath.Join(dir, generateLogFilename("bsdate-%Y%m%d.log", day))
		require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))
		require.NoError(t, os.Chtimes(path, day, day))
	}
	unrelated := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("keep"), 0644))

	now := base.AddDate(0, 0, 10)
	l, err := newLogger(Config{
		Enabled:         true,
		Directory:       dir,
		FilenamePattern: "bsdate-%Y%m%d.log",
		MaxFiles:        3,
	}, &bytes.Buffer{}, func() time.Time { return now })
	require.NoError(t, err)
	defer l.Close()

	l.mu.Lock()
	l.cleanOldFiles()
	l.mu.Unlock()

	matches, err := filepath.Glob(filepath.Join(dir, "bsdate-*.log"))
	require.NoError(t, err)
	assert.Len(t, matches, 3)
	assert.Contains(t, matches, l.fileName)
	assert.Contains(t, matches, filepath.Join(dir, "bsdate-20261005.log"))
	assert.Contains(t, matches, filepath.Join(dir, "bsdate-20261004.log"))

	_, err = os.Stat(unrelated)
	assert.NoError(t, err)
}

func TestRotatedName(t *testing.T) {
	at := time.Date(2026, time.October, 19, 8, 9, 10, 0, time.UTC)
	tests := []struct {
		path string
		want string
	}{
		{"/logs/bsdate-20261019.log", "/logs/bsdate-20261019-080910.log"},
		{"/logs/bsdate", "/logs/bsdate-080910"},
	}

	for _, tt := range tests {
		if got := rotatedName(tt.path, at); got != tt.want {
			t.Errorf("rotatedName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestGlobPattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"", "bsdate-***.log"},
		{"app-%Y-%m-%d-%H%M.log", "app-*-*-*-**.log"},
	}

	for _, tt := range tests {
		if got := globPattern(tt.pattern); got != tt.want {
			t.Errorf("globPattern(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}
