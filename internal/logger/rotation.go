package logger

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// checkRotation rotates when the date in the filename changes or the file
// reaches MaxSizeMB. Callers hold l.mu.
func (l *Logger) checkRotation() error {
	if l.file == nil || !l.config.Enabled {
		return nil
	}

	maxSize := int64(l.config.MaxSizeMB) * 1024 * 1024
	if maxSize > 0 && l.fileSize >= maxSize {
		return l.rotate(true)
	}

	current := generateLogFilename(l.config.FilenamePattern, l.now())
	if filepath.Base(l.fileName) != current {
		return l.rotate(false)
	}
	return nil
}

// rotate closes the current file and opens the one for now. A full file is
// first renamed aside with a time suffix so the new file starts empty.
func (l *Logger) rotate(full bool) error {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	if full {
		if err := os.Rename(l.fileName, rotatedName(l.fileName, l.now())); err != nil {
			return err
		}
	}

	file, err := l.openLogFile()
	if err != nil {
		l.out = l.writers()
		return err
	}
	l.file = file
	l.out = l.writers()

	if l.config.MaxFiles > 0 {
		l.cleanOldFiles()
	}
	return nil
}

// rotatedName inserts -HHMMSS before the extension of path.
func rotatedName(path string, t time.Time) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + t.Format("-150405") + ext
}

// globPattern turns a filename pattern into a glob matching every file it
// has produced, including rotated ones.
func globPattern(pattern string) string {
	if pattern == "" {
		pattern = defaultFilenamePattern
	}
	return strings.NewReplacer("%Y", "*", "%m", "*", "%d", "*", "%H", "*", "%M", "*").Replace(pattern)
}

// cleanOldFiles keeps the MaxFiles newest log files.
func (l *Logger) cleanOldFiles() {
	logDir := filepath.Dir(l.fileName)
	matches, err := filepath.Glob(filepath.Join(logDir, globPattern(l.config.FilenamePattern)))
	if err != nil {
		return
	}

	type fileInfo struct {
		path    string
		modTime time.Time
	}

	files := make([]fileInfo, 0, len(matches))
	for _, match := range matches {
		if match == l.fileName {
			continue
		}
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		files = append(files, fileInfo{path: match, modTime: info.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})

	// The current file counts towards MaxFiles.
	for i := l.config.MaxFiles - 1; i < len(files); i++ {
		if i < 0 {
			continue
		}
		os.Remove(files[i].path)
	}
}
