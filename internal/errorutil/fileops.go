package errorutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileOpError provides structured error information for file operations
type FileOpError struct {
	Operation string
	Path      string
	Err       error
}

func (e *FileOpError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Operation, e.Path, e.Err)
}

func (e *FileOpError) Unwrap() error {
	return e.Err
}

// ValidateFileExists checks that filePath names an accessible regular file.
func ValidateFileExists(filePath, operation string) error {
	if filePath == "" {
		return &FileOpError{Operation: operation, Path: filePath, Err: fmt.Errorf("empty file path provided")}
	}

	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileOpError{Operation: operation, Path: filePath, Err: os.ErrNotExist}
		}
		return &FileOpError{Operation: operation, Path: filePath, Err: fmt.Errorf("cannot access file: %w", err)}
	}

	if info.IsDir() {
		return &FileOpError{Operation: operation, Path: filePath, Err: fmt.Errorf("path is a directory, expected file")}
	}

	return nil
}

// EnsureDirectory creates dirPath when missing and fails if it exists as a file.
func EnsureDirectory(dirPath, operation string) error {
	if dirPath == "" {
		return &FileOpError{Operation: operation, Path: dirPath, Err: fmt.Errorf("empty directory path provided")}
	}

	info, err := os.Stat(dirPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return &FileOpError{Operation: operation, Path: dirPath, Err: fmt.Errorf("cannot access directory: %w", err)}
		}
		if mkdirErr := os.MkdirAll(dirPath, 0755); mkdirErr != nil {
			return &FileOpError{Operation: operation, Path: dirPath, Err: fmt.Errorf("failed to create directory: %w", mkdirErr)}
		}
		return nil
	}

	if !info.IsDir() {
		return &FileOpError{Operation: operation, Path: dirPath, Err: fmt.Errorf("path exists but is not a directory")}
	}

	return nil
}

// SafeWriteFile writes data to filePath, creating the parent directory first.
func SafeWriteFile(filePath string, data []byte, operation string) error {
	if err := EnsureDirectory(filepath.Dir(filePath), operation); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return &FileOpError{Operation: operation, Path: filePath, Err: fmt.Errorf("failed to write file: %w", err)}
	}

	return nil
}
