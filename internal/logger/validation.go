package logger

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// FilenameValidationError represents an error in filename pattern validation
type FilenameValidationError struct {
	Pattern      string
	InvalidChars []rune
	Placeholders []string
	Platform     string
	Suggestion   string
}

func (e *FilenameValidationError) Error() string {
	var problems []string
	if len(e.InvalidChars) > 0 {
		chars := make([]string, len(e.InvalidChars))
		for i, char := range e.InvalidChars {
			chars[i] = fmt.Sprintf("'%c'", char)
		}
		problem := "invalid characters " + strings.Join(chars, ", ")
		if e.Platform != "all" {
			problem += fmt.Sprintf(" (invalid on %s)", e.Platform)
		}
		problems = append(problems, problem)
	}
	if len(e.Placeholders) > 0 {
		problems = append(problems, "unknown placeholders "+strings.Join(e.Placeholders, ", "))
	}

	msg := fmt.Sprintf("invalid log filename pattern %q: %s", e.Pattern, strings.Join(problems, "; "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

var placeholderPattern = regexp.MustCompile(`%.?`)

var knownPlaceholders = map[string]bool{"%Y": true, "%m": true, "%d": true, "%H": true, "%M": true}

// ValidateFilenamePattern checks that pattern is a bare file name, safe on
// the current platform, using only %Y %m %d %H %M placeholders.
// AIDEV-NOTE: the directory lives in logging.directory, never in the pattern
func ValidateFilenamePattern(pattern string) error {
	if pattern == "" {
		return nil
	}

	invalid := findInvalidChars(pattern)

	var unknown []string
	for _, placeholder := range placeholderPattern.FindAllString(pattern, -1) {
		if !knownPlaceholders[placeholder] {
			unknown = append(unknown, placeholder)
		}
	}

	if len(invalid) == 0 && len(unknown) == 0 {
		return nil
	}

	platform := "all"
	if runtime.GOOS == "windows" {
		for _, char := range invalid {
			if char != '/' && char != '\\' && char != '\x00' {
				platform = "Windows"
				break
			}
		}
	}

	return &FilenameValidationError{
		Pattern:      pattern,
		InvalidChars: invalid,
		Placeholders: unknown,
		Platform:     platform,
		Suggestion:   suggestFilename(pattern, invalid),
	}
}

// findInvalidChars returns the characters of filename that cannot appear in
// a file name. Path separators are always invalid.
func findInvalidChars(filename string) []rune {
	candidates := []rune{'/', '\\', '\x00'}
	if runtime.GOOS == "windows" {
		candidates = append(candidates, '<', '>', ':', '"', '|', '?', '*')
	}

	var invalid []rune
	for _, char := range candidates {
		if strings.ContainsRune(filename, char) {
			invalid = append(invalid, char)
		}
	}
	return invalid
}

// suggestFilename replaces each invalid character with a safe one or drops it.
func suggestFilename(pattern string, invalid []rune) string {
	if len(invalid) == 0 {
		return ""
	}

	replacements := map[rune]string{
		'/':  "-",
		'\\': "-",
		':':  "-",
		'|':  "-",
		'*':  "X",
		'?':  "X",
		'<':  "",
		'>':  "",
		'"':  "",
	}

	suggestion := pattern
	for _, char := range invalid {
		suggestion = strings.ReplaceAll(suggestion, string(char), replacements[char])
	}
	for strings.Contains(suggestion, "--") {
		suggestion = strings.ReplaceAll(suggestion, "--", "-")
	}
	return suggestion
}
