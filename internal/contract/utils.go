package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Scoring label constants.
const (
	StandoutValue = "Standout" // top-tier portfolio entry
	StrongValue   = "Strong"   // substantial, sustained work
	ModerateValue = "Moderate" // meaningful but limited signal
	MinorValue    = "Minor"    // small or one-off work
)

// Color variables for console output.
var (
	StandoutColor = color.New(color.FgGreen, color.Bold)
	StrongColor   = color.New(color.FgCyan, color.Bold)
	ModerateColor = color.New(color.FgYellow)
	MinorColor    = color.New(color.FgWhite)
)

// GetPlainLabel returns a plain text label for a project's composite
// score. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 150:
		return StandoutValue
	case score >= 80:
		return StrongValue
	case score >= 40:
		return ModerateValue
	default:
		return MinorValue
	}
}

// GetColorLabel returns a colored label for table output. It uses
// GetPlainLabel to determine the string, then applies the matching color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)
	switch text {
	case StandoutValue:
		return StandoutColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default:
		return MinorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for scan storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".skillscope_scans.db"
	}
	return filepath.Join(homeDir, ".skillscope_scans.db")
}

// TruncatePath truncates a file path to a maximum width with an ellipsis
// prefix. Requires maxWidth > 3 so there is room for both the "..." prefix
// and at least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
