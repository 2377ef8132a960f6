package logging

import (
	"os"
	"strings"
)

// EnvLevelKey names the environment variable that sets the default level
const EnvLevelKey = "LOG_LEVEL"

// Level represents a log level
type Level int

const (
	// DebugLevel logs every solver round
	DebugLevel Level = iota
	// InfoLevel is the default logging priority
	InfoLevel
	// WarnLevel logs conditions that do not stop a run
	WarnLevel
	// ErrorLevel logs failed runs
	ErrorLevel
)

// String returns the string representation of a log level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a case-insensitive level name to a Level.
// Unknown names fall back to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// ValidLevel reports whether s names a known level.
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// LevelFromEnv returns the level name held in LOG_LEVEL, trimmed and
// lowercased, or "" when the variable is unset or blank. The name is not
// checked here; ValidLevel does that.
func LevelFromEnv() string {
	return strings.ToLower(strings.TrimSpace(os.Getenv(EnvLevelKey)))
}
