package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/NSBTW/courier/schema"
	"github.com/fatih/color"
)

// Status label constants.
const (
	SentValue       = "Sent"       // Item confirmed transmitted
	SkippedValue    = "Skipped"    // Item failed a pipeline gate
	FoundValue      = "Found"      // Key resolved by the registry
	UnresolvedValue = "Unresolved" // Key not resolved
)

// Color variables for console output.
var (
	SentColor    = color.New(color.FgGreen)           // sentColor represents a delivered item.
	SkippedColor = color.New(color.FgRed, color.Bold) // skippedColor represents a dropped item.
	FoundColor   = color.New(color.FgCyan)            // foundColor represents a resolved key.
	MissColor    = color.New(color.FgYellow)          // missColor represents an unresolved key.
)

// GetPlainStatusLabel returns the plain text label for an item status.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainStatusLabel(status schema.ItemStatus) string {
	if status == schema.SentStatus {
		return SentValue
	}
	return SkippedValue
}

// GetColorStatusLabel returns a colored status label for console output.
// It uses GetPlainStatusLabel to determine the string, then applies the color.
func GetColorStatusLabel(status schema.ItemStatus) string {
	text := GetPlainStatusLabel(status)
	if status == schema.SentStatus {
		return SentColor.Sprint(text)
	}
	return SkippedColor.Sprint(text)
}

// GetPlainResolutionLabel returns the plain text label for a resolution row.
func GetPlainResolutionLabel(found bool) string {
	if found {
		return FoundValue
	}
	return UnresolvedValue
}

// GetColorResolutionLabel returns a colored label for a resolution row.
func GetColorResolutionLabel(found bool) string {
	text := GetPlainResolutionLabel(found)
	if found {
		return FoundColor.Sprint(text)
	}
	return MissColor.Sprint(text)
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

// ParseBoolString parses common boolean spellings used by flags.
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

// TruncateName shortens long item names for table output, keeping the tail,
// which is usually the most distinctive part of a file name.
func TruncateName(name string, maxWidth int) string {
	if len(name) <= maxWidth {
		return name
	}
	if maxWidth <= 3 {
		return name[len(name)-maxWidth:]
	}
	return "..." + name[len(name)-(maxWidth-3):]
}
