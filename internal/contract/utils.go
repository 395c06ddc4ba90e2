package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Productivity level labels.
const (
	VeryHighValue = "Very High" // Very high productivity
	HighValue     = "High"      // High productivity
	ModerateValue = "Moderate"  // Moderate productivity
	LowValue      = "Low"       // Low productivity
	MinimalValue  = "Minimal"   // Minimal productivity
)

// Color variables for console output.
var (
	VeryHighColor = color.New(color.FgGreen, color.Bold)
	HighColor     = color.New(color.FgGreen)
	ModerateColor = color.New(color.FgYellow)
	LowColor      = color.New(color.FgMagenta)
	MinimalColor  = color.New(color.FgCyan)
)

// GetPlainLevel returns a plain text label for a productivity score.
// Thresholds: >=10 Very High, >=7 High, >=4 Moderate, >=1 Low, else Minimal.
func GetPlainLevel(score float64) string {
	switch {
	case score >= 10:
		return VeryHighValue
	case score >= 7:
		return HighValue
	case score >= 4:
		return ModerateValue
	case score >= 1:
		return LowValue
	default:
		return MinimalValue
	}
}

// GetColorLevel returns a colored productivity label for console output.
// It uses GetPlainLevel to determine the string, and then applies the
// appropriate color.
func GetColorLevel(score float64) string {
	return ColorizeLevelLabel(GetPlainLevel(score))
}

// ColorizeLevelLabel applies the color matching a productivity label.
// Unknown labels pass through unchanged.
func ColorizeLevelLabel(text string) string {
	switch text {
	case VeryHighValue:
		return VeryHighColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	case LowValue:
		return LowColor.Sprint(text)
	case MinimalValue:
		return MinimalColor.Sprint(text)
	default:
		return text
	}
}

// HighlightValue returns a bold green rendering of a headline value.
func HighlightValue(text string) string {
	return VeryHighColor.Sprint(text)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
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

// LogWarn logs a warning message to stderr. Warnings go to stderr so MCP
// mode keeps stdout clean for the protocol.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
	}
}
