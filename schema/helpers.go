package schema

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// dateRe is the strict calendar-day pattern shared by every collaborator that
// filters raw event records before aggregation.
var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDate reports whether s matches the strict YYYY-MM-DD form.
func ValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SignedPercent formats a percentage with an explicit sign and one decimal,
// e.g. "+12.5%" or "-3.0%".
func SignedPercent(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

// Title formats a pattern name for display, e.g. "music_only" to "Music Only".
func (p PatternName) Title() string {
	parts := strings.Split(string(p), "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
