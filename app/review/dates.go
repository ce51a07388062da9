package review

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var numberRegex = regexp.MustCompile(`\d+`)

// ParseDate converts a review date phrase (e.g. "3 days ago", "an hour
// ago", "yesterday") into an absolute timestamp relative to now. Unit
// keywords are matched case-insensitively in priority order; a phrase
// without a leading number counts as 1. Absolute date strings
// ("March 3, 2024") are handled as a fallback. Returns nil when the text
// cannot be parsed; callers must treat nil as out of range, never as
// recent.
func ParseDate(text string, now time.Time) *time.Time {
	lower := strings.ToLower(text)

	var parsed time.Time
	switch {
	case strings.Contains(lower, "min"):
		parsed = now.Add(-time.Duration(extractNumber(text)) * time.Minute)
	case strings.Contains(lower, "hour"):
		parsed = now.Add(-time.Duration(extractNumber(text)) * time.Hour)
	case strings.Contains(lower, "yesterday"):
		parsed = now.AddDate(0, 0, -1)
	case strings.Contains(lower, "day"):
		parsed = now.AddDate(0, 0, -extractNumber(text))
	case strings.Contains(lower, "week"):
		parsed = now.AddDate(0, 0, -7*extractNumber(text))
	case strings.Contains(lower, "month"):
		// Months are approximated as 30 days
		parsed = now.AddDate(0, 0, -30*extractNumber(text))
	default:
		absolute, err := dateparse.ParseAny(text)
		if err != nil {
			return nil
		}
		parsed = absolute
	}

	return &parsed
}

// extractNumber returns the first integer in the text, or 1 for phrases
// like "a week ago"
func extractNumber(text string) int {
	match := numberRegex.FindString(text)
	if match == "" {
		return 1
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		return 1
	}
	return n
}

// Cutoff returns the oldest timestamp still inside the lookback window
func Cutoff(weeks int, now time.Time) time.Time {
	return now.AddDate(0, 0, -7*weeks)
}

// WithinWindow reports whether a parsed date falls inside the lookback
// window. A nil date is never within the window.
func WithinWindow(parsed *time.Time, weeks int, now time.Time) bool {
	if parsed == nil {
		return false
	}
	return !parsed.Before(Cutoff(weeks, now))
}

// OlderThanWindow reports whether a parsed date falls outside the
// lookback window. A nil date is always treated as old.
func OlderThanWindow(parsed *time.Time, weeks int, now time.Time) bool {
	if parsed == nil {
		return true
	}
	return parsed.Before(Cutoff(weeks, now))
}
