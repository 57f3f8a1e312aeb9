package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var tripDateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
}

// ParseTripDate parses a calendar date as the itinerary writes it
// ("September 25, 2025"). ISO dates are accepted too.
func ParseTripDate(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	for _, layout := range tripDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", input)
}

// FormatDate formats an itinerary date as "Thu 25 Sep". Unparseable input is
// returned unchanged, empty input as "Unknown".
func FormatDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return "Unknown"
	}
	t, err := ParseTripDate(date)
	if err != nil {
		return date
	}
	return t.Format("Mon 02 Jan")
}

// FormatCountdown describes where now falls relative to a trip running from
// start for the given number of days: "in 3d", "tomorrow", "day 2 of 8",
// "finished".
func FormatCountdown(start time.Time, days int, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	diff := int(first.Sub(today).Hours() / 24)

	switch {
	case diff > 1:
		return fmt.Sprintf("in %dd", diff)
	case diff == 1:
		return "tomorrow"
	case -diff < days:
		return fmt.Sprintf("day %d of %d", -diff+1, days)
	default:
		return "finished"
	}
}

// FormatRating formats a 0-5 rating as "4.8".
func FormatRating(rating float64) string {
	return formatRatingNumber(rating)
}

// FormatRatingWithStar formats a rating as "4.8 ★" for display.
func FormatRatingWithStar(rating float64) string {
	return formatRatingNumber(rating) + " ★"
}

// FormatRatingStars formats a 0-5 rating as stars (e.g., "★★★★☆"), rounded
// to the nearest whole star.
func FormatRatingStars(rating float64) string {
	stars := int(math.Round(rating))
	if stars < 0 {
		stars = 0
	}
	if stars > 5 {
		stars = 5
	}
	return strings.Repeat("★", stars) + strings.Repeat("☆", 5-stars)
}

// FormatNights formats a stay length as "1 night" or "4 nights".
func FormatNights(n int) string {
	if n == 1 {
		return "1 night"
	}
	return fmt.Sprintf("%d nights", n)
}

func formatRatingNumber(v float64) string {
	// Keep one decimal at most, but avoid trailing .0 for whole values.
	s := strconv.FormatFloat(v, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
