package util

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	tests := map[string]string{
		"September 25, 2025": "Thu 25 Sep",
		"October 2, 2025":    "Thu 02 Oct",
		"2025-09-27":         "Sat 27 Sep",
		"":                   "Unknown",
		"someday":            "someday",
	}
	for in, want := range tests {
		if got := FormatDate(in); got != want {
			t.Errorf("FormatDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCountdown(t *testing.T) {
	start := time.Date(2025, time.September, 25, 0, 0, 0, 0, time.UTC)
	at := func(month time.Month, day int) time.Time {
		return time.Date(2025, month, day, 15, 30, 0, 0, time.UTC)
	}

	tests := []struct {
		now  time.Time
		want string
	}{
		{at(time.September, 1), "in 24d"},
		{at(time.September, 24), "tomorrow"},
		{at(time.September, 25), "day 1 of 8"},
		{at(time.October, 2), "day 8 of 8"},
		{at(time.October, 3), "finished"},
	}
	for _, tt := range tests {
		if got := FormatCountdown(start, 8, tt.now); got != tt.want {
			t.Errorf("FormatCountdown(%s) = %q, want %q", tt.now.Format("Jan 02"), got, tt.want)
		}
	}
}

func TestFormatRatingStars(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4.8, "★★★★★"},
		{4.4, "★★★★☆"},
		{0, "☆☆☆☆☆"},
		{-1, "☆☆☆☆☆"},
		{9, "★★★★★"},
	}
	for _, tt := range tests {
		if got := FormatRatingStars(tt.in); got != tt.want {
			t.Errorf("FormatRatingStars(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := FormatRatingWithStar(4.0); got != "4 ★" {
		t.Errorf("FormatRatingWithStar(4) = %q", got)
	}
	if got := FormatRating(4.65); got != "4.7" && got != "4.6" {
		t.Errorf("FormatRating(4.65) = %q", got)
	}
}

func TestFormatNights(t *testing.T) {
	if got := FormatNights(1); got != "1 night" {
		t.Errorf("FormatNights(1) = %q", got)
	}
	if got := FormatNights(4); got != "4 nights" {
		t.Errorf("FormatNights(4) = %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"Tokyo", 10, "Tokyo"},
		{"Tokyo Skytree observation deck", 10, "Tokyo S..."},
		{"東京スカイツリー", 5, "東京..."},
		{"abc", 2, "ab"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
