// ABOUTME: SitemapEntry domain model and sitemap protocol value helpers
// ABOUTME: Entries are ephemeral, built per generation pass and never persisted

package domain

import (
	"strconv"
	"time"
)

// Change frequency values defined by the sitemaps.org 0.9 protocol.
const (
	ChangeFreqAlways  = "always"
	ChangeFreqHourly  = "hourly"
	ChangeFreqDaily   = "daily"
	ChangeFreqWeekly  = "weekly"
	ChangeFreqMonthly = "monthly"
	ChangeFreqYearly  = "yearly"
	ChangeFreqNever   = "never"
)

// ChangeFreqValues lists the valid change frequency values.
var ChangeFreqValues = []string{
	ChangeFreqAlways,
	ChangeFreqHourly,
	ChangeFreqDaily,
	ChangeFreqWeekly,
	ChangeFreqMonthly,
	ChangeFreqYearly,
	ChangeFreqNever,
}

// IsValidChangeFreq reports whether freq is one of the seven protocol values.
func IsValidChangeFreq(freq string) bool {
	for _, v := range ChangeFreqValues {
		if freq == v {
			return true
		}
	}
	return false
}

// SitemapEntry represents a single <url> element of a sitemap document
type SitemapEntry struct {
	// Loc is the absolute URL of the page
	Loc string

	// LastMod is the last modification time, nil if unknown
	LastMod *time.Time

	// ChangeFreq is the expected update cadence, empty if unknown
	ChangeFreq string

	// Priority is the entry's priority within [0.0, 1.0]
	Priority float64
}

// ClampPriority forces a priority into the valid [0.0, 1.0] range.
func ClampPriority(p float64) float64 {
	if p < 0.0 {
		return 0.0
	}
	if p > 1.0 {
		return 1.0
	}
	return p
}

// FormatPriority renders a priority with exactly one decimal digit.
// The value is clamped first, so out-of-range strategy values never
// reach the document.
func FormatPriority(p float64) string {
	return strconv.FormatFloat(ClampPriority(p), 'f', 1, 64)
}

// FormatLastMod renders a modification time as YYYY-MM-DD.
func FormatLastMod(t time.Time) string {
	return t.Format("2006-01-02")
}
