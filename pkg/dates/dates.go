// Package dates handles the plain calendar dates used across the API.
// Dates are stored and transmitted as YYYY-MM-DD strings and reformatted by
// string manipulation only, so a record entered on the 23rd never prints as
// the 22nd in a different timezone.
package dates

import (
	"strings"
	"time"
)

// ISO is the wire and storage format for calendar dates.
const ISO = "2006-01-02"

// IsISO reports whether s is a valid YYYY-MM-DD calendar date.
func IsISO(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse(ISO, s)
	return err == nil
}

// Display converts a calendar date to DD/MM/YYYY for printed documents.
// Full ISO timestamps are truncated to their date part. Anything that is not
// a recognizable date renders as "N/A".
func Display(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	if !IsISO(s) {
		return "N/A"
	}
	return s[8:10] + "/" + s[5:7] + "/" + s[0:4]
}

// Today returns the current calendar date in ISO form.
func Today() string {
	return time.Now().Format(ISO)
}
