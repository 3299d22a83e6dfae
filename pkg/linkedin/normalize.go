package linkedin

import (
	"regexp"
	"strings"
)

// LinkedIn's accessibility markup concatenates text nodes without
// guaranteed separators, so extracted fragments arrive with artifacts
// like "May2023" or "Club,IIT Bhilai". Normalize repairs these.
var (
	commaSpaceRe = regexp.MustCompile(`,(\S)`)
	monthYearRe  = regexp.MustCompile(`([A-Za-z])(\d{4})`)
)

// Normalize cleans an extracted text fragment: collapses whitespace runs
// (including embedded newlines) to single spaces, trims the ends, inserts
// a space after a comma glued to the next word, and inserts a space
// between a trailing letter and a directly concatenated 4-digit year.
// Normalize is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	s = commaSpaceRe.ReplaceAllString(s, ", $1")
	s = monthYearRe.ReplaceAllString(s, "$1 $2")
	return strings.TrimSpace(s)
}
