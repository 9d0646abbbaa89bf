package fields

import (
	"regexp"
	"strings"
)

// pricePatterns are tried in order against the whole message text.
// Each captures the bare digit run, commas allowed.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:₹|rs\.?\s*)(\d[\d,]*)`),
	regexp.MustCompile(`(?i)(\d[\d,]*)\s*(?:₹|rs\b\.?)`),
	regexp.MustCompile(`(?i)price\s*[:\-]?\s*(\d[\d,]*)`),
	regexp.MustCompile(`(?i)cost\s*[:\-]?\s*(\d[\d,]*)`),
	regexp.MustCompile(`(?i)@\s*(\d[\d,]*)\s*rs\b`),
}

// Price extracts the first plausible price from the message text.
// Returns empty when no pattern matches or the match is zero.
func Price(text string) string {
	for _, pattern := range pricePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		digits := strings.ReplaceAll(m[1], ",", "")
		if digits == "" || allZeros(digits) {
			continue
		}

		return digits
	}

	return ""
}

func allZeros(digits string) bool {
	for _, r := range digits {
		if r != '0' {
			return false
		}
	}

	return true
}
