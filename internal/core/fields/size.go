package fields

import (
	"regexp"
	"strings"
)

// DefaultSize is used when the message does not state a size.
const DefaultSize = "All"

var sizeRegex = regexp.MustCompile(`(?i)\bsize\s*[-:]?\s*([^\n,]+)`)

// Size extracts a size declaration ("Size - M", "size: L, XL") from
// the message text. The value runs to the end of the line or the
// first comma. Falls back to DefaultSize.
func Size(text string) string {
	m := sizeRegex.FindStringSubmatch(text)
	if m == nil {
		return DefaultSize
	}

	value := strings.TrimSpace(m[1])
	if value == "" {
		return DefaultSize
	}

	return value
}
