package title

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// leadingPathSegments are marketplace routing prefixes that carry no
// product information.
var leadingPathSegments = map[string]struct{}{
	"product": {}, "p": {}, "dp": {}, "item": {}, "share": {},
}

const (
	minSlugSegmentLen = 3
	minSlugResultLen  = 6
)

var (
	slugSeparators  = strings.NewReplacer("-", " ", "_", " ")
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	digitsOnly      = regexp.MustCompile(`^\d+$`)
)

// FromSlug derives a title candidate from the URL path. The longest
// remaining segment is assumed to be the product slug; short segments
// are routing noise. Returns empty when nothing plausible remains.
func FromSlug(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	segments := splitPath(u.Path)
	if len(segments) == 0 {
		return ""
	}

	if _, known := leadingPathSegments[strings.ToLower(segments[0])]; known {
		segments = segments[1:]
	}

	longest := ""

	for _, segment := range segments {
		if len(segment) < minSlugSegmentLen {
			continue
		}

		if len(segment) > len(longest) {
			longest = segment
		}
	}

	if longest == "" {
		return ""
	}

	candidate := slugSeparators.Replace(longest)
	candidate = nonAlphanumeric.ReplaceAllString(candidate, " ")
	candidate = strings.Join(strings.Fields(candidate), " ")

	if utf8.RuneCountInString(candidate) < minSlugResultLen || digitsOnly.MatchString(strings.ReplaceAll(candidate, " ", "")) {
		return ""
	}

	return candidate
}

func splitPath(path string) []string {
	var segments []string

	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	return segments
}
