package title

import (
	"regexp"
	"strings"
)

// fluffPhrases are marketing boilerplate stripped from titles before
// structured extraction. Matched case-insensitively as substrings;
// multi-word phrases must precede their sub-phrases ("best offer"
// before "offer") so the longer match wins.
var fluffPhrases = []string{
	"best offer", "trending", "trendy", "stylish", "buy online", "india",
	"amazon.in", "flipkart", "official store", "exclusive", "limited time",
	"deal", "sale", "discount", "offer", "free shipping", "cod available",
	"cash on delivery", "lowest price", "great indian", "festival",
}

var (
	nonTitleChars = regexp.MustCompile(`[^\w\s\-&().]`)
	fluffRegexes  = compileFluff()
)

func compileFluff() []*regexp.Regexp {
	regexes := make([]*regexp.Regexp, 0, len(fluffPhrases))
	for _, phrase := range fluffPhrases {
		regexes = append(regexes, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(phrase)))
	}

	return regexes
}

const maxFluffPasses = 3

// CleanTitle strips emoji and punctuation outside the title alphabet,
// removes fluff phrases, and collapses whitespace. Removal runs in
// multiple passes because stripping one phrase can expose another.
// A result that fails the nonsense gate comes back empty; the caller
// treats that as this candidate failing.
func CleanTitle(raw string) string {
	cleaned := nonTitleChars.ReplaceAllString(raw, " ")

	for pass := 0; pass < maxFluffPasses; pass++ {
		before := cleaned
		for _, re := range fluffRegexes {
			cleaned = re.ReplaceAllString(cleaned, " ")
		}

		if cleaned == before {
			break
		}
	}

	cleaned = strings.Join(strings.Fields(cleaned), " ")

	if IsNonsense(cleaned) {
		return ""
	}

	return cleaned
}
