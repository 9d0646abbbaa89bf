package linkextract

import "regexp"

// urlRegex uses a conservative character class per URL component so
// trailing punctuation ("check this: https://x.com/p!") never becomes
// part of the match.
var urlRegex = regexp.MustCompile(`https?://[\w.-]+(?::\d+)?(?:/[\w/_.%-]*)?(?:\?[\w&=%.-]*)?(?:#[\w.-]*)?`)

// DetectLinks returns every URL substring in text in first-occurrence
// order. Duplicates are preserved: the caller emits one reply per link,
// repeated or not. Text without matches yields an empty result.
func DetectLinks(text string) []string {
	return urlRegex.FindAllString(text, -1)
}

// StripLinks removes every URL substring from text. Used by the
// message-text title fallback, which wants the prose around the links.
func StripLinks(text string) string {
	return urlRegex.ReplaceAllString(text, "")
}
