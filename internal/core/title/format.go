package title

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxDisplayTokens = 8
	maxProductTokens = 3
	emergencyTokens  = 4
	minBrandTokenLen = 3
)

// skipWords are low-signal connectors dropped before brand/product
// extraction. Quantity detection runs on the raw text instead, so
// "set of 3" still matches.
var skipWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "of": {}, "for": {}, "with": {},
	"and": {}, "in": {}, "on": {}, "at": {}, "to": {}, "by": {}, "from": {},
}

var genderKeywords = map[string]string{
	"women": "Women", "womens": "Women", "woman": "Women", "ladies": "Women",
	"girls": "Women", "girl": "Women",
	"men": "Men", "mens": "Men", "man": "Men", "gents": "Men",
	"boys": "Men", "boy": "Men", "male": "Men",
	"kids": "Kids", "kid": "Kids", "children": "Kids", "child": "Kids",
	"unisex": "Unisex",
}

// clothingKeywords mark self-describing products: one such token is the
// whole product phrase.
var clothingKeywords = map[string]struct{}{
	"kurta": {}, "shirt": {}, "dress": {}, "top": {}, "bottom": {},
	"jeans": {}, "trouser": {}, "saree": {}, "lehenga": {}, "suit": {},
	"kurti": {}, "palazzo": {}, "dupatta": {}, "blouse": {}, "skirt": {},
	"shorts": {}, "tshirt": {}, "t-shirt": {},
}

var knownBrands = map[string]struct{}{
	"nike": {}, "adidas": {}, "puma": {}, "reebok": {}, "levis": {},
	"roadster": {}, "hrx": {}, "wrogn": {}, "boat": {}, "noise": {},
	"mi": {}, "realme": {}, "samsung": {}, "biba": {}, "libas": {},
	"anouk": {}, "fabindia": {}, "zara": {}, "bata": {}, "sparx": {},
	"campus": {}, "milton": {}, "cello": {}, "prestige": {}, "wipro": {},
}

type quantityPattern struct {
	re     *regexp.Regexp
	render func(n string) string
}

// quantityPatterns are tried in order; the first match wins, so more
// specific phrasings must come before bare unit suffixes.
var quantityPatterns = []quantityPattern{
	{regexp.MustCompile(`(?i)\bpack of (\d+)\b`), func(n string) string { return "Pack of " + n }},
	{regexp.MustCompile(`(?i)\bset of (\d+)\b`), func(n string) string { return "Set of " + n }},
	{regexp.MustCompile(`(?i)\bcombo of (\d+)\b`), func(n string) string { return "Combo of " + n }},
	{regexp.MustCompile(`(?i)\b(\d+)\s*(?:pcs|pieces?|pc)\b`), func(n string) string { return n + " Pcs" }},
	{regexp.MustCompile(`(?i)\b(\d+)\s*pairs?\b`), func(n string) string { return n + " Pair" }},
	{regexp.MustCompile(`(?i)\b(\d+)\s*kgs?\b`), func(n string) string { return n + "kg" }},
	{regexp.MustCompile(`(?i)\b(\d+)\s*(?:gm|gms|grams?|g)\b`), func(n string) string { return n + "g" }},
	{regexp.MustCompile(`(?i)\b(\d+)\s*ml\b`), func(n string) string { return n + "ml" }},
	{regexp.MustCompile(`(?i)\b(\d+)\s*(?:ltr|litres?|liters?|l)\b`), func(n string) string { return n + "L" }},
}

// Formatted is a cleaned title decomposed into its display slots.
type Formatted struct {
	Gender   string
	Quantity string
	Brand    string
	Product  []string
}

// FormatWithRules turns a cleaned title into the final display form:
// gender, quantity, brand, then up to three product tokens, capped at
// eight tokens total, deduplicated case-insensitively, title-cased.
// Returns empty only when nothing at all can be salvaged.
func FormatWithRules(cleaned string) string {
	lowered := strings.ToLower(cleaned)
	tokens := meaningfulTokens(lowered)

	slots := Formatted{
		Gender:   detectGender(tokens),
		Quantity: detectQuantity(lowered),
		Brand:    detectBrand(tokens),
		Product:  detectProduct(tokens),
	}

	display := assemble(slots)
	if len(display) == 0 || (slots.Brand == "" && len(slots.Product) == 0) {
		display = emergencyFallback(tokens)
	}

	return strings.Join(display, " ")
}

func meaningfulTokens(lowered string) []string {
	var tokens []string

	for _, token := range strings.Fields(lowered) {
		if len(token) < 2 {
			continue
		}

		if _, skip := skipWords[token]; skip {
			continue
		}

		tokens = append(tokens, token)
	}

	return tokens
}

func detectGender(tokens []string) string {
	for _, token := range tokens {
		if gender, ok := genderKeywords[token]; ok {
			return gender
		}
	}

	return ""
}

func detectQuantity(lowered string) string {
	for _, pattern := range quantityPatterns {
		if m := pattern.re.FindStringSubmatch(lowered); m != nil {
			return pattern.render(m[1])
		}
	}

	return ""
}

func detectBrand(tokens []string) string {
	for _, token := range tokens {
		if _, ok := knownBrands[token]; ok {
			return token
		}
	}

	for _, token := range tokens {
		if _, gender := genderKeywords[token]; gender {
			continue
		}

		if digitsOnly.MatchString(token) || len(token) < minBrandTokenLen {
			continue
		}

		return token
	}

	return ""
}

// detectProduct prefers a single clothing token: clothing items are
// self-describing. Otherwise trailing tokens win, since marketing text
// front-loads adjectives and ends on the item itself.
func detectProduct(tokens []string) []string {
	for _, token := range tokens {
		if _, ok := clothingKeywords[token]; ok {
			return []string{token}
		}
	}

	var pool []string

	for _, token := range tokens {
		if _, gender := genderKeywords[token]; gender {
			continue
		}

		if digitsOnly.MatchString(token) || looksLikeURL(token) {
			continue
		}

		pool = append(pool, token)
	}

	if len(pool) > maxProductTokens {
		pool = pool[len(pool)-maxProductTokens:]
	}

	return pool
}

func looksLikeURL(token string) bool {
	return strings.Contains(token, "http") ||
		strings.Contains(token, "www") ||
		strings.Contains(token, "/") ||
		strings.Contains(token, ".com")
}

func assemble(slots Formatted) []string {
	var raw []string

	if slots.Gender != "" {
		raw = append(raw, slots.Gender)
	}

	if slots.Quantity != "" {
		raw = append(raw, strings.Fields(slots.Quantity)...)
	}

	if slots.Brand != "" {
		raw = append(raw, slots.Brand)
	}

	raw = append(raw, slots.Product...)

	return dedupTitleCase(raw)
}

func emergencyFallback(tokens []string) []string {
	if len(tokens) > emergencyTokens {
		tokens = tokens[:emergencyTokens]
	}

	return dedupTitleCase(tokens)
}

// dedupTitleCase drops case-insensitive duplicate tokens keeping the
// first, title-cases the survivors, and enforces the display cap. Both
// the slot assembly and the emergency fallback go through here so the
// no-duplicate invariant holds on every output path.
func dedupTitleCase(raw []string) []string {
	seen := make(map[string]struct{})

	var display []string

	for _, token := range raw {
		key := strings.ToLower(token)
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		display = append(display, titleCase(token))

		if len(display) == maxDisplayTokens {
			break
		}
	}

	return display
}

func titleCase(token string) string {
	return cases.Title(language.English).String(token)
}
