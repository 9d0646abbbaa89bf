package title

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/reviewcheckk/listing-bot/internal/core/links/linkextract"
)

// Source identifies which step of the fallback chain produced a title.
type Source string

const (
	SourceForwarded Source = "forwarded"
	SourceFetched   Source = "fetched"
	SourceSlug      Source = "url_slug"
	SourceMessage   Source = "message_text"
)

// Fetcher supplies raw title candidates scraped from a product page.
type Fetcher interface {
	TitleCandidates(ctx context.Context, rawURL string) ([]string, error)
}

// Resolver walks the title fallback chain: text forwarded with the
// message, then the fetched page, then the URL slug, then whatever
// non-link text the message carries.
type Resolver struct {
	fetcher Fetcher
	logger  *zerolog.Logger
}

func NewResolver(fetcher Fetcher, logger *zerolog.Logger) *Resolver {
	return &Resolver{fetcher: fetcher, logger: logger}
}

const (
	minFetchedLen       = 10
	maxFetchedLen       = 200
	minForwardedLineLen = 6
)

var priceMarkerRegex = regexp.MustCompile(`(?i)@\s*\d[\d,]*\s*rs\b`)

// Resolve returns the cleaned title, its source, and whether any step
// succeeded. A step whose candidate cleans down to empty falls through
// to the next one rather than failing the chain.
func (r *Resolver) Resolve(ctx context.Context, messageText, canonicalURL string) (string, Source, bool) {
	if cleaned := CleanTitle(forwardedCandidate(messageText)); cleaned != "" {
		return cleaned, SourceForwarded, true
	}

	if cleaned := CleanTitle(r.fetchedCandidate(ctx, canonicalURL)); cleaned != "" {
		return cleaned, SourceFetched, true
	}

	if cleaned := CleanTitle(FromSlug(canonicalURL)); cleaned != "" {
		return cleaned, SourceSlug, true
	}

	if cleaned := CleanTitle(strings.TrimSpace(linkextract.StripLinks(messageText))); cleaned != "" {
		return cleaned, SourceMessage, true
	}

	return "", "", false
}

// forwardedCandidate extracts seller-written title text from the
// message itself: everything before a price marker, or failing that,
// the non-empty line right above the first link line.
func forwardedCandidate(text string) string {
	if loc := priceMarkerRegex.FindStringIndex(text); loc != nil && loc[0] > 0 {
		prefix := strings.TrimSpace(linkextract.StripLinks(text[:loc[0]]))
		if prefix != "" {
			return prefix
		}
	}

	lines := strings.Split(text, "\n")

	for i, line := range lines {
		if !strings.Contains(line, "http") {
			continue
		}

		for j := i - 1; j >= 0; j-- {
			candidate := strings.TrimSpace(lines[j])
			if candidate == "" {
				continue
			}

			if utf8.RuneCountInString(candidate) < minForwardedLineLen ||
				strings.HasPrefix(candidate, "http") ||
				priceMarkerRegex.MatchString(candidate) {
				break
			}

			return candidate
		}

		break
	}

	return ""
}

// fetchedCandidate picks the shortest plausible scraped candidate.
// Marketplace pages pad titles with specs and SEO keywords, so among
// valid candidates the shortest is usually the actual product name.
func (r *Resolver) fetchedCandidate(ctx context.Context, rawURL string) string {
	candidates, err := r.fetcher.TitleCandidates(ctx, rawURL)
	if err != nil {
		r.logger.Warn().Err(err).Str("url", rawURL).Msg("page title fetch failed")
		return ""
	}

	best := ""
	bestLen := 0

	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)

		length := utf8.RuneCountInString(candidate)
		if length < minFetchedLen || length > maxFetchedLen || IsNonsense(candidate) {
			continue
		}

		if best == "" || length < bestLen {
			best = candidate
			bestLen = length
		}
	}

	return best
}
