package links

import (
	"net/url"
	"strings"
)

// shortenerDomains are hosts known to issue redirect links that must be
// resolved before the real product URL is visible. Matching is by
// substring so regional subdomains (in.bit.ly) are caught too.
var shortenerDomains = []string{
	"amzn.to", "fkrt.cc", "spoo.me", "wishlink.com", "bitli.in",
	"da.gd", "cutt.ly", "bit.ly", "tinyurl.com", "goo.gl", "t.co",
	"short.me", "u.to", "ow.ly", "tiny.cc", "is.gd",
}

// trackingParams are query keys that never affect page content.
// Matched case-sensitively and exactly.
var trackingParams = map[string]struct{}{
	"tag": {}, "ref": {}, "refRID": {}, "pf_rd_r": {}, "pf_rd_p": {},
	"pf_rd_m": {}, "pf_rd_t": {}, "pf_rd_s": {}, "pf_rd_i": {},
	"utm_source": {}, "utm_medium": {}, "utm_campaign": {}, "utm_term": {},
	"utm_content": {}, "gclid": {}, "fbclid": {}, "mc_cid": {}, "mc_eid": {},
	"_gl": {}, "igshid": {}, "si": {},
}

// CanonicalURL is a URL with tracking parameters removed and, if it was
// shortened, replaced by its final destination.
type CanonicalURL struct {
	Value string
	Host  string
}

// IsShortener reports whether the URL's host belongs to a known
// link-shortening service.
func IsShortener(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Host)
	for _, shortener := range shortenerDomains {
		if strings.Contains(host, shortener) {
			return true
		}
	}

	return false
}

// Clean removes tracking parameters from a URL and drops its fragment.
// Remaining query parameters keep their original relative order; on a
// duplicate key the first occurrence wins. Malformed URLs are returned
// unchanged rather than failing.
func Clean(rawURL string) CanonicalURL {
	u, err := url.Parse(rawURL)
	if err != nil {
		return CanonicalURL{Value: rawURL}
	}

	u.RawQuery = cleanQuery(u.RawQuery)
	u.Fragment = ""
	u.RawFragment = ""

	return CanonicalURL{Value: u.String(), Host: strings.ToLower(u.Host)}
}

// cleanQuery rebuilds a raw query string without tracking keys.
// url.Values is not usable here: it is a map and loses the relative
// parameter order the rebuild must preserve.
func cleanQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	var kept []string

	seen := make(map[string]struct{})

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		key := pair
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key = pair[:i]
		}

		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}

		if _, tracked := trackingParams[key]; tracked {
			continue
		}

		kept = append(kept, pair)
	}

	return strings.Join(kept, "&")
}
