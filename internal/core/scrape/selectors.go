package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxHeadingCandidates = 3

// marketplaceSelectors maps a host substring to the CSS selectors that
// locate the product title on that marketplace. Page structures change
// without notice; keeping this as data makes breakage a table edit.
var marketplaceSelectors = []struct {
	hostPart  string
	selectors []string
}{
	{"amazon.", []string{"#productTitle", "span#title"}},
	{"flipkart.com", []string{"span.B_NuCI", "h1._6EBuvT span", "span.VU-ZEz"}},
	{"meesho.com", []string{"h1[class*=Title]", "span[class*=Text__StyledText]"}},
	{"myntra.com", []string{"h1.pdp-title", "h1.pdp-name"}},
	{"ajio.com", []string{"h1.prod-name"}},
	{"snapdeal.com", []string{"h1.pdp-e-i-head"}},
}

// metaTitleSelectors are the generic meta-tag title fields tried on any
// page, in order.
var metaTitleSelectors = []string{
	`meta[property="og:title"]`,
	`meta[name="twitter:title"]`,
	`meta[name="title"]`,
	`meta[itemprop="name"]`,
}

func selectorsFor(host string) []string {
	for _, entry := range marketplaceSelectors {
		if strings.Contains(host, entry.hostPart) {
			return entry.selectors
		}
	}

	return nil
}

func collectCandidates(doc *goquery.Document, host string) []string {
	var candidates []string

	add := func(text string) {
		if text = strings.TrimSpace(text); text != "" {
			candidates = append(candidates, text)
		}
	}

	for _, selector := range selectorsFor(host) {
		add(doc.Find(selector).First().Text())
	}

	for _, selector := range metaTitleSelectors {
		add(doc.Find(selector).First().AttrOr("content", ""))
	}

	add(doc.Find("title").First().Text())

	visited := 0

	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		add(heading.Text())
		visited++

		return visited < maxHeadingCandidates
	})

	return candidates
}
