package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

const productPage = `<html><head>
<meta property="og:title" content="OG Product Name">
<title>Page Title Tag</title>
</head><body>
<h1>Main Heading</h1>
<h2>Sub Heading</h2>
<h2>Another Heading</h2>
<h3>Too Far Down</h3>
</body></html>`

func TestTitleCandidatesGenericPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, r.Header.Get("User-Agent"))
		require.NotEmpty(t, r.Header.Get("Accept"))

		_, _ = w.Write([]byte(productPage))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, 10, testLogger())

	got, err := fetcher.TitleCandidates(context.Background(), server.URL+"/p/1")
	require.NoError(t, err)

	// Meta, title element, then first three headings; the fourth heading
	// is never visited.
	require.Equal(t, []string{
		"OG Product Name",
		"Page Title Tag",
		"Main Heading",
		"Sub Heading",
		"Another Heading",
	}, got)
}

func TestTitleCandidatesNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, 10, testLogger())

	_, err := fetcher.TitleCandidates(context.Background(), server.URL)
	require.ErrorIs(t, err, ErrHTTPStatusNotOK)
}

func TestTitleCandidatesEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body></body></html>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, 10, testLogger())

	got, err := fetcher.TitleCandidates(context.Background(), server.URL)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCollectCandidatesMarketplaceSelectorFirst(t *testing.T) {
	page := `<html><head><title>Generic Title</title></head>
<body><span id="productTitle"> Branded Kurta Set </span></body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	got := collectCandidates(doc, "www.amazon.in")
	require.NotEmpty(t, got)
	require.Equal(t, "Branded Kurta Set", got[0])
}

func TestSelectorsFor(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"www.amazon.in", true},
		{"meesho.com", true},
		{"example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			got := selectorsFor(tt.host)
			if (len(got) > 0) != tt.want {
				t.Errorf("selectorsFor(%q) = %v, want selectors: %v", tt.host, got, tt.want)
			}
		})
	}
}
