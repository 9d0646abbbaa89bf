package links

import (
	"strings"
	"testing"
)

func TestIsShortener(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		want   bool
	}{
		{"bitly", "http://bit.ly/xyz", true},
		{"amazon shortener", "https://amzn.to/3abc", true},
		{"subdomain matches by substring", "https://in.bit.ly/xyz", true},
		{"regular host", "https://flipkart.com/p/abcd", false},
		{"unparseable", "http://%zz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsShortener(tt.rawURL); got != tt.want {
				t.Errorf("IsShortener(%q) = %v, want %v", tt.rawURL, got, tt.want)
			}
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		want   string
	}{
		{
			name:   "tracking params removed",
			rawURL: "https://flipkart.com/p/abcd?pf_rd_p=1&color=red",
			want:   "https://flipkart.com/p/abcd?color=red",
		},
		{
			name:   "order of surviving params preserved",
			rawURL: "https://example.com/p?b=2&utm_source=tg&a=1&c=3",
			want:   "https://example.com/p?b=2&a=1&c=3",
		},
		{
			name:   "duplicate key keeps first occurrence",
			rawURL: "https://example.com/p?a=1&a=2",
			want:   "https://example.com/p?a=1",
		},
		{
			name:   "tracking match is case-sensitive",
			rawURL: "https://example.com/p?TAG=x&tag=y",
			want:   "https://example.com/p?TAG=x",
		},
		{
			name:   "all params tracked leaves empty query",
			rawURL: "https://example.com/p?utm_source=a&fbclid=b",
			want:   "https://example.com/p",
		},
		{
			name:   "fragment dropped",
			rawURL: "https://example.com/p?a=1#reviews",
			want:   "https://example.com/p?a=1",
		},
		{
			name:   "no query unchanged",
			rawURL: "https://meesho.com/s/p/abc123",
			want:   "https://meesho.com/s/p/abc123",
		},
		{
			name:   "malformed returned unchanged",
			rawURL: "http://%zz",
			want:   "http://%zz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.rawURL); got.Value != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.rawURL, got.Value, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"https://flipkart.com/p/abcd?pf_rd_p=1&color=red",
		"https://example.com/p?b=2&utm_source=tg&a=1",
		"https://meesho.com/s/p/abc123",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once.Value)

		if once.Value != twice.Value {
			t.Errorf("Clean not idempotent for %q: %q then %q", in, once.Value, twice.Value)
		}
	}
}

func TestCleanRemovesEveryTrackingKey(t *testing.T) {
	for key := range trackingParams {
		rawURL := "https://example.com/p?keep=1&" + key + "=x&also=2"

		got := Clean(rawURL)
		if strings.Contains(got.Value, key+"=") {
			t.Errorf("Clean(%q) kept tracking key %q: %q", rawURL, key, got.Value)
		}
	}
}

func TestCleanLowercasesHost(t *testing.T) {
	got := Clean("https://Meesho.com/s/p/abc")
	if got.Host != "meesho.com" {
		t.Errorf("Clean host = %q, want %q", got.Host, "meesho.com")
	}
}
