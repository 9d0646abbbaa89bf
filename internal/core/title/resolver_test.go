package title

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	candidates []string
	err        error
	calls      int
}

func (s *stubFetcher) TitleCandidates(_ context.Context, _ string) ([]string, error) {
	s.calls++
	return s.candidates, s.err
}

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestResolveForwardedBeforePriceMarker(t *testing.T) {
	stub := &stubFetcher{candidates: []string{"Fetched Product Title"}}
	resolver := NewResolver(stub, testLogger())

	text := "Trendy Women Kurta Set of 3 @599 rs\nhttps://flipkart.com/p/abcd"

	got, source, ok := resolver.Resolve(context.Background(), text, "https://flipkart.com/p/abcd")
	require.True(t, ok)
	require.Equal(t, SourceForwarded, source)
	require.Equal(t, "Women Kurta Set of 3", got)
	require.Zero(t, stub.calls, "forwarded title must short-circuit the fetch")
}

func TestResolveForwardedLineAboveLink(t *testing.T) {
	stub := &stubFetcher{err: errors.New("unreachable")}
	resolver := NewResolver(stub, testLogger())

	text := "Nice Cotton Saree\nhttps://example.com/x"

	got, source, ok := resolver.Resolve(context.Background(), text, "https://example.com/x")
	require.True(t, ok)
	require.Equal(t, SourceForwarded, source)
	require.Equal(t, "Nice Cotton Saree", got)
}

func TestResolveForwardedLineLengthCountsRunes(t *testing.T) {
	stub := &stubFetcher{err: errors.New("unreachable")}
	resolver := NewResolver(stub, testLogger())

	// Five runes but nine bytes; the length gate must reject it and the
	// chain falls through to the slug.
	text := "✨abc✨\nhttps://example.com/cotton-kurta-set"

	got, source, ok := resolver.Resolve(context.Background(), text, "https://example.com/cotton-kurta-set")
	require.True(t, ok)
	require.Equal(t, SourceSlug, source)
	require.Equal(t, "cotton kurta set", got)
}

func TestResolveFetchedShortestValidCandidate(t *testing.T) {
	stub := &stubFetcher{candidates: []string{
		"A Somewhat Longer Scraped Product Title Here",
		"Cotton Kurta Set Combo",
		"short", // below the length floor
	}}
	resolver := NewResolver(stub, testLogger())

	got, source, ok := resolver.Resolve(context.Background(), "https://example.com/item", "https://example.com/item")
	require.True(t, ok)
	require.Equal(t, SourceFetched, source)
	require.Equal(t, "Cotton Kurta Set Combo", got)
}

func TestResolveSlugWhenFetchFails(t *testing.T) {
	stub := &stubFetcher{err: errors.New("boom")}
	resolver := NewResolver(stub, testLogger())

	url := "https://www.meesho.com/cotton-kurta-set-for-women/p/abc123"

	got, source, ok := resolver.Resolve(context.Background(), url, url)
	require.True(t, ok)
	require.Equal(t, SourceSlug, source)
	require.Equal(t, "cotton kurta set for women", got)
}

func TestResolveMessageTextLastResort(t *testing.T) {
	stub := &stubFetcher{err: errors.New("boom")}
	resolver := NewResolver(stub, testLogger())

	text := "Grab this cotton bedsheet combo https://example.com/ab"

	got, source, ok := resolver.Resolve(context.Background(), text, "https://example.com/ab")
	require.True(t, ok)
	require.Equal(t, SourceMessage, source)
	require.Equal(t, "Grab this cotton bedsheet combo", got)
}

func TestResolveTotalFailure(t *testing.T) {
	stub := &stubFetcher{}
	resolver := NewResolver(stub, testLogger())

	_, _, ok := resolver.Resolve(context.Background(), "https://x.io/ab", "https://x.io/ab")
	require.False(t, ok)
}
