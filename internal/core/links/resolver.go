package links

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/reviewcheckk/listing-bot/internal/platform/observability"
)

// ErrTooManyRedirects indicates too many HTTP redirects.
var ErrTooManyRedirects = errors.New("too many redirects")

const (
	defaultResolveTimeout = 2500 * time.Millisecond
	maxRedirects          = 5
	limiterBurst          = 3
	logKeyURL             = "url"

	resolveUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Resolver turns a raw URL into its canonical form, following shortener
// redirects over the network when needed.
type Resolver struct {
	client  *http.Client
	limiter *rate.Limiter
	logger  *zerolog.Logger
}

func NewResolver(timeout time.Duration, rps float64, logger *zerolog.Logger) *Resolver {
	if timeout <= 0 {
		timeout = defaultResolveTimeout
	}

	if rps <= 0 {
		rps = 2
	}

	return &Resolver{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return ErrTooManyRedirects
				}

				return nil
			},
		},
		limiter: rate.NewLimiter(rate.Limit(rps), limiterBurst),
		logger:  logger,
	}
}

// Resolve canonicalizes rawURL. Shortened links are followed to their
// final destination first; any fetch failure degrades to cleaning the
// original URL, so Resolve never fails.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) CanonicalURL {
	if !IsShortener(rawURL) {
		return Clean(rawURL)
	}

	final, err := r.follow(ctx, rawURL)
	if err != nil {
		r.logger.Warn().Err(err).Str(logKeyURL, rawURL).Msg("failed to resolve shortened URL, cleaning original")

		return Clean(rawURL)
	}

	return Clean(final)
}

// follow issues a redirect-following GET and returns the URL the chain
// lands on. The body is drained and discarded; only the final URL matters.
func (r *Resolver) follow(ctx context.Context, rawURL string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", resolveUserAgent)

	start := time.Now()

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	observability.ResolveDuration.Observe(time.Since(start).Seconds())

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024)) //nolint:errcheck // body content is irrelevant

	return resp.Request.URL.String(), nil
}
