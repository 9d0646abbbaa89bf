package listing

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/reviewcheckk/listing-bot/internal/core/fields"
	"github.com/reviewcheckk/listing-bot/internal/core/links"
	"github.com/reviewcheckk/listing-bot/internal/core/links/linkextract"
	"github.com/reviewcheckk/listing-bot/internal/core/title"
	"github.com/reviewcheckk/listing-bot/internal/platform/observability"
)

// URLResolver canonicalizes one raw URL, following shortener redirects.
type URLResolver interface {
	Resolve(ctx context.Context, rawURL string) links.CanonicalURL
}

// TitleResolver runs the title fallback chain for one link.
type TitleResolver interface {
	Resolve(ctx context.Context, messageText, canonicalURL string) (string, title.Source, bool)
}

// Pipeline turns one inbound message into zero or more listing replies,
// one per detected link.
type Pipeline struct {
	urls   URLResolver
	titles TitleResolver
	logger *zerolog.Logger
}

func NewPipeline(urls URLResolver, titles TitleResolver, logger *zerolog.Logger) *Pipeline {
	return &Pipeline{urls: urls, titles: titles, logger: logger}
}

// Process runs every link in text through the pipeline and returns one
// reply per link, in link order. Links are processed sequentially so
// outbound request pacing stays predictable. Text without links yields
// nil.
func (p *Pipeline) Process(ctx context.Context, text string) []string {
	rawLinks := linkextract.DetectLinks(text)
	if len(rawLinks) == 0 {
		return nil
	}

	replies := make([]string, 0, len(rawLinks))

	for _, rawURL := range rawLinks {
		replies = append(replies, p.processLink(ctx, text, rawURL))
	}

	return replies
}

// processLink never fails: every outcome is a reply string. A panic in
// any stage is contained to this link and rendered as the failure reply.
func (p *Pipeline) processLink(ctx context.Context, text, rawURL string) (reply string) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error().Interface("panic", rec).Str("url", rawURL).Msg("link processing panicked")
			observability.LinksProcessed.WithLabelValues("panic").Inc()

			reply = FailureReply
		}
	}()

	start := time.Now()
	defer func() {
		observability.LinkProcessDuration.Observe(time.Since(start).Seconds())
	}()

	canonical := p.urls.Resolve(ctx, rawURL)

	resolved, source, ok := p.titles.Resolve(ctx, text, canonical.Value)
	if !ok {
		p.logger.Warn().Str("url", canonical.Value).Msg("title resolution exhausted")
		observability.LinksProcessed.WithLabelValues("title_failed").Inc()

		return FailureReply
	}

	observability.TitleSource.WithLabelValues(string(source)).Inc()

	formatted := title.FormatWithRules(resolved)
	if formatted == "" {
		observability.LinksProcessed.WithLabelValues("title_failed").Inc()

		return FailureReply
	}

	record := Record{
		Title:  formatted,
		URL:    canonical,
		Fields: extractFields(text, canonical.Host),
	}

	p.logger.Debug().
		Str("url", canonical.Value).
		Str("title", record.Title).
		Str("source", string(source)).
		Msg("link processed")
	observability.LinksProcessed.WithLabelValues("ok").Inc()

	return Render(record)
}

func extractFields(text, host string) ExtractedFields {
	extracted := ExtractedFields{
		Price:         fields.Price(text),
		IsMarketplace: fields.IsMarketplace(host),
	}

	if extracted.IsMarketplace {
		extracted.Size = fields.Size(text)
		extracted.Pin = fields.Pin(text)
	}

	return extracted
}
