package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listing_messages_handled_total",
		Help: "The total number of handled inbound messages",
	}, []string{"kind"})

	LinksProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listing_links_processed_total",
		Help: "The total number of links run through the pipeline",
	}, []string{"status"})

	TitleSource = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listing_title_source_total",
		Help: "The total number of resolved titles by fallback source",
	}, []string{"source"})

	RepliesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listing_replies_sent_total",
		Help: "The total number of replies sent",
	}, []string{"status"})

	ResolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "listing_resolve_duration_seconds",
		Help:    "Duration of shortener redirect resolution",
		Buckets: prometheus.DefBuckets,
	})

	PageFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "listing_page_fetch_duration_seconds",
		Help:    "Duration of product page fetches",
		Buckets: prometheus.DefBuckets,
	})

	LinkProcessDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "listing_link_process_duration_seconds",
		Help:    "End-to-end duration of processing a single link",
		Buckets: prometheus.DefBuckets,
	})
)
