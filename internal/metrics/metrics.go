package metrics

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"

	"travelrec/internal/db"
)

// Dataset load outcome labels
const (
	LoadSucceeded = "success"
	LoadFailed    = "failure"
)

// maxKeywordLabel bounds the length of persisted free-text keywords.
const maxKeywordLabel = 64

var (
	searchLookupDesc = prometheus.NewDesc(
		"travelrec_search_lookups_total",
		"Total persisted search lookup count by keyword and outcome",
		[]string{"keyword", "outcome"},
		nil,
	)

	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travelrec",
			Name:      "search_total",
			Help:      "Total searches by category and outcome",
		},
		[]string{"category", "outcome"},
	)

	datasetLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travelrec",
			Name:      "dataset_loads_total",
			Help:      "Total dataset load attempts by outcome",
		},
		[]string{"outcome"},
	)

	datasetDestinations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "travelrec",
			Name:      "dataset_destinations",
			Help:      "Number of destinations in the current dataset (0 when absent)",
		},
	)
)

func init() {
	prometheus.MustRegister(searchesTotal)
	prometheus.MustRegister(datasetLoadsTotal)
	prometheus.MustRegister(datasetDestinations)
}

// LookupCollector is a custom Prometheus collector that reads search lookup
// counts from the database on each scrape.
type LookupCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *LookupCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- searchLookupDesc
}

// Collect queries the database for all search lookups and emits them as counters.
func (c *LookupCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.db.GetAllSearchLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect search lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			searchLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Keyword,
			l.Outcome,
		)
	}
}

// Recorder provides async search lookup persistence.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the database-backed collector and initializes the recorder.
// Call once at startup when a database is configured.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&LookupCollector{db: database})
	})
}

// RecordSearch counts a search outcome and, when a database is configured,
// asynchronously persists the normalized keyword.
func RecordSearch(keyword, category, outcome string) {
	searchesTotal.WithLabelValues(category, outcome).Inc()

	if recorder == nil {
		return
	}
	keyword = truncateKeyword(keyword)
	go func() {
		if err := recorder.db.IncrementSearchLookup(context.Background(), keyword, outcome); err != nil {
			slog.Error("failed to record search lookup", "keyword", keyword, "outcome", outcome, "error", err)
		}
	}()
}

// truncateKeyword returns valid UTF-8 of at most maxKeywordLabel bytes,
// never splitting a rune.
func truncateKeyword(keyword string) string {
	keyword = strings.ToValidUTF8(keyword, "\uFFFD")
	if len(keyword) <= maxKeywordLabel {
		return keyword
	}
	n := maxKeywordLabel
	for n > 0 && !utf8.RuneStart(keyword[n]) {
		n--
	}
	return keyword[:n]
}

// RecordDatasetLoad counts a load attempt and publishes the dataset size.
func RecordDatasetLoad(outcome string, destinations int) {
	datasetLoadsTotal.WithLabelValues(outcome).Inc()
	datasetDestinations.Set(float64(destinations))
}
