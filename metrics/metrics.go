// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry *prometheus.Registry

	BrowsersRegistered prometheus.Counter
	ProblemsCreated    prometheus.Counter
	VotesCast          prometheus.Counter
	DuplicateVotes     prometheus.Counter
	VotesCleared       prometheus.Counter
	RequestDuration    *prometheus.HistogramVec
}

// New creates the metrics on a private registry, so tests can build as
// many as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		BrowsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "ineedasolution_browsers_registered_total",
			Help: "Total number of new browser fingerprints registered",
		}),
		ProblemsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ineedasolution_problems_created_total",
			Help: "Total number of problems submitted",
		}),
		VotesCast: factory.NewCounter(prometheus.CounterOpts{
			Name: "ineedasolution_votes_cast_total",
			Help: "Total number of votes recorded",
		}),
		DuplicateVotes: factory.NewCounter(prometheus.CounterOpts{
			Name: "ineedasolution_duplicate_votes_total",
			Help: "Total number of votes rejected because the browser already voted",
		}),
		VotesCleared: factory.NewCounter(prometheus.CounterOpts{
			Name: "ineedasolution_votes_cleared_total",
			Help: "Total number of votes removed by ledger resets",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ineedasolution_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "code"}),
	}
}

func (m *Metrics) IncrementBrowsersRegistered() { m.BrowsersRegistered.Inc() }
func (m *Metrics) IncrementProblemsCreated()    { m.ProblemsCreated.Inc() }
func (m *Metrics) IncrementVotesCast()          { m.VotesCast.Inc() }
func (m *Metrics) IncrementDuplicateVotes()     { m.DuplicateVotes.Inc() }

// AddVotesCleared records n votes removed by a reset
func (m *Metrics) AddVotesCleared(n int64) {
	m.VotesCleared.Add(float64(n))
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Instrument observes the latency of next under the given route label
func (m *Metrics) Instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		m.RequestDuration.
			WithLabelValues(route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
