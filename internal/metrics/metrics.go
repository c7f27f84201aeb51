// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the prometheus collectors of the session engine and
// of the HTTP gateway. Every recorder method is safe to call on a nil
// receiver, so components can run without metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "indie_chat"

// Fetch outcomes reported by [Session.ObserveFetch].
const (
	FetchSynced = "synced"
	FetchEmpty  = "empty"
	FetchFailed = "failed"
)

// Session collects counters of discovery and message sync.
type Session struct {
	discoveryRuns       prometheus.Counter
	discoveryFailures   prometheus.Counter
	fetches             *prometheus.CounterVec
	staleActions        prometheus.Counter
	syncedConversations prometheus.Gauge
}

// NewSession creates session collectors and registers them on reg. A nil reg
// leaves them unregistered.
func NewSession(reg prometheus.Registerer) *Session {
	m := &Session{
		discoveryRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "discovery_runs_total",
			Help:      "Conversation discovery runs.",
		}),
		discoveryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "discovery_failures_total",
			Help:      "Conversation discovery runs that failed to list conversations.",
		}),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "message_fetches_total",
			Help:      "Per-conversation message fetches by outcome.",
		}, []string{"outcome"}),
		staleActions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "stale_actions_total",
			Help:      "State updates rejected because their session generation ended.",
		}),
		syncedConversations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "synced_conversations",
			Help:      "Conversations with synced messages in the current session.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.discoveryRuns, m.discoveryFailures, m.fetches, m.staleActions, m.syncedConversations)
	}
	return m
}

// ObserveDiscovery counts a discovery run and its failure, if any.
func (m *Session) ObserveDiscovery(err error) {
	if m == nil {
		return
	}
	m.discoveryRuns.Inc()
	if err != nil {
		m.discoveryFailures.Inc()
	}
}

// ObserveFetch counts a message fetch with one of the Fetch* outcomes.
func (m *Session) ObserveFetch(outcome string) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(outcome).Inc()
}

// ObserveStale counts a rejected stale action.
func (m *Session) ObserveStale() {
	if m == nil {
		return
	}
	m.staleActions.Inc()
}

// SetSynced reports the number of conversations with messages.
func (m *Session) SetSynced(n int) {
	if m == nil {
		return
	}
	m.syncedConversations.Set(float64(n))
}

// HTTP collects request counters and latencies of an HTTP surface.
type HTTP struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTP creates HTTP collectors under subsystem (e.g. "gateway",
// "devnet") and registers them on reg. A nil reg leaves them unregistered.
func NewHTTP(reg prometheus.Registerer, subsystem string) *HTTP {
	m := &HTTP{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

// ObserveRequest records one finished request.
func (m *HTTP) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Middleware records every request passing through a chi router, labelled
// with the matched route pattern.
func (m *HTTP) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.ObserveRequest(route, r.Method, status, time.Since(start))
	})
}

// Handler exposes the collectors gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
