package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//**********************************************************
// metrics
//**********************************************************

type MetricsCollector struct {
	reg *prometheus.Registry

	Queries       *prometheus.CounterVec // status label: ok|empty|invalid
	SnapFailures  prometheus.Counter
	Truncated     prometheus.Counter
	VisitedNodes  prometheus.Histogram
	QueryDuration prometheus.Histogram
}

func NewMetricsCollector() *MetricsCollector {
	reg := prometheus.NewRegistry()

	c := &MetricsCollector{
		reg: reg,
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transit_queries_total",
			Help: "Total journey queries by outcome.",
		}, []string{"status"}),
		SnapFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "transit_snap_failures_total",
			Help: "Total query points that could not be snapped to the network.",
		}),
		Truncated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "transit_truncated_searches_total",
			Help: "Total searches stopped on the visited-node budget.",
		}),
		VisitedNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "transit_visited_nodes",
			Help:    "Visited nodes per search.",
			Buckets: prometheus.ExponentialBuckets(100, 4, 10),
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "transit_query_duration_seconds",
			Help:    "Journey query duration.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(c.Queries, c.SnapFailures, c.Truncated, c.VisitedNodes, c.QueryDuration)
	return c
}

func (self *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(self.reg, promhttp.HandlerOpts{})
}
