package handlers

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pagesServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comicvault_pages_served_total",
		Help: "Number of comic pages served.",
	})

	scansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comicvault_scans_total",
		Help: "Number of completed library scans.",
	})

	scanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "comicvault_scan_duration_seconds",
		Help:    "Duration of library scans.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})
)

// MetricsHandler exposes the prometheus registry.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
