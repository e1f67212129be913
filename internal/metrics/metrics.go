// Package metrics provides Prometheus instrumentation for the sales tracker.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SalesAppended counts records appended to the ledger.
	SalesAppended = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sales_tracker_sales_appended_total",
		Help: "Total number of sale records appended to the ledger",
	})

	// SubmissionsRejected counts submissions rejected by validation,
	// partitioned by the offending field.
	SubmissionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_tracker_submissions_rejected_total",
		Help: "Total number of sale submissions rejected by validation",
	}, []string{"field"})

	// ReportRenders counts report renders by kind and outcome.
	ReportRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_tracker_report_renders_total",
		Help: "Total number of report renders",
	}, []string{"kind", "outcome"})
)

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
