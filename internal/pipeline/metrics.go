package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics, registered on the default registry and served by the
// transport layer's /metrics endpoint.
var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cfocli_pipeline_runs_total",
		Help: "Cleaning pipeline runs, by dataset family and outcome.",
	}, []string{"dataset", "outcome"})

	rowsPruned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cfocli_pipeline_rows_pruned_total",
		Help: "Raw rows removed by the pruning stage, by dataset family.",
	}, []string{"dataset"})

	headerMismatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cfocli_pipeline_header_mismatches_total",
		Help: "Soft header shape mismatches that fell back to sanitized labels.",
	}, []string{"dataset"})

	sheetFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cfocli_pipeline_sheet_failures_total",
		Help: "Sheets of multi-sheet workbooks that produced no usable table.",
	}, []string{"dataset", "sheet"})
)
