package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HeapOperationsTotal counts successful mutating heap operations
	HeapOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexpq_heap_operations_total",
			Help: "Total number of successful indexed heap mutations",
		},
		[]string{"op"},
	)

	// HeapErrorsTotal counts rejected heap operations by error kind
	HeapErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexpq_heap_errors_total",
			Help: "Total number of rejected indexed heap operations",
		},
		[]string{"op", "kind"},
	)

	// HeapSize tracks the size reported after the most recent mutation
	HeapSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "indexpq_heap_size",
			Help:    "Heap size observed after each mutation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	// GraphRunDurationSeconds measures graph algorithm runs
	GraphRunDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "indexpq_graph_run_duration_seconds",
			Help:    "Duration of shortest path and spanning tree runs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"algorithm"},
	)

	// GraphVerticesSettledTotal counts vertices removed from the heap by graph algorithms
	GraphVerticesSettledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexpq_graph_vertices_settled_total",
			Help: "Total number of vertices settled by graph algorithms",
		},
		[]string{"algorithm"},
	)

	// VertexSetPoolOperations counts get/put calls on the vertex set pool
	VertexSetPoolOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexpq_vertex_set_pool_operations_total",
			Help: "Total number of vertex set pool operations",
		},
		[]string{"op"},
	)

	// BenchTrialsTotal counts benchmark trials by outcome
	BenchTrialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexpq_bench_trials_total",
			Help: "Total number of benchmark trials",
		},
		[]string{"status"},
	)

	// LogEntriesTotal counts log entries by level
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexpq_log_entries_total",
			Help: "Total number of log entries by level",
		},
		[]string{"level"},
	)

	// LogErrorsTotal counts error-level log entries specifically
	LogErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "indexpq_log_errors_total",
			Help: "Total number of error log entries",
		},
	)
)
