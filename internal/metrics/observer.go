package metrics

import (
	pqerrors "github.com/23skdu/indexpq/internal/errors"
)

// HeapObserver records indexed heap activity in Prometheus. It satisfies
// indexpq.Observer and is attached with indexpq.WithObserver.
type HeapObserver struct {
	// TrackSize enables the heap size histogram, which costs one
	// observation per mutation.
	TrackSize bool
}

// NewHeapObserver returns an observer that counts operations and errors.
func NewHeapObserver() *HeapObserver {
	return &HeapObserver{}
}

// ObserveOperation counts a successful mutation.
func (o *HeapObserver) ObserveOperation(op string, size int) {
	HeapOperationsTotal.WithLabelValues(op).Inc()
	if o.TrackSize {
		HeapSize.Observe(float64(size))
	}
}

// ObserveError counts a rejected operation by its error kind.
func (o *HeapObserver) ObserveError(op string, err error) {
	kind := string(pqerrors.TypeOf(err))
	if kind == "" {
		kind = "unknown"
	}
	HeapErrorsTotal.WithLabelValues(op, kind).Inc()
}
