package indexpq

// Operation names reported to an Observer.
const (
	OpInsert      = "insert"
	OpDeleteMin   = "delete_min"
	OpDelete      = "delete"
	OpChangeKey   = "change_key"
	OpDecreaseKey = "decrease_key"
	OpIncreaseKey = "increase_key"
	OpMinIndex    = "min_index"
	OpMinKey      = "min_key"
	OpKeyOf       = "key_of"
	OpContains    = "contains"
)

// Observer receives a callback after every mutating operation and every
// failed operation. Implementations must be cheap; they run inline.
type Observer interface {
	// ObserveOperation is called after a successful mutation with the new size.
	ObserveOperation(op string, size int)
	// ObserveError is called before a failure is returned to the caller.
	ObserveError(op string, err error)
}

// Option configures an IndexedMinHeap at construction.
type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver attaches an Observer to the heap.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}
