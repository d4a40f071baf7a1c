package graph

import (
	"github.com/rs/zerolog"

	"github.com/23skdu/indexpq/indexpq"
)

// Option configures a graph algorithm run.
type Option func(*runOptions)

type runOptions struct {
	logger   zerolog.Logger
	observer indexpq.Observer
}

func defaultRunOptions() runOptions {
	return runOptions{logger: zerolog.Nop()}
}

// WithLogger sets the logger used for run summaries.
//
//nolint:gocritic // Logger passed by value for option simplicity
func WithLogger(logger zerolog.Logger) Option {
	return func(o *runOptions) {
		o.logger = logger
	}
}

// WithHeapObserver attaches an observer to the priority queue of each run.
func WithHeapObserver(obs indexpq.Observer) Option {
	return func(o *runOptions) {
		o.observer = obs
	}
}

func (o runOptions) heapOptions() []indexpq.Option {
	if o.observer == nil {
		return nil
	}
	return []indexpq.Option{indexpq.WithObserver(o.observer)}
}
