package guess

import (
	"github.com/vietanhduong/symguess/pkg/syms"
)

type options struct {
	tolerance uint64
	alignment uint64
	workers   int
	finder    syms.Finder
}

type Option func(*options)

func WithTolerance(tolerance uint64) Option {
	return func(o *options) { o.tolerance = tolerance }
}

func WithAlignment(alignment uint64) Option {
	return func(o *options) { o.alignment = alignment }
}

// WithWorkers sets how many goroutines ResolveAll and Run use. Values below
// one resolve sequentially.
func WithWorkers(workers int) Option {
	return func(o *options) {
		if workers < 1 {
			workers = 1
		}
		o.workers = workers
	}
}

// WithFinder must index the newer list passed to NewResolver.
func WithFinder(finder syms.Finder) Option {
	return func(o *options) {
		if finder != nil {
			o.finder = finder
		}
	}
}

func defaultOptions() *options {
	return &options{
		tolerance: DefaultTolerance,
		alignment: DefaultAlignment,
		workers:   1,
	}
}
