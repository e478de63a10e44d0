package guess

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/symguess/pkg/logging/logfields"
	"github.com/vietanhduong/symguess/pkg/syms"
	"golang.org/x/sync/errgroup"
)

// Resolver estimates new addresses for older-list symbols that are missing
// from the newer list. Both lists are only read, so a Resolver may be used
// from several goroutines.
type Resolver struct {
	older   *syms.List
	newer   *syms.List
	finder  syms.Finder
	interp  *Interpolator
	workers int
	stats   *Stats
}

func NewResolver(older, newer *syms.List, opt ...Option) (*Resolver, error) {
	opts := defaultOptions()
	for _, o := range opt {
		o(opts)
	}
	interp, err := NewInterpolator(opts.tolerance, opts.alignment)
	if err != nil {
		return nil, fmt.Errorf("new interpolator: %w", err)
	}
	if opts.finder == nil {
		opts.finder = syms.NewIndex(newer)
	}
	return &Resolver{
		older:   older,
		newer:   newer,
		finder:  opts.finder,
		interp:  interp,
		workers: opts.workers,
		stats:   NewStats(),
	}, nil
}

func (r *Resolver) Stats() *Stats { return r.stats }

func (r *Resolver) Resolve(i int) Result {
	res := r.resolve(i)
	r.stats.Add(res.Kind)
	return res
}

func (r *Resolver) resolve(i int) Result {
	res := Result{Index: i, Symbol: r.older.At(i)}
	if _, ok := r.finder.Find(res.Symbol.Name); ok {
		res.Kind = KindPresent
		return res
	}

	res.Before, res.After, res.Kind = r.locate(i)
	if res.Kind != KindGuess {
		return res
	}

	est := r.interp.Interpolate(Bracket{
		OldBefore: res.Before.Old.Addr,
		OldAfter:  res.After.Old.Addr,
		NewBefore: res.Before.New.Addr,
		NewAfter:  res.After.New.Addr,
	}, res.Symbol.Addr)
	res.Kind = est.Kind
	res.SpanDelta = est.SpanDelta
	res.Address = est.Address
	res.Confidence = est.Confidence

	if res.Kind == KindDegenerate {
		log.WithFields(logrus.Fields{
			logfields.Symbol: res.Symbol.Name,
			logfields.Kind:   res.Kind,
			"before":         res.Before.Old.String(),
			"after":          res.After.Old.String(),
		}).Debug("Neighbor span leaves no room to interpolate")
	}
	return res
}

// ResolveAll resolves every older-list symbol and returns the results in
// older-list order.
func (r *Resolver) ResolveAll(ctx context.Context) ([]Result, error) {
	results := make([]Result, r.older.Len())
	if r.workers <= 1 || len(results) < 2 {
		for i := range results {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = r.Resolve(i)
		}
		return results, nil
	}

	chunk := (len(results) + r.workers - 1) / r.workers
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for lo := 0; lo < len(results); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(results))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = r.Resolve(i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve symbols: %w", err)
	}
	return results, nil
}

// Run calls fn with each result in older-list order. With a single worker
// results are streamed as they are computed; otherwise they are resolved in
// parallel first. Run stops at the first error returned by fn.
func (r *Resolver) Run(ctx context.Context, fn func(Result) error) error {
	log.WithFields(logrus.Fields{
		logfields.Symbols: r.older.Len(),
		logfields.Workers: r.workers,
	}).Debug("Resolving symbols")

	if r.workers <= 1 {
		for i := 0; i < r.older.Len(); i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(r.Resolve(i)); err != nil {
				return err
			}
		}
		return nil
	}

	results, err := r.ResolveAll(ctx)
	if err != nil {
		return err
	}
	for _, res := range results {
		if err := fn(res); err != nil {
			return err
		}
	}
	return nil
}
