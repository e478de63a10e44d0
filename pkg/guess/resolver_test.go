package guess

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietanhduong/symguess/pkg/syms"
	"github.com/vietanhduong/symguess/pkg/syms/cache"
)

func list(source string, pairs ...any) *syms.List {
	var symbols []syms.Symbol
	for i := 0; i < len(pairs); i += 2 {
		symbols = append(symbols, syms.Symbol{Name: pairs[i].(string), Addr: uint64(pairs[i+1].(int))})
	}
	return syms.NewList(source, symbols...)
}

func newTestResolver(t *testing.T, older, newer *syms.List, opt ...Option) *Resolver {
	t.Helper()
	r, err := NewResolver(older, newer, opt...)
	require.NoError(t, err)
	return r
}

func TestResolver_Resolve(t *testing.T) {
	older := list("older", "A", 0x1000, "B", 0x1010, "C", 0x1030, "D", 0x1040)

	t.Run("exact span", func(t *testing.T) {
		newer := list("newer", "A", 0x2000, "C", 0x2030, "D", 0x2050)
		r := newTestResolver(t, older, newer)

		res := r.Resolve(1)
		assert.Equal(t, KindGuess, res.Kind)
		assert.Equal(t, uint64(0x2010), res.Address)
		assert.Equal(t, 1.0, res.Confidence)
		assert.Equal(t, uint64(0), res.SpanDelta)
		assert.Equal(t, Neighbor{OldIndex: 0, NewIndex: 0, Old: older.At(0), New: newer.At(0)}, res.Before)
		assert.Equal(t, Neighbor{OldIndex: 2, NewIndex: 1, Old: older.At(2), New: newer.At(1)}, res.After)

		for _, i := range []int{0, 2, 3} {
			assert.Equal(t, KindPresent, r.Resolve(i).Kind, "index %d", i)
		}
	})

	t.Run("large jump", func(t *testing.T) {
		newer := list("newer", "A", 0x2000, "C", 0x2200, "D", 0x2250)
		res := newTestResolver(t, older, newer).Resolve(1)
		assert.Equal(t, KindGuess, res.Kind)
		assert.Equal(t, uint64(464), res.SpanDelta)
		assert.Equal(t, uint64(0x20b0), res.Address)
		assert.InDelta(t, 0.09375, res.Confidence, 1e-9)
		assert.Equal(t, "9.4", fmt.Sprintf("%.1f", res.Confidence*100))
	})

	t.Run("out of tolerance", func(t *testing.T) {
		newer := list("newer", "A", 0x2000, "C", 0x2400, "D", 0x2450)
		res := newTestResolver(t, older, newer).Resolve(1)
		assert.Equal(t, KindOutOfTolerance, res.Kind)
		assert.Equal(t, uint64(0x400-0x30), res.SpanDelta)
		assert.Zero(t, res.Address)
	})

	t.Run("custom tolerance", func(t *testing.T) {
		newer := list("newer", "A", 0x2000, "C", 0x2400, "D", 0x2450)
		res := newTestResolver(t, older, newer, WithTolerance(2048)).Resolve(1)
		assert.Equal(t, KindGuess, res.Kind)
	})
}

func TestResolver_KernelAddresses(t *testing.T) {
	older := syms.NewList("older",
		syms.Symbol{Name: "do_syscall_64", Addr: 0xffffffff81000000},
		syms.Symbol{Name: "__x64_sys_read", Addr: 0xffffffff81000040},
		syms.Symbol{Name: "ksys_read", Addr: 0xffffffff81000080},
		syms.Symbol{Name: "vfs_read", Addr: 0xffffffff810000c0},
	)
	newer := syms.NewList("newer",
		syms.Symbol{Name: "do_syscall_64", Addr: 0xffffffff81200000},
		syms.Symbol{Name: "ksys_read", Addr: 0xffffffff81200080},
		syms.Symbol{Name: "vfs_read", Addr: 0xffffffff812000c0},
	)
	res := newTestResolver(t, older, newer).Resolve(1)
	assert.Equal(t, KindGuess, res.Kind)
	assert.Equal(t, uint64(0xffffffff81200040), res.Address)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestResolver_Boundary(t *testing.T) {
	older := list("older", "X", 0x10, "A", 0x20, "B", 0x30, "Y", 0x40)
	newer := list("newer", "A", 0x120, "B", 0x130, "X", 0x99999)
	r := newTestResolver(t, older, newer)

	assert.Equal(t, KindPresent, r.Resolve(0).Kind)
	res := r.Resolve(3)
	assert.Equal(t, KindBoundary, res.Kind)
	assert.True(t, res.Kind.Unresolvable())

	r = newTestResolver(t, older, list("newer", "A", 0x120, "B", 0x130))
	assert.Equal(t, KindBoundary, r.Resolve(0).Kind)
	assert.Equal(t, KindBoundary, r.Resolve(3).Kind)
}

func TestResolver_NoNeighbors(t *testing.T) {
	older := list("older", "A", 0x10, "B", 0x20, "C", 0x30, "D", 0x40)

	t.Run("nothing before", func(t *testing.T) {
		r := newTestResolver(t, older, list("newer", "C", 0x130, "D", 0x140))
		assert.Equal(t, KindNoNeighbors, r.Resolve(1).Kind)
	})
	t.Run("last symbol is never a neighbor", func(t *testing.T) {
		r := newTestResolver(t, older, list("newer", "A", 0x110, "D", 0x140))
		res := r.Resolve(1)
		assert.Equal(t, KindNoNeighbors, res.Kind)
		assert.True(t, res.Kind.Unresolvable())
	})
	t.Run("first symbol can be a neighbor", func(t *testing.T) {
		r := newTestResolver(t, older, list("newer", "A", 0x110, "C", 0x130, "D", 0x140))
		res := r.Resolve(1)
		assert.Equal(t, KindGuess, res.Kind)
		assert.Equal(t, 0, res.Before.OldIndex)
	})
	t.Run("nearest neighbors win", func(t *testing.T) {
		older := list("older", "A", 0x10, "B", 0x20, "C", 0x30, "D", 0x40, "E", 0x50, "F", 0x60)
		r := newTestResolver(t, older, list("newer", "A", 0x110, "B", 0x120, "E", 0x150, "F", 0x160))
		res := r.Resolve(2)
		assert.Equal(t, KindGuess, res.Kind)
		assert.Equal(t, "B", res.Before.Old.Name)
		assert.Equal(t, "E", res.After.Old.Name)
		assert.Equal(t, uint64(0x130), res.Address)
	})
}

func TestResolver_Degenerate(t *testing.T) {
	older := list("older", "A", 0x1000, "B", 0x1000, "C", 0x1000, "D", 0x2000)
	newer := list("newer", "A", 0x5000, "C", 0x5000, "D", 0x6000)
	res := newTestResolver(t, older, newer).Resolve(1)
	assert.Equal(t, KindDegenerate, res.Kind)
	assert.True(t, res.Kind.Unresolvable())
}

func TestResolver_DuplicateNames(t *testing.T) {
	older := list("older", "A", 0x1000, "B", 0x1010, "C", 0x1030, "D", 0x1040)
	newer := list("newer", "A", 0x2000, "C", 0x2030, "C", 0x9000, "D", 0x2050)
	res := newTestResolver(t, older, newer).Resolve(1)
	assert.Equal(t, KindGuess, res.Kind)
	assert.Equal(t, uint64(0x2030), res.After.New.Addr)
}

// synthetic builds an older list and a newer list where every fifth symbol
// is dropped and functions drift a little after each removed one.
func synthetic(n int) (*syms.List, *syms.List) {
	var older, newer []syms.Symbol
	var shift uint64
	for i := 0; i < n; i++ {
		sym := syms.Symbol{Name: fmt.Sprintf("FUN_%05d", i), Addr: 0x140001000 + uint64(i)*0x40 + uint64(i%3)*0x10}
		older = append(older, sym)
		if i%5 == 2 {
			shift += 0x10
			continue
		}
		newer = append(newer, syms.Symbol{Name: sym.Name, Addr: sym.Addr + 0x2000 + shift})
	}
	return syms.NewList("older", older...), syms.NewList("newer", newer...)
}

func TestResolver_ResolveAll(t *testing.T) {
	older, newer := synthetic(1000)

	sequential := newTestResolver(t, older, newer)
	want, err := sequential.ResolveAll(context.Background())
	require.NoError(t, err)
	require.Len(t, want, older.Len())

	for i, res := range want {
		require.Equal(t, i, res.Index)
		if res.Kind == KindGuess {
			assert.Zero(t, res.Address%DefaultAlignment)
		}
	}
	assert.Equal(t, 800, sequential.Stats().Count(KindPresent))
	assert.Equal(t, 200, sequential.Stats().Count(KindGuess))
	assert.Equal(t, older.Len(), sequential.Stats().Total())

	scanner, err := cache.New(syms.NewScanner(newer).Find, 128)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			r := newTestResolver(t, older, newer, WithWorkers(workers), WithFinder(scanner))
			got, err := r.ResolveAll(context.Background())
			require.NoError(t, err)
			diff := cmp.Diff(want, got)
			assert.Empty(t, diff, "Diff (-want,+got):\n%s", diff)
			assert.Equal(t, sequential.Stats().Fields(), r.Stats().Fields())
		})
	}
}

func TestResolver_Run(t *testing.T) {
	older, newer := synthetic(50)
	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			r := newTestResolver(t, older, newer, WithWorkers(workers))
			var indices []int
			err := r.Run(context.Background(), func(res Result) error {
				indices = append(indices, res.Index)
				return nil
			})
			require.NoError(t, err)
			require.Len(t, indices, older.Len())
			for i, idx := range indices {
				assert.Equal(t, i, idx)
			}

			stop := errors.New("stop")
			var calls int
			err = r.Run(context.Background(), func(Result) error {
				calls++
				return stop
			})
			assert.ErrorIs(t, err, stop)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestResolver_Canceled(t *testing.T) {
	older, newer := synthetic(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		_, err := newTestResolver(t, older, newer, WithWorkers(workers)).ResolveAll(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestNewResolver_InvalidOptions(t *testing.T) {
	older, newer := synthetic(10)
	_, err := NewResolver(older, newer, WithAlignment(24))
	assert.Error(t, err)
	_, err = NewResolver(older, newer, WithTolerance(0))
	assert.Error(t, err)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "out-of-tolerance", KindOutOfTolerance.String())
	assert.Equal(t, "unknown", Kind(42).String())
	assert.False(t, KindGuess.Unresolvable())
	assert.False(t, KindOutOfTolerance.Unresolvable())
}
