package guess

// locate finds the nearest older-list symbols on each side of index i that
// also exist in the newer list. The last older symbol is never used as the
// forward neighbor, mirroring the boundary rule for i itself.
func (r *Resolver) locate(i int) (before, after Neighbor, kind Kind) {
	last := r.older.Len() - 1
	if i == 0 || i == last {
		return before, after, KindBoundary
	}

	var ok bool
	if before, ok = r.neighbor(i-1, -1, 0); !ok {
		return before, after, KindNoNeighbors
	}
	if after, ok = r.neighbor(i+1, 1, last-1); !ok {
		return before, after, KindNoNeighbors
	}
	return before, after, KindGuess
}

// neighbor walks from start towards stop (inclusive) by step and returns the
// first symbol with a same-named counterpart in the newer list.
func (r *Resolver) neighbor(start, step, stop int) (Neighbor, bool) {
	for j := start; (step < 0 && j >= stop) || (step > 0 && j <= stop); j += step {
		sym := r.older.At(j)
		if k, ok := r.finder.Find(sym.Name); ok {
			return Neighbor{OldIndex: j, NewIndex: k, Old: sym, New: r.newer.At(k)}, true
		}
	}
	return Neighbor{}, false
}
