package syms

// Index is a Finder backed by a name to position map built once.
type Index struct {
	positions map[string]int
}

var _ Finder = (*Index)(nil)

func NewIndex(l *List) *Index {
	this := &Index{positions: make(map[string]int, l.Len())}
	for i, sym := range l.symbols {
		if _, ok := this.positions[sym.Name]; !ok {
			this.positions[sym.Name] = i
		}
	}
	return this
}

func (x *Index) Find(name string) (int, bool) {
	i, ok := x.positions[name]
	return i, ok
}

func (x *Index) Size() int { return len(x.positions) }

// Scanner is a Finder doing a linear scan on every lookup.
type Scanner struct {
	list *List
}

var _ Finder = (*Scanner)(nil)

func NewScanner(l *List) *Scanner { return &Scanner{list: l} }

func (s *Scanner) Find(name string) (int, bool) {
	for i, sym := range s.list.symbols {
		if sym.Name == name {
			return i, true
		}
	}
	return -1, false
}
