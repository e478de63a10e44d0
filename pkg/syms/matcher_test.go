package syms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinders(t *testing.T) {
	list := NewList("test",
		Symbol{Name: "A", Addr: 0x10},
		Symbol{Name: "B", Addr: 0x20},
		Symbol{Name: "A", Addr: 0x30},
		Symbol{Name: "b", Addr: 0x40},
	)

	testcases := []struct {
		name  string
		index int
		found bool
	}{
		{"A", 0, true},
		{"B", 1, true},
		{"b", 3, true},
		{"a", -1, false},
		{"", -1, false},
	}

	finders := map[string]Finder{
		"index":   NewIndex(list),
		"scanner": NewScanner(list),
	}
	for fname, f := range finders {
		t.Run(fname, func(t *testing.T) {
			for _, tt := range testcases {
				i, ok := f.Find(tt.name)
				assert.Equal(t, tt.found, ok, "find %q", tt.name)
				if tt.found {
					assert.Equal(t, tt.index, i, "find %q", tt.name)
				}
			}
		})
	}
	assert.Equal(t, 3, NewIndex(list).Size())
}

func TestList_Immutable(t *testing.T) {
	in := []Symbol{{Name: "A", Addr: 1}}
	list := NewList("test", in...)
	in[0].Name = "Z"
	out := list.Symbols()
	out[0].Name = "Y"
	assert.Equal(t, "A", list.At(0).Name)
}
