package syms

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ianlancetaylor/demangle"
)

type Symbol struct {
	Name string `json:"name"`
	Addr uint64 `json:"addr"`
}

func (s Symbol) String() string { return fmt.Sprintf("%s - %#x", s.Name, s.Addr) }

// List is an ordered, read-only sequence of symbols as they appeared in the
// source dump.
type List struct {
	source  string
	symbols []Symbol
}

func NewList(source string, symbols ...Symbol) *List {
	return &List{source: source, symbols: slices.Clone(symbols)}
}

func (l *List) Source() string { return l.source }

func (l *List) Len() int { return len(l.symbols) }

func (l *List) At(i int) Symbol { return l.symbols[i] }

func (l *List) Symbols() []Symbol { return slices.Clone(l.symbols) }

type DemangleType string

const (
	DemangleNone       DemangleType = "NONE"
	DemangleSimplified DemangleType = "SIMPLIFIED"
	DemangleTemplates  DemangleType = "TEMPLATES"
	DemangleFull       DemangleType = "FULL"
)

func ParseDemangleType(s string) (DemangleType, error) {
	switch dt := DemangleType(strings.ToUpper(strings.TrimSpace(s))); dt {
	case "":
		return DemangleNone, nil
	case DemangleNone, DemangleSimplified, DemangleTemplates, DemangleFull:
		return dt, nil
	}
	return DemangleNone, fmt.Errorf("unknown demangle type %q", s)
}

func (dt DemangleType) ToOptions() []demangle.Option {
	switch dt {
	case DemangleNone:
		return nil
	case DemangleSimplified:
		return []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams, demangle.NoTemplateParams}
	case DemangleTemplates:
		return []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams}
	default:
		return []demangle.Option{demangle.NoClones}
	}
}

// Demangle returns the human readable form of name. Names which are not
// mangled, or any name when dt is DemangleNone, are returned unchanged.
func (dt DemangleType) Demangle(name string) string {
	if dt == DemangleNone || dt == "" {
		return name
	}
	return demangle.Filter(name, dt.ToOptions()...)
}
