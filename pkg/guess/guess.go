package guess

import (
	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/symguess/pkg/logging"
	"github.com/vietanhduong/symguess/pkg/logging/logfields"
	"github.com/vietanhduong/symguess/pkg/syms"
)

var log = logging.DefaultLogger.WithFields(logrus.Fields{logfields.LogSubsys: "guess"})

const (
	// DefaultTolerance is the largest span difference, in bytes, between the
	// old and new neighbor pair that still yields a guess.
	DefaultTolerance uint64 = 512
	// DefaultAlignment is the function alignment of the target binaries.
	DefaultAlignment uint64 = 16
)

type Kind int

const (
	// KindPresent means the symbol kept its name in the newer list.
	KindPresent Kind = iota
	// KindBoundary is the first or last symbol of the older list.
	KindBoundary
	// KindNoNeighbors means one of the neighbor scans found nothing.
	KindNoNeighbors
	// KindDegenerate means the neighbors leave nothing to interpolate over.
	KindDegenerate
	KindOutOfTolerance
	KindGuess
)

var kindNames = [...]string{
	KindPresent:        "present",
	KindBoundary:       "boundary",
	KindNoNeighbors:    "no-neighbors",
	KindDegenerate:     "degenerate",
	KindOutOfTolerance: "out-of-tolerance",
	KindGuess:          "guess",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Unresolvable reports whether no neighbor pair could be used.
func (k Kind) Unresolvable() bool {
	return k == KindBoundary || k == KindNoNeighbors || k == KindDegenerate
}

type Neighbor struct {
	OldIndex int
	NewIndex int
	Old      syms.Symbol
	New      syms.Symbol
}

type Result struct {
	// Index is the position of Symbol in the older list.
	Index  int
	Symbol syms.Symbol
	Kind   Kind

	Before Neighbor
	After  Neighbor

	SpanDelta  uint64
	Address    uint64
	Confidence float64
}
