package guess

import (
	"fmt"
	"math/bits"
)

// Bracket holds the addresses of the two surviving neighbors in both lists.
type Bracket struct {
	OldBefore uint64
	OldAfter  uint64
	NewBefore uint64
	NewAfter  uint64
}

func (b Bracket) OldSpan() int64 { return int64(b.OldAfter - b.OldBefore) }

func (b Bracket) NewSpan() int64 { return int64(b.NewAfter - b.NewBefore) }

// SpanDelta is the absolute difference between the new and old spans.
func (b Bracket) SpanDelta() uint64 {
	d := b.NewSpan() - b.OldSpan()
	if d < 0 {
		return uint64(-d)
	}
	return uint64(d)
}

type Estimate struct {
	Kind       Kind
	SpanDelta  uint64
	Address    uint64
	Confidence float64
}

type Interpolator struct {
	tolerance uint64
	alignment uint64
}

func NewInterpolator(tolerance, alignment uint64) (*Interpolator, error) {
	if tolerance == 0 {
		return nil, fmt.Errorf("tolerance must be positive")
	}
	if alignment == 0 || bits.OnesCount64(alignment) != 1 {
		return nil, fmt.Errorf("alignment %d is not a power of two", alignment)
	}
	return &Interpolator{tolerance: tolerance, alignment: alignment}, nil
}

// Interpolate places oldTarget in the new layout at the same fraction of the
// neighbor span it occupied in the old layout, rounded up to the alignment.
func (ip *Interpolator) Interpolate(b Bracket, oldTarget uint64) Estimate {
	est := Estimate{SpanDelta: b.SpanDelta()}
	if est.SpanDelta > ip.tolerance {
		est.Kind = KindOutOfTolerance
		return est
	}

	oldSpan, newSpan := b.OldSpan(), b.NewSpan()
	if oldSpan == 0 {
		est.Kind = KindDegenerate
		return est
	}

	offset := int64(oldTarget - b.OldBefore)
	fraction := float64(offset) / float64(oldSpan)
	// Only the offset goes through float64; the base stays exact.
	off := int64(float64(newSpan) * fraction)
	if off < 0 && uint64(-off) > b.NewBefore {
		est.Kind = KindDegenerate
		return est
	}

	est.Kind = KindGuess
	est.Address = Align(b.NewBefore+uint64(off), ip.alignment)
	est.Confidence = ip.Confidence(est.SpanDelta)
	return est
}

// Confidence maps a span delta to [0, 1], 1 meaning both spans are equal.
func (ip *Interpolator) Confidence(spanDelta uint64) float64 {
	if spanDelta >= ip.tolerance {
		return 0
	}
	return float64(ip.tolerance-spanDelta) / float64(ip.tolerance)
}

// Align rounds addr up to the next multiple of alignment, a power of two.
func Align(addr, alignment uint64) uint64 {
	return (addr + alignment - 1) &^ (alignment - 1)
}
