package report

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/vietanhduong/symguess/pkg/guess"
	"github.com/vietanhduong/symguess/pkg/syms"
)

// Formatter renders a single result. It returns false for results that
// produce no output.
type Formatter interface {
	Format(res guess.Result) (string, bool)
}

func skipMessage(res guess.Result, name string) string {
	switch res.Kind {
	case guess.KindBoundary:
		return fmt.Sprintf("skipping %s, impossible to find two neighboring functions for it", name)
	case guess.KindNoNeighbors:
		return fmt.Sprintf("Failed to find neighboring functions for %s, skipping", name)
	case guess.KindDegenerate:
		return fmt.Sprintf("skipping %s, neighboring functions leave no room to interpolate", name)
	case guess.KindOutOfTolerance:
		return fmt.Sprintf("skipping %s, hard to estimate the correct location (%db distance difference)", name, res.SpanDelta)
	}
	return fmt.Sprintf("skipping %s, unknown result %s", name, res.Kind)
}

func percent(confidence float64) string { return fmt.Sprintf("%.1f%%", confidence*100) }

type Plain struct {
	Demangle syms.DemangleType
}

var _ Formatter = (*Plain)(nil)

func (p *Plain) Format(res guess.Result) (string, bool) {
	name := p.Demangle.Demangle(res.Symbol.Name)
	switch res.Kind {
	case guess.KindPresent:
		return "", false
	case guess.KindGuess:
		return fmt.Sprintf("%s - %#x (confidence %s)", name, res.Address, percent(res.Confidence)), true
	}
	return skipMessage(res, name), true
}

// Styled renders the same text as Plain with 256-color terminal escapes.
type Styled struct {
	demangle syms.DemangleType
	skip     *color.Color
	address  *color.Color
	buckets  map[Bucket]*color.Color
}

var _ Formatter = (*Styled)(nil)

func color256(n int, attrs ...color.Attribute) *color.Color {
	c := color.New(38, 5, color.Attribute(n))
	c.Add(attrs...)
	c.EnableColor()
	return c
}

func NewStyled(demangle syms.DemangleType) *Styled {
	return &Styled{
		demangle: demangle,
		skip:     color256(248),
		address:  color256(15, color.Bold),
		buckets: map[Bucket]*color.Color{
			BucketHigh: color256(46),
			BucketGood: color256(154),
			BucketFair: color256(220),
			BucketLow:  color256(202),
		},
	}
}

func (s *Styled) Format(res guess.Result) (string, bool) {
	name := s.demangle.Demangle(res.Symbol.Name)
	switch res.Kind {
	case guess.KindPresent:
		return "", false
	case guess.KindGuess:
		c := s.buckets[BucketOf(res.Confidence)]
		return c.Sprint(name+" - ") +
			s.address.Sprintf("%#x", res.Address) +
			c.Sprintf(" (confidence %s)", percent(res.Confidence)), true
	}
	return s.skip.Sprint(skipMessage(res, name)), true
}
