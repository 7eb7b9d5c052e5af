package shapes

import (
	"errors"
	"fmt"
)

// ErrUnexpectedChoice reports a kind draw outside [0, kindCount). It cannot
// occur with a conforming rand source; callers treat it as fatal.
var ErrUnexpectedChoice = errors.New("unexpected shape choice")

// kindCount is the number of shape kinds the generator draws across.
const kindCount = 4

// Rand is the subset of *rand.Rand the generator draws from.
type Rand interface {
	Intn(n int) int
}

// Sequence issues strictly increasing shape identifiers starting at 1. The
// zero value is ready to use. An identifier is issued once per construction
// and never reused.
type Sequence struct {
	last int
}

// Next returns the next identifier.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}

// Generator produces random shapes from an injected rand source. It owns
// the identifier sequence, so every shape it constructs gets a fresh ID
// whether or not the caller keeps the shape.
type Generator struct {
	rng Rand
	seq *Sequence
}

// NewGenerator returns a Generator drawing from rng with a fresh sequence.
func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng, seq: &Sequence{}}
}

// Random produces one shape of a uniformly chosen kind with each dimension
// drawn uniformly from [DimMin, DimMax]. On the unreachable out-of-range
// draw it returns ErrUnexpectedChoice wrapped with the offending value; no
// identifier is consumed in that case.
func (g *Generator) Random() (*Shape, error) {
	choice := g.rng.Intn(kindCount)
	switch choice {
	case 0:
		return NewOval(g.seq.Next(), g.dim(), g.dim()), nil
	case 1:
		return NewCircle(g.seq.Next(), g.dim()), nil
	case 2:
		return NewRectangle(g.seq.Next(), g.dim(), g.dim()), nil
	case 3:
		return NewSquare(g.seq.Next(), g.dim()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedChoice, choice)
	}
}

// dim draws one dimension uniformly from [DimMin, DimMax].
func (g *Generator) dim() int {
	return g.rng.Intn(DimMax) + 1
}
