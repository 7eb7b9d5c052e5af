// Package shapes defines the shape entity, the random shape generator, and
// the canvas container for the easel CLI.
package shapes

import "strconv"

// Shape kinds. The set is closed; the generator draws uniformly across it.
const (
	KindOval      = "OVAL"
	KindCircle    = "CIRCLE"
	KindRectangle = "RECTANGLE"
	KindSquare    = "SQUARE"
)

// Dimension bounds. Raw construction inputs are clamped into this range,
// never rejected.
const (
	DimMin = 1
	DimMax = 100
)

// Shape represents one geometric shape: a kind tag plus two stored
// dimensions. A circle keeps its radius in both slots, a square its side.
// Shapes are immutable after construction.
type Shape struct {
	// ShapeID is assigned from a Sequence at construction and never
	// changes. IDs of discarded shapes are not reused, so a printed
	// canvas may show gaps.
	ShapeID int

	// Kind is one of the Kind constants.
	Kind string

	// A is the first dimension: horizontal radius (oval), radius
	// (circle), length (rectangle), or side (square).
	A int

	// B is the second dimension: vertical radius or width. Equals A for
	// circles and squares.
	B int
}

// NewOval constructs an oval with the given horizontal and vertical radii,
// each clamped independently.
func NewOval(id, horizontal, vertical int) *Shape {
	return &Shape{ShapeID: id, Kind: KindOval, A: clamp(horizontal), B: clamp(vertical)}
}

// NewCircle constructs a circle; the clamped radius fills both dimension
// slots.
func NewCircle(id, radius int) *Shape {
	r := clamp(radius)
	return &Shape{ShapeID: id, Kind: KindCircle, A: r, B: r}
}

// NewRectangle constructs a rectangle with the given length and width, each
// clamped independently.
func NewRectangle(id, length, width int) *Shape {
	return &Shape{ShapeID: id, Kind: KindRectangle, A: clamp(length), B: clamp(width)}
}

// NewSquare constructs a square; the clamped side fills both dimension
// slots.
func NewSquare(id, side int) *Shape {
	s := clamp(side)
	return &Shape{ShapeID: id, Kind: KindSquare, A: s, B: s}
}

// Dimensions returns the display form of the shape's dimensions. Ovals,
// rectangles, and squares render as "AxB"; only the circle collapses to the
// single radius. The square keeps the two-part rectangle form even though
// both sides are equal; downstream consumers rely on that asymmetry.
func (s *Shape) Dimensions() string {
	if s.Kind == KindCircle {
		return strconv.Itoa(s.A)
	}
	return strconv.Itoa(s.A) + "x" + strconv.Itoa(s.B)
}

// Signature returns the de-duplication key for the shape: kind and
// dimensions joined by a single space.
func (s *Shape) Signature() string {
	return s.Kind + " " + s.Dimensions()
}

// clamp restricts a raw dimension to [DimMin, DimMax].
func clamp(v int) int {
	if v < DimMin {
		return DimMin
	}
	if v > DimMax {
		return DimMax
	}
	return v
}
