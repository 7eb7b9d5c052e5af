package shapes

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Canvas holds an ordered, append-only collection of shapes.
type Canvas struct {
	// CanvasID is a UUID v7, generated on creation.
	CanvasID string

	// Shapes is the accepted shapes in insertion order. Callers read it
	// directly; it is not a defensive copy.
	Shapes []*Shape
}

// NewCanvas returns an empty canvas with a fresh identifier.
func NewCanvas() *Canvas {
	return &Canvas{CanvasID: newCanvasID()}
}

// newCanvasID generates a UUID v7, falling back to v4 if the time-ordered
// generator fails.
func newCanvasID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// AddShape appends a shape to the canvas. The canvas imposes no size limit.
func (c *Canvas) AddShape(s *Shape) {
	c.Shapes = append(c.Shapes, s)
}

// Size returns the number of shapes on the canvas.
func (c *Canvas) Size() int {
	return len(c.Shapes)
}

// Fill generates random shapes until the canvas holds n with pairwise
// distinct signatures. Duplicate draws are discarded; their identifiers
// stay consumed, so kept shapes may carry non-contiguous IDs. There is no
// attempt cap: termination relies on the signature space being far larger
// than n.
func Fill(c *Canvas, g *Generator, n int) error {
	seen := make(map[string]bool, n)
	for c.Size() < n {
		shape, err := g.Random()
		if err != nil {
			return err
		}
		sig := shape.Signature()
		if seen[sig] {
			continue
		}
		seen[sig] = true
		c.AddShape(shape)
	}
	return nil
}

// WriteReport writes the canvas report to w: a header line, a blank line,
// then "Shape <id>: <kind> <dimensions>" per shape in insertion order.
func WriteReport(w io.Writer, c *Canvas) error {
	if _, err := fmt.Fprintf(w, "Canvas has the following random shapes:\n\n"); err != nil {
		return err
	}
	for _, s := range c.Shapes {
		if _, err := fmt.Fprintf(w, "Shape %d: %s %s\n", s.ShapeID, s.Kind, s.Dimensions()); err != nil {
			return err
		}
	}
	return nil
}
