// Shared output helpers for easel CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/easel/pkg/shapes"
)

// shapeJSON is the JSON view of one shape.
type shapeJSON struct {
	ShapeID    int    `json:"shape_id"`
	Type       string `json:"type"`
	Dimensions string `json:"dimensions"`
}

// canvasJSON is the JSON view of a filled canvas.
type canvasJSON struct {
	CanvasID string      `json:"canvas_id"`
	Shapes   []shapeJSON `json:"shapes"`
}

// writeCanvasJSON writes the canvas as an indented JSON document.
func writeCanvasJSON(w io.Writer, c *shapes.Canvas) error {
	view := canvasJSON{
		CanvasID: c.CanvasID,
		Shapes:   make([]shapeJSON, 0, len(c.Shapes)),
	}
	for _, s := range c.Shapes {
		view.Shapes = append(view.Shapes, shapeJSON{
			ShapeID:    s.ShapeID,
			Type:       s.Kind,
			Dimensions: s.Dimensions(),
		})
	}

	out, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal canvas: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
