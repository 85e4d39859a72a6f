/*
Copyright 2021 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package chart

import (
	"sigs.k8s.io/chart-tools/layout"
	"sigs.k8s.io/chart-tools/plot"
)

const (
	// axisSpace is the band thickness an unnamed axis consumes.
	axisSpace = 80
	// namedAxisSpace is the band thickness an axis with a name
	// consumes; half of it goes to the name label.
	namedAxisSpace = 160
)

// Axis annotates one edge of the chart with the ticks of a scale.  It
// has no hidden state: recomputing marks or gridlines from the same
// inputs always yields the same result.
type Axis struct {
	edge  layout.Edge
	scale plot.Scale
	name  string
}

// HorizontalAxis creates an x axis, attached to the bottom by default.
func HorizontalAxis(scale plot.Scale) Axis {
	return Axis{edge: layout.Bottom, scale: scale}
}

// VerticalAxis creates a y axis, attached to the left by default.  The
// scale is inverted so that larger values sit higher on the page.
func VerticalAxis(scale plot.Scale) Axis {
	return Axis{edge: layout.Left, scale: scale.Inverted()}
}

// WithName sets the axis name, which widens the axis band to make room
// for the label.
func (a Axis) WithName(name string) Axis {
	a.name = name
	return a
}

// OnTop attaches a horizontal axis to the top of the chart.
func (a Axis) OnTop() Axis {
	if a.edge == layout.Bottom {
		a.edge = layout.Top
	}
	return a
}

// OnRight attaches a vertical axis to the right side of the chart.
func (a Axis) OnRight() Axis {
	if a.edge == layout.Left {
		a.edge = layout.Right
	}
	return a
}

// Edge returns the edge this axis is attached to.
func (a Axis) Edge() layout.Edge { return a.edge }

// Name returns the axis name, if any.
func (a Axis) Name() string { return a.name }

// Scale returns the scale the axis annotates.
func (a Axis) Scale() plot.Scale { return a.scale }

// RequiredSpace returns the band thickness the axis needs from the
// working area.  There are two fixed tiers: wider when a name is
// present.
func (a Axis) RequiredSpace() int {
	if a.name != "" {
		return namedAxisSpace
	}
	return axisSpace
}

// Allocate carves the axis band off the working area, returning the
// axis band and the shrunken remainder.
func (a Axis) Allocate(area layout.Rect) (axisRect, rest layout.Rect) {
	return layout.Split(area, a.edge, a.RequiredSpace())
}

// dim returns the dimension tick positions vary along.
func (a Axis) dim() plot.Dim {
	if a.edge == layout.Top || a.edge == layout.Bottom {
		return plot.DimX
	}
	return plot.DimY
}

// TickMark is a tick's position on the page, paired with its label.
type TickMark struct {
	// Pixel is the coordinate along the axis direction, inside the
	// plot body: an x coordinate for horizontal axes, a y coordinate
	// for vertical ones.
	Pixel int     `json:"pixel" yaml:"pixel"`
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label" yaml:"label"`
}

// TickMarks places the scale's ticks along the plot body.  Marks are
// ordered by pixel position.
func (a Axis) TickMarks(body layout.Rect) []TickMark {
	ticks := a.scale.Ticks()
	marks := make([]TickMark, 0, len(ticks))
	for _, tick := range ticks {
		marks = append(marks, TickMark{
			Pixel: plot.Map(tick.Value, a.scale, body, a.dim()),
			Value: tick.Value,
			Label: tick.Label,
		})
	}
	// an inverted scale hands out ticks in increasing value order but
	// decreasing pixel order
	if len(marks) > 1 && marks[0].Pixel > marks[len(marks)-1].Pixel {
		for i, j := 0, len(marks)-1; i < j; i, j = i+1, j-1 {
			marks[i], marks[j] = marks[j], marks[i]
		}
	}
	return marks
}

// Gridline is a line spanning the plot body at a tick position,
// perpendicular to the axis.
type Gridline struct {
	X1 int `json:"x1" yaml:"x1"`
	Y1 int `json:"y1" yaml:"y1"`
	X2 int `json:"x2" yaml:"x2"`
	Y2 int `json:"y2" yaml:"y2"`
}

// Gridlines returns one line per tick, spanning the plot body in the
// dimension perpendicular to the axis.
func (a Axis) Gridlines(body layout.Rect) []Gridline {
	marks := a.TickMarks(body)
	lines := make([]Gridline, 0, len(marks))
	for _, mark := range marks {
		if a.dim() == plot.DimX {
			lines = append(lines, Gridline{
				X1: mark.Pixel, Y1: body.Y,
				X2: mark.Pixel, Y2: body.Y + body.Height,
			})
		} else {
			lines = append(lines, Gridline{
				X1: body.X, Y1: mark.Pixel,
				X2: body.X + body.Width, Y2: mark.Pixel,
			})
		}
	}
	return lines
}
