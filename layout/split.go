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

package layout

// Edge indicates which side of a Rect a band of space is carved from
// when allocating room for titles and axes.
type Edge int

const (
	// Top anchors to the top
	Top Edge = iota
	// Left anchors to the left
	Left
	// Bottom anchors to the bottom
	Bottom
	// Right anchors to the right
	Right
)

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Rect describes a region of the page.
type Rect struct {
	// X and Y indicate the top-left corner of this region.
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	// Width and Height indicate the extent of this region, and are
	// never negative.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Area returns the number of page units covered by r.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty reports whether r covers no page units.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// clampThickness caps a requested band thickness so that it's
// non-negative and never consumes more than the available span.
func clampThickness(thickness, span int) int {
	if thickness < 0 {
		return 0
	}
	if thickness > span {
		return span
	}
	return thickness
}

// Split carves a band of the given thickness off one edge of r,
// returning the carved band and the shrunken remainder.  The two
// results partition r exactly: they don't overlap, and together they
// cover every unit of r.  Thickness saturates to the available span,
// so the remainder may end up zero-sized but never negative.
//
// Split is pure -- callers thread the remainder into the next call
// explicitly, which is how sequential allocation (title, then axes,
// then plot body) is expressed.
func Split(r Rect, edge Edge, thickness int) (carved, rest Rect) {
	switch edge {
	case Top:
		t := clampThickness(thickness, r.Height)
		carved = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: t}
		rest = Rect{X: r.X, Y: r.Y + t, Width: r.Width, Height: r.Height - t}
	case Bottom:
		t := clampThickness(thickness, r.Height)
		carved = Rect{X: r.X, Y: r.Y + r.Height - t, Width: r.Width, Height: t}
		rest = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height - t}
	case Left:
		t := clampThickness(thickness, r.Width)
		carved = Rect{X: r.X, Y: r.Y, Width: t, Height: r.Height}
		rest = Rect{X: r.X + t, Y: r.Y, Width: r.Width - t, Height: r.Height}
	case Right:
		t := clampThickness(thickness, r.Width)
		carved = Rect{X: r.X + r.Width - t, Y: r.Y, Width: t, Height: r.Height}
		rest = Rect{X: r.X, Y: r.Y, Width: r.Width - t, Height: r.Height}
	default:
		panic("invalid edge")
	}
	return carved, rest
}

// Inset shrinks r by the given amount on all four sides, saturating to
// a zero-sized Rect centered in r when the inset would go negative.
func Inset(r Rect, by int) Rect {
	if by < 0 {
		by = 0
	}
	dx, dy := by, by
	if 2*dx > r.Width {
		dx = r.Width / 2
	}
	if 2*dy > r.Height {
		dy = r.Height / 2
	}
	return Rect{
		X: r.X + dx, Y: r.Y + dy,
		Width: r.Width - 2*dx, Height: r.Height - 2*dy,
	}
}
