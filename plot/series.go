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

package plot

import (
	"sigs.k8s.io/chart-tools/layout"
)

// Kind selects how a series is drawn.  The set is closed: renderers
// switch over it rather than dispatching through an interface.
type Kind int

const (
	// Line connects consecutive points
	Line Kind = iota
	// Area fills between the line and the zero row
	Area
	// Scatter draws each point on its own
	Scatter
)

func (k Kind) String() string {
	switch k {
	case Area:
		return "area"
	case Scatter:
		return "scatter"
	default:
		return "line"
	}
}

// ParseKind maps a kind name (as found in series config) back to its
// Kind, defaulting to Line for anything unrecognized.
func ParseKind(name string) Kind {
	switch name {
	case "area":
		return Area
	case "scatter":
		return Scatter
	default:
		return Line
	}
}

// PixelPoint is a point mapped into page units.
type PixelPoint struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Series is one named run of points drawn over the chart's domain.
type Series struct {
	Name   string  `json:"name" yaml:"name"`
	Kind   Kind    `json:"-" yaml:"-"`
	Points []Point `json:"points" yaml:"points"`
}

// Path maps the series into pixel coordinates inside the plot body.
// Line and scatter series map each point directly.  Area series
// additionally close the path down to the y=0 row: the first and last
// points are bracketed by points at their own x but at value zero, so
// the fill reaches the baseline.
func (s Series) Path(xs, ys Scale, body layout.Rect) []PixelPoint {
	if len(s.Points) == 0 {
		return nil
	}
	pts := make([]PixelPoint, 0, len(s.Points)+2)
	if s.Kind == Area {
		first := s.Points[0]
		pts = append(pts, MapPoint(Point{X: first.X, Y: 0}, xs, ys, body))
	}
	for _, pt := range s.Points {
		pts = append(pts, MapPoint(pt, xs, ys, body))
	}
	if s.Kind == Area {
		last := s.Points[len(s.Points)-1]
		pts = append(pts, MapPoint(Point{X: last.X, Y: 0}, xs, ys, body))
	}
	return pts
}
