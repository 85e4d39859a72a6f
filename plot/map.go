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
	"math"

	"sigs.k8s.io/chart-tools/layout"
)

// Map projects a domain value through a scale into a pixel coordinate
// inside r along the given dimension:
//
//	pixel = origin + span * Normalize(value)
//
// The fractional result is rounded half away from zero (math.Round),
// the same rule the rest of the layout uses, so rendered positions are
// deterministic.
func Map(v float64, s Scale, r layout.Rect, dim Dim) int {
	if dim == DimX {
		return r.X + int(math.Round(float64(r.Width)*s.Normalize(v)))
	}
	return r.Y + int(math.Round(float64(r.Height)*s.Normalize(v)))
}

// MapPoint projects both coordinates of a point into r.
func MapPoint(pt Point, xs, ys Scale, r layout.Rect) PixelPoint {
	return PixelPoint{
		X: Map(pt.X, xs, r, DimX),
		Y: Map(pt.Y, ys, r, DimY),
	}
}
