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
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyDomain is returned when a domain is requested for a point
	// sequence with no points in it.  We fail rather than fabricating
	// bounds, so that NaN never leaks into downstream geometry.
	ErrEmptyDomain = errors.New("empty domain: no points to bound")

	// ErrInvalidDomain is returned for bounds that are non-finite or
	// reversed (lo > hi).  Bounds are never silently swapped.
	ErrInvalidDomain = errors.New("invalid domain bounds")
)

// Dim selects a dimension of a point or domain.
type Dim int

const (
	// DimX is the horizontal dimension
	DimX Dim = iota
	// DimY is the vertical dimension
	DimY
)

// Point is a single data sample in domain units.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Coord returns the point's coordinate along dim.
func (p Point) Coord(dim Dim) float64 {
	if dim == DimX {
		return p.X
	}
	return p.Y
}

// Domain is the minimum bounding extent covering a set of points, per
// dimension.  It's an immutable value: Extend and Union return new
// domains and never shrink the box, so accumulation is associative and
// commutative -- the result doesn't depend on point arrival order.
type Domain struct {
	minX, maxX float64
	minY, maxY float64
}

// DomainFromPoints bounds the given points.  It returns ErrEmptyDomain
// for an empty sequence and ErrInvalidDomain if any coordinate is NaN
// or infinite.
func DomainFromPoints(pts []Point) (Domain, error) {
	if len(pts) == 0 {
		return Domain{}, ErrEmptyDomain
	}
	for _, pt := range pts {
		if !isFinite(pt.X) || !isFinite(pt.Y) {
			return Domain{}, fmt.Errorf("%w: point (%v, %v) is not finite", ErrInvalidDomain, pt.X, pt.Y)
		}
	}
	d := Domain{
		minX: pts[0].X, maxX: pts[0].X,
		minY: pts[0].Y, maxY: pts[0].Y,
	}
	return d.Extend(pts[1:]...), nil
}

// Extend returns a domain grown to cover the given points as well.
func (d Domain) Extend(pts ...Point) Domain {
	for _, pt := range pts {
		d.minX = math.Min(d.minX, pt.X)
		d.maxX = math.Max(d.maxX, pt.X)
		d.minY = math.Min(d.minY, pt.Y)
		d.maxY = math.Max(d.maxY, pt.Y)
	}
	return d
}

// Union returns a domain covering both d and other entirely.
func (d Domain) Union(other Domain) Domain {
	return Domain{
		minX: math.Min(d.minX, other.minX),
		maxX: math.Max(d.maxX, other.maxX),
		minY: math.Min(d.minY, other.minY),
		maxY: math.Max(d.maxY, other.maxY),
	}
}

// Min returns the lower bound along dim.
func (d Domain) Min(dim Dim) float64 {
	if dim == DimX {
		return d.minX
	}
	return d.minY
}

// Max returns the upper bound along dim.
func (d Domain) Max(dim Dim) float64 {
	if dim == DimX {
		return d.maxX
	}
	return d.maxY
}

// Span returns the extent along dim.  A zero span (all points sharing
// one coordinate) is valid, not an error.
func (d Domain) Span(dim Dim) float64 {
	return d.Max(dim) - d.Min(dim)
}

// MinX returns the lower x bound.
func (d Domain) MinX() float64 { return d.minX }

// MaxX returns the upper x bound.
func (d Domain) MaxX() float64 { return d.maxX }

// MinY returns the lower y bound.
func (d Domain) MinY() float64 { return d.minY }

// MaxY returns the upper y bound.
func (d Domain) MaxY() float64 { return d.maxY }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
