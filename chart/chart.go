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

// Package chart composes titles, axes and data series into a fully
// laid-out chart geometry.  It decides where every visual element goes
// -- tick positions, band rectangles, the plot body, pixel paths --
// and leaves actually drawing the result to the render package.
package chart

import (
	"sigs.k8s.io/chart-tools/layout"
	"sigs.k8s.io/chart-tools/plot"
)

// pageInset is the margin kept clear on all four page edges before any
// band is allocated.
const pageInset = 40

// Chart accumulates configuration through With* calls and resolves it
// into an immutable Geometry via Layout.  All options are settled
// before any geometry is computed; Layout itself mutates nothing.
type Chart struct {
	aspect layout.AspectRatio
	domain plot.Domain
	target int
	titles []Title
	axes   []Axis
	series []plot.Series
}

// New creates a chart over the given domain with the default landscape
// aspect and tick target.
func New(domain plot.Domain) Chart {
	return Chart{domain: domain, target: plot.DefaultTickTarget}
}

// WithAspectRatio adjusts the page shape.
func (c Chart) WithAspectRatio(aspect layout.AspectRatio) Chart {
	c.aspect = aspect
	return c
}

// WithTickTarget adjusts the tick count the chart's own scales aim
// for.  Axes built by the caller keep their own targets.
func (c Chart) WithTickTarget(target int) Chart {
	c.target = target
	return c
}

// WithTitle adds a title band.  Titles are allocated before axes, in
// the order added; the order is part of the layout contract.
func (c Chart) WithTitle(title Title) Chart {
	c.titles = append(c.titles, title)
	return c
}

// WithAxis adds an axis.  Axes are allocated after titles, in the
// order added.
func (c Chart) WithAxis(axis Axis) Chart {
	c.axes = append(c.axes, axis)
	return c
}

// WithSeries adds a data series, drawn inside the plot body left over
// after all titles and axes are placed.
func (c Chart) WithSeries(series plot.Series) Chart {
	c.series = append(c.series, series)
	return c
}

// XAxis builds a horizontal axis over the chart's own domain.
func (c Chart) XAxis() Axis {
	return HorizontalAxis(plot.ScaleForDomain(c.domain, plot.DimX, c.target))
}

// YAxis builds a vertical axis over the chart's own domain.
func (c Chart) YAxis() Axis {
	return VerticalAxis(plot.ScaleForDomain(c.domain, plot.DimY, c.target))
}

// TitleGeometry is a laid-out title band.
type TitleGeometry struct {
	Text   string      `json:"text" yaml:"text"`
	Anchor string      `json:"anchor" yaml:"anchor"`
	Edge   string      `json:"edge" yaml:"edge"`
	Rect   layout.Rect `json:"rect" yaml:"rect"`
}

// AxisGeometry is a laid-out axis: its band, its tick marks placed
// along the plot body, and its gridlines spanning the body.
type AxisGeometry struct {
	Edge      string      `json:"edge" yaml:"edge"`
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	Rect      layout.Rect `json:"rect" yaml:"rect"`
	Ticks     []TickMark  `json:"ticks" yaml:"ticks"`
	Gridlines []Gridline  `json:"gridlines" yaml:"gridlines"`
}

// SeriesGeometry is a series mapped into plot-body pixels.
type SeriesGeometry struct {
	Name   string            `json:"name" yaml:"name"`
	Kind   string            `json:"kind" yaml:"kind"`
	Points []plot.PixelPoint `json:"points" yaml:"points"`
}

// Geometry is the fully laid-out chart: every rectangle, tick and
// pixel path a renderer needs.  It's a plain value with no behavior;
// recomputing it from the same chart always yields the same result.
type Geometry struct {
	Page   layout.Rect      `json:"page" yaml:"page"`
	Titles []TitleGeometry  `json:"titles,omitempty" yaml:"titles,omitempty"`
	Axes   []AxisGeometry   `json:"axes,omitempty" yaml:"axes,omitempty"`
	Body   layout.Rect      `json:"body" yaml:"body"`
	Series []SeriesGeometry `json:"series,omitempty" yaml:"series,omitempty"`
}

// Layout resolves the chart into its geometry.  Space is allocated
// from the inset page sequentially -- titles first, then axes, in the
// order they were added -- and whatever remains is the plot body.
// Tick marks and series paths are then placed relative to that body.
func (c Chart) Layout() Geometry {
	page := c.aspect.Rect()
	area := layout.Inset(page, pageInset)

	geom := Geometry{Page: page}

	for _, title := range c.titles {
		rect, rest := title.Allocate(area)
		area = rest
		geom.Titles = append(geom.Titles, TitleGeometry{
			Text:   title.Text(),
			Anchor: title.Anchor().String(),
			Edge:   title.Edge().String(),
			Rect:   rect,
		})
	}

	axisRects := make([]layout.Rect, len(c.axes))
	for i, axis := range c.axes {
		axisRects[i], area = axis.Allocate(area)
	}
	geom.Body = area

	for i, axis := range c.axes {
		geom.Axes = append(geom.Axes, AxisGeometry{
			Edge:      axis.Edge().String(),
			Name:      axis.Name(),
			Rect:      axisRects[i],
			Ticks:     axis.TickMarks(area),
			Gridlines: axis.Gridlines(area),
		})
	}

	xs := plot.ScaleForDomain(c.domain, plot.DimX, c.target)
	ys := plot.ScaleForDomain(c.domain, plot.DimY, c.target).Inverted()
	for _, series := range c.series {
		geom.Series = append(geom.Series, SeriesGeometry{
			Name:   series.Name,
			Kind:   series.Kind.String(),
			Points: series.Path(xs, ys, area),
		})
	}

	return geom
}
