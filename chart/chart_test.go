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

package chart_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"sigs.k8s.io/chart-tools/chart"
	"sigs.k8s.io/chart-tools/layout"
	"sigs.k8s.io/chart-tools/plot"
)

func sampleDomain() plot.Domain {
	d, err := plot.DomainFromPoints([]plot.Point{
		{X: 13, Y: 74}, {X: 111, Y: 37}, {X: 125, Y: 52}, {X: 190, Y: 66},
	})
	Expect(err).NotTo(HaveOccurred())
	return d
}

var _ = Describe("Chart layout", func() {
	It("should start from the inset page", func() {
		geom := chart.New(sampleDomain()).Layout()
		Expect(geom.Page).To(Equal(layout.Rect{Width: 2000, Height: 1500}))
		Expect(geom.Body).To(Equal(layout.Rect{X: 40, Y: 40, Width: 1920, Height: 1420}))
	})

	It("should allocate titles before axes, in order", func() {
		c := chart.New(sampleDomain()).
			WithTitle(chart.NewTitle("Line Plot"))
		c = c.WithAxis(c.XAxis()).WithAxis(c.YAxis())
		geom := c.Layout()

		Expect(geom.Titles).To(HaveLen(1))
		Expect(geom.Titles[0].Rect).To(Equal(layout.Rect{X: 40, Y: 40, Width: 1920, Height: 100}))

		Expect(geom.Axes).To(HaveLen(2))
		// the x axis went first and spans the full remaining width
		Expect(geom.Axes[0].Rect).To(Equal(layout.Rect{X: 40, Y: 1380, Width: 1920, Height: 80}))
		// the y axis was carved after, so it stops above the x axis band
		Expect(geom.Axes[1].Rect).To(Equal(layout.Rect{X: 40, Y: 140, Width: 80, Height: 1240}))

		Expect(geom.Body).To(Equal(layout.Rect{X: 120, Y: 140, Width: 1840, Height: 1240}))
	})

	It("should partition the inset page exactly among bands and body", func() {
		c := chart.New(sampleDomain()).
			WithTitle(chart.NewTitle("t"))
		c = c.WithAxis(c.XAxis().WithName("x")).WithAxis(c.YAxis())
		geom := c.Layout()

		inset := layout.Inset(geom.Page, 40)
		total := geom.Body.Area()
		for _, t := range geom.Titles {
			total += t.Rect.Area()
		}
		for _, a := range geom.Axes {
			total += a.Rect.Area()
		}
		// bands overlap nothing, so areas must sum to the inset page
		Expect(total).To(Equal(inset.Area()))
	})

	It("should change the layout when allocation order changes", func() {
		base := chart.New(sampleDomain())
		xFirst := base.WithAxis(base.XAxis()).WithAxis(base.YAxis()).Layout()
		yFirst := base.WithAxis(base.YAxis()).WithAxis(base.XAxis()).Layout()

		// the first-allocated band always spans the full edge, so the
		// two orders disagree about both the bands and the body
		Expect(xFirst.Axes[0].Rect.Width).To(Equal(1920))
		Expect(yFirst.Axes[1].Rect.Width).To(Equal(1880))
		Expect(xFirst.Body).NotTo(Equal(yFirst.Body))
	})

	It("should map series into the plot body", func() {
		c := chart.New(sampleDomain())
		c = c.WithAxis(c.XAxis()).WithAxis(c.YAxis()).
			WithSeries(plot.Series{
				Name: "Series A",
				Kind: plot.Line,
				Points: []plot.Point{
					{X: 13, Y: 74}, {X: 111, Y: 37}, {X: 125, Y: 52}, {X: 190, Y: 66},
				},
			})
		geom := c.Layout()

		Expect(geom.Series).To(HaveLen(1))
		pts := geom.Series[0].Points
		Expect(pts).To(HaveLen(4))

		body := geom.Body
		for _, pt := range pts {
			Expect(pt.X).To(BeNumerically(">=", body.X))
			Expect(pt.X).To(BeNumerically("<=", body.X+body.Width))
			Expect(pt.Y).To(BeNumerically(">=", body.Y))
			Expect(pt.Y).To(BeNumerically("<=", body.Y+body.Height))
		}

		// x = 13 is the domain min, y = 74 the domain max: with the
		// vertical scale inverted that's the body's top-left corner
		Expect(pts[0]).To(Equal(plot.PixelPoint{X: body.X, Y: body.Y}))
	})

	It("should respect the configured aspect ratio", func() {
		geom := chart.New(sampleDomain()).WithAspectRatio(layout.Portrait).Layout()
		Expect(geom.Page).To(Equal(layout.Rect{Width: 1500, Height: 2000}))
	})

	It("should be reproducible from the same configuration", func() {
		c := chart.New(sampleDomain()).WithTitle(chart.NewTitle("t"))
		c = c.WithAxis(c.XAxis()).WithAxis(c.YAxis().WithName("y"))
		Expect(c.Layout()).To(Equal(c.Layout()))
	})

	It("should not let earlier Layout calls leak into reused builders", func() {
		base := chart.New(sampleDomain())
		withTitle := base.WithTitle(chart.NewTitle("t"))
		plain := base.Layout()
		Expect(plain.Titles).To(BeEmpty())
		Expect(withTitle.Layout().Titles).To(HaveLen(1))
	})
})

var _ = Describe("Title placement", func() {
	It("should default to a centered top band", func() {
		t := chart.NewTitle("hello")
		Expect(t.Edge()).To(Equal(layout.Top))
		Expect(t.Anchor()).To(Equal(chart.AnchorMiddle))
	})

	It("should support the other edges and anchors", func() {
		t := chart.NewTitle("hello").OnBottom().AtEnd()
		Expect(t.Edge()).To(Equal(layout.Bottom))
		Expect(t.Anchor()).To(Equal(chart.AnchorEnd))

		rect, rest := t.Allocate(layout.Rect{Width: 1000, Height: 1000})
		Expect(rect).To(Equal(layout.Rect{X: 0, Y: 900, Width: 1000, Height: 100}))
		Expect(rest.Height).To(Equal(900))
	})
})
