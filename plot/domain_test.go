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

package plot_test

import (
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"sigs.k8s.io/chart-tools/plot"
)

var _ = Describe("Domain", func() {
	pts := []plot.Point{
		{X: 13, Y: 74}, {X: 111, Y: 37}, {X: 125, Y: 52}, {X: 190, Y: 66},
	}

	It("should bound a point sequence per dimension", func() {
		d, err := plot.DomainFromPoints(pts)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Min(plot.DimX)).To(Equal(13.0))
		Expect(d.Max(plot.DimX)).To(Equal(190.0))
		Expect(d.Min(plot.DimY)).To(Equal(37.0))
		Expect(d.Max(plot.DimY)).To(Equal(74.0))
		Expect(d.Span(plot.DimX)).To(Equal(177.0))

		Expect(d.MinX()).To(Equal(13.0))
		Expect(d.MaxX()).To(Equal(190.0))
		Expect(d.MinY()).To(Equal(37.0))
		Expect(d.MaxY()).To(Equal(74.0))
	})

	It("should fail on an empty sequence rather than fabricating bounds", func() {
		_, err := plot.DomainFromPoints(nil)
		Expect(err).To(MatchError(plot.ErrEmptyDomain))
	})

	It("should reject non-finite coordinates", func() {
		_, err := plot.DomainFromPoints([]plot.Point{{X: math.NaN(), Y: 1}})
		Expect(err).To(MatchError(plot.ErrInvalidDomain))

		_, err = plot.DomainFromPoints([]plot.Point{{X: 0, Y: math.Inf(1)}})
		Expect(err).To(MatchError(plot.ErrInvalidDomain))
	})

	It("should treat a single point as a valid degenerate domain", func() {
		d, err := plot.DomainFromPoints([]plot.Point{{X: 5, Y: 5}})
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Span(plot.DimX)).To(Equal(0.0))
		Expect(d.Span(plot.DimY)).To(Equal(0.0))
	})

	Describe("Extend", func() {
		It("should never shrink the box", func() {
			d, _ := plot.DomainFromPoints(pts)
			grown := d.Extend(plot.Point{X: 100, Y: 50})
			Expect(grown).To(Equal(d))

			grown = d.Extend(plot.Point{X: 0, Y: 200})
			Expect(grown.Min(plot.DimX)).To(Equal(0.0))
			Expect(grown.Max(plot.DimY)).To(Equal(200.0))
			Expect(grown.Max(plot.DimX)).To(Equal(190.0))
		})

		It("should be independent of point arrival order", func() {
			base, _ := plot.DomainFromPoints(pts[:1])
			forward := base.Extend(pts[1:]...)

			reversed := base
			for i := len(pts) - 1; i >= 1; i-- {
				reversed = reversed.Extend(pts[i])
			}
			Expect(forward).To(Equal(reversed))
		})
	})

	Describe("Union", func() {
		It("should cover both domains exactly", func() {
			a, _ := plot.DomainFromPoints([]plot.Point{{X: 0, Y: 10}, {X: 5, Y: 20}})
			b, _ := plot.DomainFromPoints([]plot.Point{{X: -3, Y: 15}, {X: 4, Y: 40}})

			u := a.Union(b)
			Expect(u.Min(plot.DimX)).To(Equal(-3.0))
			Expect(u.Max(plot.DimX)).To(Equal(5.0))
			Expect(u.Min(plot.DimY)).To(Equal(10.0))
			Expect(u.Max(plot.DimY)).To(Equal(40.0))
		})

		It("should be commutative", func() {
			a, _ := plot.DomainFromPoints([]plot.Point{{X: 0, Y: 10}, {X: 5, Y: 20}})
			b, _ := plot.DomainFromPoints([]plot.Point{{X: -3, Y: 15}, {X: 4, Y: 40}})
			Expect(a.Union(b)).To(Equal(b.Union(a)))
		})

		It("should be associative", func() {
			a, _ := plot.DomainFromPoints([]plot.Point{{X: 1, Y: 1}})
			b, _ := plot.DomainFromPoints([]plot.Point{{X: -8, Y: 3}})
			c, _ := plot.DomainFromPoints([]plot.Point{{X: 4, Y: -2}})
			Expect(a.Union(b).Union(c)).To(Equal(a.Union(b.Union(c))))
		})
	})
})
