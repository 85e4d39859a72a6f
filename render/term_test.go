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

package render_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/gdamore/tcell"

	"sigs.k8s.io/chart-tools/layout"
	"sigs.k8s.io/chart-tools/render"
)

// flushedRunes renders a view onto a fake screen and collects every
// non-blank rune.
func flushedRunes(view render.Flushable, cols, rows int) map[rune]int {
	screen := tcell.NewSimulationScreen("")
	screen.Init()
	screen.SetSize(cols, rows)
	view.FlushTo(screen)
	screen.Show()

	runes := map[rune]int{}
	cells, _, _ := screen.GetContents()
	for _, cell := range cells {
		for _, rn := range cell.Runes {
			if rn != ' ' {
				runes[rn]++
			}
		}
	}
	return runes
}

var _ = Describe("The chart view", func() {
	It("should draw the body border, ticks and series points", func() {
		geom := sampleGeometry()
		view := &render.ChartView{Geometry: &geom}
		view.SetBox(layout.Rect{Width: 80, Height: 24})

		runes := flushedRunes(view, 80, 24)
		Expect(runes['┗']).To(BeNumerically(">", 0), "corner piece should be drawn")
		Expect(runes['━']).To(BeNumerically(">", 0), "x axis line should be drawn")
		Expect(runes['┃']).To(BeNumerically(">", 0), "y axis line should be drawn")
		Expect(runes['┯']).To(BeNumerically(">", 0), "x ticks should be drawn")
		Expect(runes['┨']).To(BeNumerically(">", 0), "y ticks should be drawn")
		Expect(runes['•']).To(BeNumerically(">", 0), "series points should be drawn")
	})

	It("should skip rendering when the box is too small", func() {
		geom := sampleGeometry()
		view := &render.ChartView{Geometry: &geom}
		view.SetBox(layout.Rect{Width: 4, Height: 2})

		Expect(flushedRunes(view, 10, 10)).To(BeEmpty())
	})

	It("should skip drawing without any geometry", func() {
		view := &render.ChartView{}
		view.SetBox(layout.Rect{Width: 80, Height: 24})

		Expect(flushedRunes(view, 80, 24)).To(BeEmpty())
	})
})
