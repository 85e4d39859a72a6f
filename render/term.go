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

package render

import (
	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"

	"sigs.k8s.io/chart-tools/chart"
	"sigs.k8s.io/chart-tools/layout"
)

// Flushable contains content that can be flushed to a screen.
type Flushable interface {
	// FlushTo flushes content to the screen.  It should only write to
	// the region of the screen it has been assigned via Resizable.
	FlushTo(screen tcell.Screen)
}

// Resizable widgets receive the region of the screen they're supposed
// to write to.
type Resizable interface {
	// SetBox sets the region this widget should fill.  This is *not*
	// an indication that content should be drawn (that's what
	// Flushable is for).
	SetBox(layout.Rect)
}

// ChartView draws a laid-out chart geometry onto a terminal screen,
// scaling the page coordinates down to its assigned cell region.
type ChartView struct {
	pos layout.Rect

	Geometry *chart.Geometry
}

func (v *ChartView) SetBox(box layout.Rect) {
	v.pos = box
}

// cellOf scales a page coordinate pair into screen cells inside the
// assigned region.
func (v *ChartView) cellOf(x, y int) (int, int) {
	page := v.Geometry.Page
	col := v.pos.X + x*(v.pos.Width-1)/page.Width
	row := v.pos.Y + y*(v.pos.Height-1)/page.Height
	return col, row
}

func (v *ChartView) FlushTo(screen tcell.Screen) {
	if v.Geometry == nil {
		return
	}
	if v.pos.Width < 8 || v.pos.Height < 4 {
		// too small to render, just bail
		return
	}

	body := v.Geometry.Body
	left, top := v.cellOf(body.X, body.Y)
	right, bottom := v.cellOf(body.X+body.Width, body.Y+body.Height)

	var sty tcell.Style
	for col := left; col <= right; col++ {
		screen.SetContent(col, bottom, '━', nil, sty)
	}
	for row := top; row <= bottom; row++ {
		screen.SetContent(left, row, '┃', nil, sty)
	}
	screen.SetContent(left, bottom, '┗', nil, sty)

	for _, axis := range v.Geometry.Axes {
		v.flushAxis(screen, axis, left, bottom)
	}

	for i, series := range v.Geometry.Series {
		sty := tcell.StyleDefault.Foreground(tcell.Color(i%6) + tcell.ColorRed)
		for _, pt := range series.Points {
			col, row := v.cellOf(pt.X, pt.Y)
			screen.SetContent(col, row, '•', nil, sty)
		}
	}

	for _, title := range v.Geometry.Titles {
		v.flushLabel(screen, title.Rect, title.Text)
	}
}

// flushAxis draws tick marks and labels for one axis along the body
// border.
func (v *ChartView) flushAxis(screen tcell.Screen, axis chart.AxisGeometry, left, bottom int) {
	var sty tcell.Style
	switch axis.Edge {
	case "bottom", "top":
		for _, mark := range axis.Ticks {
			col, _ := v.cellOf(mark.Pixel, 0)
			screen.SetContent(col, bottom, '┯', nil, sty)
			v.flushText(screen, col-runewidth.StringWidth(mark.Label)/2, bottom+1, mark.Label)
		}
	case "left", "right":
		for _, mark := range axis.Ticks {
			_, row := v.cellOf(0, mark.Pixel)
			screen.SetContent(left, row, '┨', nil, sty)
			v.flushText(screen, left-runewidth.StringWidth(mark.Label), row, mark.Label)
		}
	}
}

// flushLabel centers text within a scaled page rectangle.
func (v *ChartView) flushLabel(screen tcell.Screen, r layout.Rect, text string) {
	colMin, row := v.cellOf(r.X, r.Y+r.Height/2)
	colMax, _ := v.cellOf(r.X+r.Width, r.Y)
	mid := colMin + (colMax-colMin)/2
	v.flushText(screen, mid-runewidth.StringWidth(text)/2, row, text)
}

// flushText writes a string cell by cell, clipped to the assigned
// region.
func (v *ChartView) flushText(screen tcell.Screen, col, row int, text string) {
	if row < v.pos.Y || row >= v.pos.Y+v.pos.Height {
		return
	}
	var sty tcell.Style
	for _, rn := range text {
		if col >= v.pos.X && col < v.pos.X+v.pos.Width {
			screen.SetContent(col, row, rn, nil, sty)
		}
		col += runewidth.RuneWidth(rn)
	}
}
