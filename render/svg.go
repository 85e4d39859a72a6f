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
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"sigs.k8s.io/chart-tools/chart"
)

// tickLen is the length of a tick stroke, perpendicular to its axis.
const tickLen = 20

// seriesColors cycles per series, in order of addition.
var seriesColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
	"#9467bd", "#8c564b", "#e377c2", "#7f7f7f",
}

// WriteSVG renders a laid-out chart geometry as an SVG document.  The
// geometry already fixed every coordinate, so this only translates
// rectangles, marks and paths into SVG elements.
func WriteSVG(w io.Writer, geom chart.Geometry) {
	canvas := svg.New(w)
	canvas.Start(geom.Page.Width, geom.Page.Height)
	canvas.Rect(geom.Page.X, geom.Page.Y, geom.Page.Width, geom.Page.Height, "fill:white")

	for _, title := range geom.Titles {
		x, anchor := anchoredX(title.Rect.X, title.Rect.Width, title.Anchor)
		canvas.Text(x, title.Rect.Y+title.Rect.Height/2, title.Text,
			fmt.Sprintf("font-size:48px;text-anchor:%s;dominant-baseline:middle", anchor))
	}

	for _, axis := range geom.Axes {
		writeAxis(canvas, geom, axis)
	}

	for i, series := range geom.Series {
		writeSeries(canvas, series, seriesColors[i%len(seriesColors)])
	}

	canvas.End()
}

func anchoredX(x, width int, anchor string) (int, string) {
	switch anchor {
	case "start":
		return x, "start"
	case "end":
		return x + width, "end"
	default:
		return x + width/2, "middle"
	}
}

func writeAxis(canvas *svg.SVG, geom chart.Geometry, axis chart.AxisGeometry) {
	const lineStyle = "stroke:#444;stroke-width:2"
	const gridStyle = "stroke:#ddd;stroke-width:1"
	body := geom.Body

	for _, line := range axis.Gridlines {
		canvas.Line(line.X1, line.Y1, line.X2, line.Y2, gridStyle)
	}

	switch axis.Edge {
	case "top":
		y := body.Y
		canvas.Line(body.X, y, body.X+body.Width, y, lineStyle)
		for _, mark := range axis.Ticks {
			canvas.Line(mark.Pixel, y, mark.Pixel, y-tickLen, lineStyle)
			canvas.Text(mark.Pixel, y-2*tickLen, mark.Label, "font-size:32px;text-anchor:middle")
		}
	case "bottom":
		y := body.Y + body.Height
		canvas.Line(body.X, y, body.X+body.Width, y, lineStyle)
		for _, mark := range axis.Ticks {
			canvas.Line(mark.Pixel, y, mark.Pixel, y+tickLen, lineStyle)
			canvas.Text(mark.Pixel, y+2*tickLen+16, mark.Label, "font-size:32px;text-anchor:middle")
		}
	case "left":
		x := body.X
		canvas.Line(x, body.Y, x, body.Y+body.Height, lineStyle)
		for _, mark := range axis.Ticks {
			canvas.Line(x, mark.Pixel, x-tickLen, mark.Pixel, lineStyle)
			canvas.Text(x-tickLen-8, mark.Pixel, mark.Label, "font-size:32px;text-anchor:end;dominant-baseline:middle")
		}
	case "right":
		x := body.X + body.Width
		canvas.Line(x, body.Y, x, body.Y+body.Height, lineStyle)
		for _, mark := range axis.Ticks {
			canvas.Line(x, mark.Pixel, x+tickLen, mark.Pixel, lineStyle)
			canvas.Text(x+tickLen+8, mark.Pixel, mark.Label, "font-size:32px;text-anchor:start;dominant-baseline:middle")
		}
	}

	if axis.Name != "" {
		writeAxisName(canvas, axis)
	}
}

func writeAxisName(canvas *svg.SVG, axis chart.AxisGeometry) {
	r := axis.Rect
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	const nameStyle = "font-size:40px;text-anchor:middle"
	switch axis.Edge {
	case "left":
		canvas.TranslateRotate(r.X+r.Width/4, cy, -90)
		canvas.Text(0, 0, axis.Name, nameStyle)
		canvas.Gend()
	case "right":
		canvas.TranslateRotate(r.X+3*r.Width/4, cy, 90)
		canvas.Text(0, 0, axis.Name, nameStyle)
		canvas.Gend()
	case "top":
		canvas.Text(cx, r.Y+r.Height/4, axis.Name, nameStyle)
	default:
		canvas.Text(cx, r.Y+3*r.Height/4, axis.Name, nameStyle)
	}
}

func writeSeries(canvas *svg.SVG, series chart.SeriesGeometry, color string) {
	if len(series.Points) == 0 {
		return
	}
	xs := make([]int, len(series.Points))
	ys := make([]int, len(series.Points))
	for i, pt := range series.Points {
		xs[i], ys[i] = pt.X, pt.Y
	}

	switch series.Kind {
	case "scatter":
		for i := range xs {
			canvas.Circle(xs[i], ys[i], 8, "fill:"+color)
		}
	case "area":
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;fill-opacity:0.4;stroke:%s;stroke-width:3", color, color))
	default:
		canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:3", color))
	}
}
