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

package chart

import (
	"sigs.k8s.io/chart-tools/layout"
)

// titleSpace is the band thickness a title consumes.
const titleSpace = 100

// Anchor positions text within its band.
type Anchor int

const (
	// AnchorMiddle centers the text
	AnchorMiddle Anchor = iota
	// AnchorStart aligns the text to the start of the band
	AnchorStart
	// AnchorEnd aligns the text to the end of the band
	AnchorEnd
)

func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	default:
		return "middle"
	}
}

// Title is a text band carved off one edge of the chart, top by
// default.
type Title struct {
	text   string
	anchor Anchor
	edge   layout.Edge
}

// NewTitle creates a centered title on the top edge.
func NewTitle(text string) Title {
	return Title{text: text, anchor: AnchorMiddle, edge: layout.Top}
}

// AtStart anchors the title text at the start of its band.
func (t Title) AtStart() Title {
	t.anchor = AnchorStart
	return t
}

// AtEnd anchors the title text at the end of its band.
func (t Title) AtEnd() Title {
	t.anchor = AnchorEnd
	return t
}

// OnBottom moves the title to the bottom edge.
func (t Title) OnBottom() Title {
	t.edge = layout.Bottom
	return t
}

// OnLeft moves the title to the left edge.
func (t Title) OnLeft() Title {
	t.edge = layout.Left
	return t
}

// OnRight moves the title to the right edge.
func (t Title) OnRight() Title {
	t.edge = layout.Right
	return t
}

// Text returns the title text.
func (t Title) Text() string { return t.text }

// Anchor returns the title's text anchor.
func (t Title) Anchor() Anchor { return t.anchor }

// Edge returns the edge the title is attached to.
func (t Title) Edge() layout.Edge { return t.edge }

// Allocate carves the title band off the working area.
func (t Title) Allocate(area layout.Rect) (titleRect, rest layout.Rect) {
	return layout.Split(area, t.edge, titleSpace)
}
