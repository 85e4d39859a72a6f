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

package layout

// AspectRatio selects the overall page shape for a chart.
type AspectRatio int

const (
	// Landscape is a wide rectangular page
	Landscape AspectRatio = iota
	// Square is a square page
	Square
	// Portrait is a tall rectangular page
	Portrait
)

// Rect returns the full page region for this aspect ratio, in page
// units, with the origin at the top-left corner.
func (a AspectRatio) Rect() Rect {
	switch a {
	case Square:
		return Rect{Width: 2000, Height: 2000}
	case Portrait:
		return Rect{Width: 1500, Height: 2000}
	default:
		return Rect{Width: 2000, Height: 1500}
	}
}

func (a AspectRatio) String() string {
	switch a {
	case Square:
		return "square"
	case Portrait:
		return "portrait"
	default:
		return "landscape"
	}
}
