/*
Copyright 2021 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package render

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"gopkg.in/yaml.v2"

	"sigs.k8s.io/chart-tools/chart"
)

// ToJson marshals a chart geometry as indented JSON.
func ToJson(geom chart.Geometry) (string, error) {
	s, err := json.MarshalIndent(geom, "", "  ")
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// ToColoredJson marshals a chart geometry as colorized JSON for
// terminal inspection.
func ToColoredJson(geom chart.Geometry) (string, error) {
	f := prettyjson.NewFormatter()
	f.Indent = 4
	f.KeyColor = color.New(color.FgGreen)
	f.NullColor = color.New(color.Underline)
	f.NumberColor = color.New(color.FgYellow)
	f.StringColor = color.New(color.FgHiCyan)
	f.BoolColor = nil

	s, err := f.Marshal(geom)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// ToYaml marshals a chart geometry as YAML.
func ToYaml(geom chart.Geometry) (string, error) {
	o, err := yaml.Marshal(geom)
	if err != nil {
		return "", err
	}
	return string(o), nil
}

// ToPrettyFormat marshals a chart geometry in the requested output
// format ("json" or "yaml").
func ToPrettyFormat(geom chart.Geometry, outputType string, colorized bool) (string, error) {
	switch outputType {
	case "json":
		if colorized {
			return ToColoredJson(geom)
		}
		return ToJson(geom)

	case "yaml":
		return ToYaml(geom)
	}
	return "", fmt.Errorf("unsupported formatting option (%s)", outputType)
}
