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

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"sigs.k8s.io/chart-tools/chart"
	"sigs.k8s.io/chart-tools/debug"
	"sigs.k8s.io/chart-tools/layout"
	"sigs.k8s.io/chart-tools/plot"
	"sigs.k8s.io/chart-tools/render"
)

var chartLog = debug.NewDebugLogger("chart.log")

// ChartOptions provides the information required to lay out and emit a
// chart.
type ChartOptions struct {
	Title      string
	Aspect     string
	Output     string
	TickTarget int
	SeriesFile string
	NoColor    bool

	Out    io.Writer
	ErrOut io.Writer
}

// NewChartOptions provides an instance of ChartOptions with defaults.
func NewChartOptions(out, errOut io.Writer) *ChartOptions {
	return &ChartOptions{
		Title:      "Line Plot",
		Aspect:     "landscape",
		Output:     "svg",
		TickTarget: plot.DefaultTickTarget,
		Out:        out,
		ErrOut:     errOut,
	}
}

func addFlags(cmd *cobra.Command, options *ChartOptions) {
	cmd.Flags().StringVarP(&options.Output, "output", "o", options.Output, "Output format for the laid-out chart: svg, json or yaml")
	cmd.Flags().StringVarP(&options.Title, "title", "t", options.Title, "Chart title")
	cmd.Flags().StringVarP(&options.Aspect, "aspect", "a", options.Aspect, "Page aspect ratio: landscape, square or portrait")
	cmd.Flags().IntVar(&options.TickTarget, "ticks", options.TickTarget, "Target tick count per axis")
	cmd.Flags().StringVarP(&options.SeriesFile, "series", "s", options.SeriesFile, "YAML file with data series; uses built-in sample data when unset")
	cmd.Flags().BoolVar(&options.NoColor, "no-color", options.NoColor, "Disable colorized json output")
}

// NewCmdChart provides a cobra command wrapping ChartOptions
func NewCmdChart(out, errOut io.Writer) *cobra.Command {
	o := NewChartOptions(out, errOut)
	cmd := &cobra.Command{
		Use: "chart [options]",
		Example: `
chart                                    # sample line chart as svg on stdout
chart -s series.yaml -o json             # lay out series from a file, dump geometry as json
chart -a square --ticks 8 -o yaml        # square page, denser ticks, yaml geometry
`,
		SilenceUsage: true,

		RunE: func(c *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	addFlags(cmd, o)

	return cmd
}

// Validate ensures that all required arguments and flag values are
// provided.
func (o *ChartOptions) Validate() error {
	switch o.Output {
	case "svg", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format (%s)", o.Output)
	}
	switch o.Aspect {
	case "landscape", "square", "portrait":
	default:
		return fmt.Errorf("unsupported aspect ratio (%s)", o.Aspect)
	}
	return nil
}

func (o *ChartOptions) aspectRatio() layout.AspectRatio {
	switch o.Aspect {
	case "square":
		return layout.Square
	case "portrait":
		return layout.Portrait
	default:
		return layout.Landscape
	}
}

// Run lays out the configured chart and writes it in the requested
// format.
func (o *ChartOptions) Run() error {
	series, err := o.loadSeries()
	if err != nil {
		return err
	}

	var allPoints []plot.Point
	for _, s := range series {
		allPoints = append(allPoints, s.Points...)
	}
	domain, err := plot.DomainFromPoints(allPoints)
	if err != nil {
		return fmt.Errorf("cannot bound series data: %w", err)
	}
	chartLog.Printf("domain x=[%v, %v] y=[%v, %v]",
		domain.Min(plot.DimX), domain.Max(plot.DimX),
		domain.Min(plot.DimY), domain.Max(plot.DimY))

	c := chart.New(domain).
		WithAspectRatio(o.aspectRatio()).
		WithTickTarget(o.TickTarget).
		WithTitle(chart.NewTitle(o.Title))
	c = c.WithAxis(c.XAxis().WithName("X")).
		WithAxis(c.YAxis().WithName("Y"))
	for _, s := range series {
		c = c.WithSeries(s)
	}
	geom := c.Layout()

	if o.Output == "svg" {
		render.WriteSVG(o.Out, geom)
		return nil
	}
	formatted, err := render.ToPrettyFormat(geom, o.Output, !o.NoColor)
	if err != nil {
		return err
	}
	fmt.Fprintln(o.Out, formatted)
	return nil
}

// seriesConfig is the on-disk shape of one series.
type seriesConfig struct {
	Name   string       `yaml:"name"`
	Kind   string       `yaml:"kind"`
	Points []plot.Point `yaml:"points"`
}

type chartConfig struct {
	Series []seriesConfig `yaml:"series"`
}

// sampleSeries mirrors the classic two-series line example.
func sampleSeries() []plot.Series {
	return []plot.Series{
		{
			Name: "Series A",
			Kind: plot.Line,
			Points: []plot.Point{
				{X: 13, Y: 74}, {X: 111, Y: 37}, {X: 125, Y: 52}, {X: 190, Y: 66},
			},
		},
		{
			Name: "Series B",
			Kind: plot.Line,
			Points: []plot.Point{
				{X: 22, Y: 50}, {X: 105, Y: 44}, {X: 120, Y: 67}, {X: 180, Y: 39}, {X: 210, Y: 43},
			},
		},
	}
}

func (o *ChartOptions) loadSeries() ([]plot.Series, error) {
	if o.SeriesFile == "" {
		return sampleSeries(), nil
	}
	raw, err := os.ReadFile(o.SeriesFile)
	if err != nil {
		return nil, fmt.Errorf("cannot read series file: %w", err)
	}
	var cfg chartConfig
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse series file: %w", err)
	}
	if len(cfg.Series) == 0 {
		return nil, fmt.Errorf("series file %s defines no series", o.SeriesFile)
	}
	series := make([]plot.Series, len(cfg.Series))
	for i, sc := range cfg.Series {
		series[i] = plot.Series{
			Name:   sc.Name,
			Kind:   plot.ParseKind(sc.Kind),
			Points: sc.Points,
		}
	}
	return series, nil
}
