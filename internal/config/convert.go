package config

import (
	"github.com/philipparndt/gospline/pkg/arraymesh"
	"github.com/philipparndt/gospline/pkg/geometry"
	"github.com/philipparndt/gospline/pkg/pipeline"
	"github.com/philipparndt/gospline/pkg/preview"
	"github.com/philipparndt/gospline/pkg/spline"
	"github.com/philipparndt/gospline/pkg/stl"
	"github.com/philipparndt/gospline/pkg/strip"
)

// PipelineParams converts the sampling, frames and strip sections.
func (c *Config) PipelineParams() (pipeline.Params, error) {
	axis, err := spline.ParseAnchorAxis(c.Frames.AnchorAxis)
	if err != nil {
		return pipeline.Params{}, err
	}
	mode, err := strip.ParseArrayMode(c.Strip.ArrayMode)
	if err != nil {
		return pipeline.Params{}, err
	}

	up := c.Frames.LocalUp
	return pipeline.Params{
		Spacing:    c.Sampling.Spacing,
		Resolution: c.Sampling.Resolution,
		Frames: spline.FrameOptions{
			ZUp:     c.Frames.ZUp,
			Axis:    axis,
			LocalUp: geometry.NewVector3(up[0], up[1], up[2]),
		},
		Width: c.Strip.Width,
		Mode:  mode,
	}, nil
}

// ArrayOptions converts the array section.
func (c *Config) ArrayOptions() arraymesh.Options {
	return arraymesh.Options{
		Ranges:      c.Array.Ranges,
		Skip:        c.Array.Skip,
		SlideOffset: c.Array.SlideOffset,
		HeightScale: c.Array.HeightScale,
	}
}

// PreviewOptions converts the preview section.
func (c *Config) PreviewOptions() preview.Options {
	return preview.Options{
		Width:     c.Preview.Width,
		Height:    c.Preview.Height,
		Elevation: c.Preview.Elevation,
		Azimuth:   c.Preview.Azimuth,
	}
}

// OutputFormat returns the STL encoding selected by the output section.
func (c *Config) OutputFormat() stl.Format {
	if c.Output.Binary {
		return stl.FormatBinary
	}
	return stl.FormatASCII
}
