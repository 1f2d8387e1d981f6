package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gospline/internal/logger"
	"github.com/philipparndt/gospline/pkg/document"
	"github.com/philipparndt/gospline/pkg/geometry"
	"github.com/philipparndt/gospline/pkg/pipeline"
	"github.com/philipparndt/gospline/pkg/spline"
)

// pipelineFlags override the sampling, frames and strip sections of the config
var pipelineFlags struct {
	spacing    float64
	resolution float64
	width      float64
	mode       string
	axis       string
	zUp        bool
}

func addPipelineFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64VarP(&pipelineFlags.spacing, "spacing", "s", 1, "Distance between samples along the spline")
	f.Float64Var(&pipelineFlags.resolution, "resolution", 1, "Flattening density used for arc length estimation")
	f.Float64VarP(&pipelineFlags.width, "width", "w", 1, "Strip width")
	f.StringVar(&pipelineFlags.mode, "mode", "continuous", "Strip layout: continuous or no-space")
	f.StringVar(&pipelineFlags.axis, "axis", "world", "Reference up axis: world or local")
	f.BoolVar(&pipelineFlags.zUp, "z-up", false, "Keep the strip flat instead of following the curve's banking")
}

// pipelineParams applies changed pipeline flags to the config and converts it
func pipelineParams(cmd *cobra.Command) (pipeline.Params, error) {
	f := cmd.Flags()
	if f.Changed("spacing") {
		cfg.Sampling.Spacing = pipelineFlags.spacing
	}
	if f.Changed("resolution") {
		cfg.Sampling.Resolution = pipelineFlags.resolution
	}
	if f.Changed("width") {
		cfg.Strip.Width = pipelineFlags.width
	}
	if f.Changed("mode") {
		cfg.Strip.ArrayMode = pipelineFlags.mode
	}
	if f.Changed("axis") {
		cfg.Frames.AnchorAxis = pipelineFlags.axis
	}
	if f.Changed("z-up") {
		cfg.Frames.ZUp = pipelineFlags.zUp
	}
	if err := cfg.Validate(); err != nil {
		return pipeline.Params{}, err
	}
	return cfg.PipelineParams()
}

// runPipeline loads the document at path and builds its strip
func runPipeline(cmd *cobra.Command, path string) (*pipeline.Result, *document.Document, error) {
	params, err := pipelineParams(cmd)
	if err != nil {
		return nil, nil, err
	}
	poly, doc, err := document.LoadPolygon(path)
	if err != nil {
		return nil, nil, err
	}
	result, err := pipeline.Run(poly, params, logger.Named("pipeline"))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, doc, nil
}

// parseVector reads three consecutive float arguments
func parseVector(args []string) (geometry.Vector3, error) {
	if len(args) != 3 {
		return geometry.Vector3{}, fmt.Errorf("expected x y z, got %d values", len(args))
	}
	var v [3]float64
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid coordinate %q", arg)
		}
		v[i] = f
	}
	return geometry.NewVector3(v[0], v[1], v[2]), nil
}

func parseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", arg)
	}
	return i, nil
}

// documentName returns the name stored in doc, or fallback when it is empty
func documentName(doc *document.Document, fallback string) string {
	if doc.Name != "" {
		return doc.Name
	}
	return fallback
}

// polygonSummary describes a control polygon in one line
func polygonSummary(p *spline.ControlPolygon) string {
	topology := "open"
	if p.Closed() {
		topology = "closed"
	}
	return fmt.Sprintf("%d points, %d segments, %s, %s", p.NumPoints(), p.NumSegments(), topology, p.Policy())
}
