// Package pipeline runs the geometry stages in order: resample the control
// polygon, build frames, tessellate the strip.
package pipeline

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/philipparndt/gospline/pkg/spline"
	"github.com/philipparndt/gospline/pkg/strip"
)

// Params holds the inputs of every stage besides the polygon itself.
type Params struct {
	Spacing    float64
	Resolution float64
	Frames     spline.FrameOptions
	Width      float64
	Mode       strip.ArrayMode
}

// DefaultParams returns the parameters used when nothing is configured.
func DefaultParams() Params {
	return Params{
		Spacing:    1,
		Resolution: 1,
		Width:      1,
		Mode:       strip.Continuous,
	}
}

// Result holds the output of every stage.
type Result struct {
	Path   spline.Path
	Frames []spline.Frame
	Mesh   *strip.Mesh
}

// Run builds the strip of poly. The closed flag of the frames and the strip
// always follows the polygon. A nil logger disables logging.
func Run(poly *spline.ControlPolygon, params Params, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	path, err := spline.Resample(poly, params.Spacing, params.Resolution)
	if err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}
	log.Debug("resampled polygon",
		zap.Int("segments", poly.NumSegments()),
		zap.Int("samples", path.Len()),
		zap.Float64("spacing", params.Spacing),
		zap.Float64("resolution", params.Resolution))

	frameOpts := params.Frames
	frameOpts.Closed = poly.Closed()
	frames := spline.BuildFrames(path, frameOpts)
	log.Debug("built frames",
		zap.Int("frames", len(frames)),
		zap.Bool("closed", frameOpts.Closed),
		zap.Bool("z_up", frameOpts.ZUp),
		zap.Stringer("anchor_axis", frameOpts.Axis))

	mesh := strip.Build(frames, strip.Options{
		Closed: poly.Closed(),
		Width:  params.Width,
		Mode:   params.Mode,
	})
	log.Debug("tessellated strip",
		zap.Stringer("mode", params.Mode),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{Path: path, Frames: frames, Mesh: mesh}, nil
}
