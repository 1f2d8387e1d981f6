package spline

import (
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/gospline/pkg/geometry"
)

// seamTolerance is the twist mismatch across the seam of a closed path, in
// degrees, below which no correction is applied.
const seamTolerance = 0.01

const epsilon = 1e-9

// Frame is the orientation of a path at one sample.
// Tangent, Up and Normal are unit length and mutually perpendicular, with
// Normal = Tangent x Up.
type Frame struct {
	Position geometry.Vector3
	Tangent  geometry.Vector3
	Normal   geometry.Vector3
	Up       geometry.Vector3
}

// AnchorAxis selects the reference up axis the first frame starts from.
type AnchorAxis int

const (
	// AxisWorld starts from world up (+Y).
	AxisWorld AnchorAxis = iota
	// AxisLocal starts from a caller supplied up axis, usually the up vector of
	// the object that owns the spline.
	AxisLocal
)

func (a AnchorAxis) String() string {
	switch a {
	case AxisWorld:
		return "world"
	case AxisLocal:
		return "local"
	}
	return fmt.Sprintf("AnchorAxis(%d)", int(a))
}

// ParseAnchorAxis parses "world" or "local".
func ParseAnchorAxis(s string) (AnchorAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "world":
		return AxisWorld, nil
	case "local":
		return AxisLocal, nil
	}
	return AxisWorld, fmt.Errorf("unknown anchor axis %q", s)
}

// FrameOptions configures [BuildFrames].
type FrameOptions struct {
	// Closed treats the samples as a loop.
	Closed bool
	// ZUp builds flat frames whose normal stays perpendicular to the up axis
	// instead of propagating a rotation-minimizing frame.
	ZUp bool
	// Axis selects the reference up axis.
	Axis AnchorAxis
	// LocalUp is the up axis for AxisLocal. A zero vector falls back to world up.
	LocalUp geometry.Vector3
}

func (o FrameOptions) upAxis() geometry.Vector3 {
	if o.Axis == AxisLocal && !o.LocalUp.IsZero(epsilon) {
		return o.LocalUp.Normalize()
	}
	return geometry.Up
}

// BuildFrames computes one frame per sample of path.
//
// Frames are propagated with the double reflection method, which keeps the
// twist between consecutive frames minimal. On closed paths the remaining
// twist mismatch at the seam is spread linearly over all frames. Twist angles
// carried by the path are applied last, as a rotation about each tangent.
func BuildFrames(path Path, opts FrameOptions) []Frame {
	points := path.Points
	n := len(points)
	if n == 0 {
		return nil
	}

	axis := opts.upAxis()
	tangents := sampleTangents(points, opts.Closed)
	frames := make([]Frame, n)

	for i, t := range tangents {
		if opts.ZUp {
			normal := t.Cross(axis)
			if normal.IsZero(epsilon) {
				// tangent parallel to the up axis
				hint := axis
				if i > 0 {
					hint = frames[i-1].Normal
				}
				normal = perpendicular(hint, t)
			}
			normal = normal.Normalize()
			frames[i] = Frame{
				Position: points[i],
				Tangent:  t,
				Normal:   normal,
				Up:       normal.Cross(t),
			}
			continue
		}

		var up geometry.Vector3
		if i == 0 {
			up = perpendicular(axis, t)
		} else {
			up = transport(frames[i-1], points[i], t)
		}
		frames[i] = newFrame(points[i], t, up)
	}

	if opts.Closed && !opts.ZUp && n > 2 {
		correctSeam(frames)
	}
	if len(path.Angles) == n {
		for i, angle := range path.Angles {
			if angle != 0 {
				twist(&frames[i], geometry.DegToRad(angle))
			}
		}
	}
	return frames
}

func newFrame(position, tangent, up geometry.Vector3) Frame {
	return Frame{
		Position: position,
		Tangent:  tangent,
		Normal:   tangent.Cross(up),
		Up:       up,
	}
}

// sampleTangents returns the normalized sum of the incoming and outgoing chord
// at every sample. Open ends use the single chord they have. Samples with no
// usable chord inherit the tangent of their nearest neighbor.
func sampleTangents(points []geometry.Vector3, closed bool) []geometry.Vector3 {
	n := len(points)
	tangents := make([]geometry.Vector3, n)
	firstValid := -1

	for i := range n {
		var offset geometry.Vector3
		if i < n-1 || closed {
			offset = offset.Add(points[(i+1)%n].Sub(points[i]))
		}
		if i > 0 || closed {
			offset = offset.Add(points[i].Sub(points[(i-1+n)%n]))
		}
		if offset.IsZero(epsilon) {
			continue
		}
		tangents[i] = offset.Normalize()
		if firstValid < 0 {
			firstValid = i
		}
	}

	if firstValid < 0 {
		for i := range tangents {
			tangents[i] = geometry.Forward
		}
		return tangents
	}
	for i := 0; i < firstValid; i++ {
		tangents[i] = tangents[firstValid]
	}
	for i := firstValid + 1; i < n; i++ {
		if tangents[i] == (geometry.Vector3{}) {
			tangents[i] = tangents[i-1]
		}
	}
	return tangents
}

// transport carries the up vector of prev to a sample at position with
// tangent t by two reflections: across the plane bisecting the chord, then
// across the plane that maps the reflected tangent onto t.
func transport(prev Frame, position, t geometry.Vector3) geometry.Vector3 {
	v1 := position.Sub(prev.Position)
	if v1.IsZero(epsilon) {
		// coincident samples: reflect across the tangent bisector so the
		// composition stays a rotation
		v1 = prev.Tangent.Add(t)
	}
	up := prev.Up.Reflect(v1)
	tangent := prev.Tangent.Reflect(v1)
	up = up.Reflect(t.Sub(tangent))
	return perpendicular(up, t)
}

// perpendicular returns the unit component of v perpendicular to the unit
// vector t, or some unit vector perpendicular to t when v is parallel to it.
func perpendicular(v, t geometry.Vector3) geometry.Vector3 {
	w := v.Sub(t.Mul(t.Dot(v)))
	if w.IsZero(epsilon) {
		hint := geometry.Up
		if math.Abs(t.Y) > 0.9 {
			hint = geometry.Forward
		}
		w = hint.Sub(t.Mul(t.Dot(hint)))
	}
	return w.Normalize()
}

// seamError returns the angle in radians that rotates the up vector of the
// last frame, transported across the wrap chord, onto the up vector of the
// first frame.
func seamError(frames []Frame) float64 {
	first, last := frames[0], frames[len(frames)-1]
	wrapped := transport(last, first.Position, first.Tangent)
	return wrapped.SignedAngle(first.Up, first.Tangent)
}

func correctSeam(frames []Frame) {
	n := len(frames)
	angle := seamError(frames)
	if math.Abs(geometry.RadToDeg(angle)) <= seamTolerance {
		return
	}
	for i := 1; i < n; i++ {
		twist(&frames[i], angle*float64(i)/float64(n-1))
	}
}

// twist rotates the frame about its tangent.
func twist(f *Frame, angle float64) {
	f.Up = f.Up.RotateAround(f.Tangent, angle)
	f.Normal = f.Tangent.Cross(f.Up)
}
