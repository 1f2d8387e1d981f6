package spline

import (
	"fmt"
	"math"

	"github.com/philipparndt/gospline/pkg/geometry"
)

// EvaluateCubic returns the point at parameter t of the cubic Bezier curve
// p0..p3. t is not clamped; values outside [0,1] extrapolate the curve.
func EvaluateCubic(p0, p1, p2, p3 geometry.Vector3, t float64) geometry.Vector3 {
	u := 1 - t
	return p0.Mul(u * u * u).
		Add(p1.Mul(3 * u * u * t)).
		Add(p2.Mul(3 * u * t * t)).
		Add(p3.Mul(t * t * t))
}

// Path is a polygon resampled at (nearly) uniform arc length.
type Path struct {
	Points []geometry.Vector3
	// Angles holds one twist angle in degrees per point. It is nil when the
	// source polygon has no per-anchor angles.
	Angles []float64
}

// Len returns the number of samples.
func (p Path) Len() int {
	return len(p.Points)
}

// Length returns the length of the polyline through the samples.
func (p Path) Length(closed bool) float64 {
	var total float64
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i-1].Distance(p.Points[i])
	}
	if closed && len(p.Points) > 1 {
		total += p.Points[len(p.Points)-1].Distance(p.Points[0])
	}
	return total
}

// Resample walks the polygon and emits a point every spacing units of
// distance travelled along the curve. The first point is always the first
// anchor; the end of the curve is only emitted when it falls on the spacing.
//
// Each segment is flattened into ceil(estimatedLength*resolution*10) steps,
// where the estimate is the chord plus half the control net length. Higher
// resolution gives spacing closer to the true arc length.
func Resample(p *ControlPolygon, spacing, resolution float64) (Path, error) {
	if len(p.points) == 0 {
		return Path{}, ErrEmptyPolygon
	}
	if !(spacing > 0) {
		return Path{}, fmt.Errorf("resample with spacing %v: %w", spacing, ErrInvalidSpacing)
	}
	if !(resolution > 0) {
		return Path{}, fmt.Errorf("resample with resolution %v: %w", resolution, ErrInvalidResolution)
	}

	twist := p.angles != nil
	out := Path{Points: []geometry.Vector3{p.points[0]}}
	if twist {
		out.Angles = []float64{p.angles[0]}
	}

	previous := p.points[0]
	var sinceLast float64

	for s := range p.NumSegments() {
		seg := p.segment(s)
		samples, travelled := flattenSegment(seg, resolution)
		total := travelled[len(travelled)-1]

		var a0, a1 float64
		if twist {
			a0 = p.angles[s]
			a1 = p.angles[(s+1)%len(p.angles)]
		}

		for i := 1; i < len(samples); i++ {
			onCurve := samples[i]
			sinceLast += previous.Distance(onCurve)

			for sinceLast >= spacing {
				overshoot := sinceLast - spacing
				point := onCurve.Add(previous.Sub(onCurve).Normalize().Mul(overshoot))
				out.Points = append(out.Points, point)

				if twist {
					frac := 0.0
					if total > 0 {
						frac = math.Max(0, math.Min(1, (travelled[i]-overshoot)/total))
					}
					out.Angles = append(out.Angles, a0+(a1-a0)*frac)
				}

				sinceLast = overshoot
				previous = point
			}
			previous = onCurve
		}
	}
	return out, nil
}

// flattenSegment samples a segment at uniform parameter steps and returns the
// samples with the cumulative chord length at each of them.
func flattenSegment(seg [4]geometry.Vector3, resolution float64) ([]geometry.Vector3, []float64) {
	net := seg[0].Distance(seg[1]) + seg[1].Distance(seg[2]) + seg[2].Distance(seg[3])
	estimated := seg[0].Distance(seg[3]) + net/2
	divisions := max(1, int(math.Ceil(estimated*resolution*10)))

	samples := make([]geometry.Vector3, divisions+1)
	travelled := make([]float64, divisions+1)
	samples[0] = seg[0]
	for i := 1; i <= divisions; i++ {
		t := float64(i) / float64(divisions)
		samples[i] = EvaluateCubic(seg[0], seg[1], seg[2], seg[3], t)
		travelled[i] = travelled[i-1] + samples[i-1].Distance(samples[i])
	}
	return samples, travelled
}
