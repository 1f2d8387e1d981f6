// Package spline implements piecewise cubic Bezier splines for authoring
// roads, fences and rails.
//
// A [ControlPolygon] owns the anchor and control points of the spline.
// Index i of the point list is an anchor (on the curve) when i%3 == 0; the
// two points between consecutive anchors are the Bezier control handles of
// that segment. An open polygon holds 3n+1 points for n segments, a closed
// polygon holds 3n points and its last segment wraps back to point 0.
//
// Geometry flows one way:
//
//	ControlPolygon -> Resample -> BuildFrames -> strip.Build
//
// [Resample] converts the polygon into points spaced evenly along the curve,
// [BuildFrames] attaches a rotation-minimizing tangent/normal/up frame to
// every sample. Both are deterministic and allocate fresh output.
package spline
