package spline

import (
	"fmt"
	"slices"

	"github.com/philipparndt/gospline/pkg/geometry"
)

// ControlPolygon is the editable point list of a cubic Bezier spline.
//
// The zero value is an empty open polygon. A ControlPolygon is not safe for
// concurrent use.
type ControlPolygon struct {
	points []geometry.Vector3
	angles []float64 // twist per distinct anchor in degrees, nil when unused
	closed bool
	policy Policy
}

// New returns the single-segment seed polygon centered on center.
func New(center geometry.Vector3) *ControlPolygon {
	return &ControlPolygon{
		points: []geometry.Vector3{
			center.Add(geometry.NewVector3(-1, 0, 0)),
			center.Add(geometry.NewVector3(-0.5, 0, 0.5)),
			center.Add(geometry.NewVector3(0.5, 0, -0.5)),
			center.Add(geometry.NewVector3(1, 0, 0)),
		},
	}
}

// FromPoints creates a polygon from an existing point list. Open polygons need
// 3n+1 points, closed polygons 3n points.
func FromPoints(points []geometry.Vector3, closed bool) (*ControlPolygon, error) {
	if err := checkPointCount(len(points), closed); err != nil {
		return nil, err
	}
	return &ControlPolygon{
		points: slices.Clone(points),
		closed: closed,
	}, nil
}

func checkPointCount(n int, closed bool) error {
	if closed && n%3 != 0 {
		return fmt.Errorf("closed polygon with %d points: %w", n, ErrInvalidPointCount)
	}
	if !closed && n%3 != 1 && n != 0 {
		return fmt.Errorf("open polygon with %d points: %w", n, ErrInvalidPointCount)
	}
	return nil
}

// Clone returns an independent copy of the polygon.
func (p *ControlPolygon) Clone() *ControlPolygon {
	return &ControlPolygon{
		points: slices.Clone(p.points),
		angles: slices.Clone(p.angles),
		closed: p.closed,
		policy: p.policy,
	}
}

// Points returns a copy of the point list.
func (p *ControlPolygon) Points() []geometry.Vector3 {
	return slices.Clone(p.points)
}

// Point returns the point at index i.
func (p *ControlPolygon) Point(i int) (geometry.Vector3, error) {
	if i < 0 || i >= len(p.points) {
		return geometry.Vector3{}, fmt.Errorf("point %d of %d: %w", i, len(p.points), ErrInvalidIndex)
	}
	return p.points[i], nil
}

// Anchors returns the on-curve points in order.
func (p *ControlPolygon) Anchors() []geometry.Vector3 {
	anchors := make([]geometry.Vector3, 0, p.NumAnchors())
	for i := 0; i < len(p.points); i += 3 {
		anchors = append(anchors, p.points[i])
	}
	return anchors
}

// NumPoints returns the number of anchor and control points.
func (p *ControlPolygon) NumPoints() int {
	return len(p.points)
}

// NumSegments returns the number of cubic segments.
func (p *ControlPolygon) NumSegments() int {
	return len(p.points) / 3
}

// NumAnchors returns the number of distinct anchors. The wrap-around anchor of a
// closed polygon is counted once.
func (p *ControlPolygon) NumAnchors() int {
	return (len(p.points) + 2) / 3
}

// IsAnchor reports whether index i addresses an anchor.
func IsAnchor(i int) bool {
	return i%3 == 0
}

// Closed reports whether the last segment wraps back to the first anchor.
func (p *ControlPolygon) Closed() bool {
	return p.closed
}

// Policy returns the control point policy.
func (p *ControlPolygon) Policy() Policy {
	return p.policy
}

// SegmentPoints returns the four Bezier points of segment i.
func (p *ControlPolygon) SegmentPoints(i int) ([4]geometry.Vector3, error) {
	if i < 0 || i >= p.NumSegments() {
		return [4]geometry.Vector3{}, fmt.Errorf("segment %d of %d: %w", i, p.NumSegments(), ErrInvalidIndex)
	}
	return p.segment(i), nil
}

func (p *ControlPolygon) segment(i int) [4]geometry.Vector3 {
	return [4]geometry.Vector3{
		p.points[i*3],
		p.points[i*3+1],
		p.points[i*3+2],
		p.points[p.loopIndex(i*3+3)],
	}
}

// Angles returns the per-anchor twist angles in degrees, or nil when none were set.
func (p *ControlPolygon) Angles() []float64 {
	return slices.Clone(p.angles)
}

// SetAngle sets the twist of anchor k (the k-th anchor, point index 3k) in degrees.
// Polygons without angles get zero angles for every other anchor.
func (p *ControlPolygon) SetAngle(k int, degrees float64) error {
	if k < 0 || k >= p.NumAnchors() {
		return fmt.Errorf("anchor %d of %d: %w", k, p.NumAnchors(), ErrInvalidIndex)
	}
	if p.angles == nil {
		p.angles = make([]float64, p.NumAnchors())
	}
	p.angles[k] = degrees
	return nil
}

// SetAngles replaces all twist angles. A nil slice removes them.
func (p *ControlPolygon) SetAngles(angles []float64) error {
	if angles != nil && len(angles) != p.NumAnchors() {
		return fmt.Errorf("%d angles for %d anchors: %w", len(angles), p.NumAnchors(), ErrInvalidPointCount)
	}
	p.angles = slices.Clone(angles)
	return nil
}

// SetPolicy changes the control point policy. Switching to AutoSmooth
// recomputes every control point.
func (p *ControlPolygon) SetPolicy(policy Policy) {
	if p.policy == policy {
		return
	}
	p.policy = policy
	if policy == PolicyAutoSmooth {
		p.smoothAll()
	}
}

// SetClosed opens or closes the polygon. Closing appends two control points
// extrapolated from the end tangents, opening removes them again.
func (p *ControlPolygon) SetClosed(closed bool) error {
	if p.closed == closed {
		return nil
	}
	n := len(p.points)
	if closed && n%3 != 0 && n < 4 {
		return fmt.Errorf("close polygon with %d points: %w", n, ErrInvalidPointCount)
	}

	p.closed = closed
	if closed {
		if n%3 != 0 {
			p.points = append(p.points,
				p.points[n-1].Mul(2).Sub(p.points[n-2]),
				p.points[0].Mul(2).Sub(p.points[1]),
			)
		}
		if p.policy == PolicyAutoSmooth && len(p.points) > 0 {
			p.smoothAnchor(0)
			p.smoothAnchor(len(p.points) - 3)
		}
		return nil
	}

	if n > 0 && n%3 == 0 {
		p.points = p.points[:n-2]
	}
	if p.policy == PolicyAutoSmooth {
		p.smoothEnds()
	}
	return nil
}

// AddSegment appends a segment ending in anchor. The new outgoing control
// continues the tangent of the last anchor.
func (p *ControlPolygon) AddSegment(anchor geometry.Vector3) error {
	if p.closed {
		return fmt.Errorf("add segment: %w", ErrClosed)
	}

	n := len(p.points)
	if n == 0 {
		p.points = append(p.points, anchor)
		if p.angles != nil {
			p.angles = append(p.angles, 0)
		}
		return nil
	}

	last := p.points[n-1]
	prev := last
	if n > 1 {
		prev = p.points[n-2]
	}
	out := last.Mul(2).Sub(prev)
	p.points = append(p.points, out, out.Add(anchor).Mul(0.5), anchor)

	if p.angles != nil {
		p.angles = append(p.angles, p.angles[len(p.angles)-1])
	}
	if p.policy == PolicyAutoSmooth {
		p.smoothAffected(len(p.points) - 1)
	}
	return nil
}

// SplitSegment inserts anchor into segment i. The controls around the new
// anchor are derived from its neighbors.
func (p *ControlPolygon) SplitSegment(anchor geometry.Vector3, i int) error {
	if i < 0 || i >= p.NumSegments() {
		return fmt.Errorf("split segment %d of %d: %w", i, p.NumSegments(), ErrInvalidIndex)
	}

	if p.angles != nil {
		a0 := p.angles[i]
		a1 := p.angles[(i+1)%len(p.angles)]
		p.angles = slices.Insert(p.angles, i+1, (a0+a1)/2)
	}

	p.points = slices.Insert(p.points, i*3+2, geometry.Vector3{}, anchor, geometry.Vector3{})
	if p.policy == PolicyAutoSmooth {
		p.smoothAffected(i*3 + 3)
	} else {
		p.smoothAnchor(i*3 + 3)
	}
	return nil
}

// DeleteSegment removes the anchor at point index anchorIndex together with its
// two controls. It does nothing when fewer than two segments (open) or three
// segments (closed) would remain.
func (p *ControlPolygon) DeleteSegment(anchorIndex int) error {
	n := len(p.points)
	if anchorIndex < 0 || anchorIndex >= n || !IsAnchor(anchorIndex) {
		return fmt.Errorf("delete anchor %d of %d points: %w", anchorIndex, n, ErrInvalidIndex)
	}

	segments := p.NumSegments()
	if segments <= 2 && (p.closed || segments <= 1) {
		return nil
	}

	switch {
	case anchorIndex == 0 && p.closed:
		// the incoming control of the second anchor becomes the wrap control
		p.points[n-1] = p.points[2]
		p.points = slices.Delete(p.points, 0, 3)
	case anchorIndex == 0:
		p.points = slices.Delete(p.points, 0, 3)
	case anchorIndex == n-1 && !p.closed:
		p.points = slices.Delete(p.points, anchorIndex-2, anchorIndex+1)
	default:
		p.points = slices.Delete(p.points, anchorIndex-1, anchorIndex+2)
	}

	if p.angles != nil {
		p.angles = slices.Delete(p.angles, anchorIndex/3, anchorIndex/3+1)
	}
	if p.policy == PolicyAutoSmooth {
		p.smoothAffected(anchorIndex)
	}
	return nil
}

// MovePoint moves the point at index i to pos.
//
// Anchors drag their controls along, or re-smooth them under AutoSmooth.
// Under the Tangent policy a moved control mirrors its partner on the other
// side of the anchor, keeping the partner's distance.
func (p *ControlPolygon) MovePoint(i int, pos geometry.Vector3) error {
	n := len(p.points)
	if i < 0 || i >= n {
		return fmt.Errorf("move point %d of %d: %w", i, n, ErrInvalidIndex)
	}
	anchor := IsAnchor(i)
	if !anchor && p.policy == PolicyAutoSmooth {
		return fmt.Errorf("move point %d: %w", i, ErrControlLocked)
	}

	delta := pos.Sub(p.points[i])
	p.points[i] = pos

	if p.policy == PolicyAutoSmooth {
		p.smoothAffected(i)
		return nil
	}

	if anchor {
		if i+1 < n || p.closed {
			j := p.loopIndex(i + 1)
			p.points[j] = p.points[j].Add(delta)
		}
		if i-1 >= 0 || p.closed {
			j := p.loopIndex(i - 1)
			p.points[j] = p.points[j].Add(delta)
		}
		return nil
	}

	if p.policy == PolicyTangent {
		partner, pivot := i-2, i-1
		if IsAnchor(i + 1) {
			partner, pivot = i+2, i+1
		}
		if partner >= 0 && partner < n || p.closed {
			partner, pivot = p.loopIndex(partner), p.loopIndex(pivot)
			a := p.points[pivot]
			dst := a.Distance(p.points[partner])
			dir := a.Sub(pos).Normalize()
			p.points[partner] = a.Add(dir.Mul(dst))
		}
	}
	return nil
}

func (p *ControlPolygon) loopIndex(i int) int {
	n := len(p.points)
	return (i%n + n) % n
}

// smoothAffected re-smooths the anchor at index i and its direct neighbors.
func (p *ControlPolygon) smoothAffected(i int) {
	n := len(p.points)
	if n == 0 {
		return
	}
	for a := i - 3; a <= i+3; a += 3 {
		if a >= 0 && a < n || p.closed {
			p.smoothAnchor(p.loopIndex(a))
		}
	}
}

func (p *ControlPolygon) smoothAll() {
	for i := 0; i < len(p.points); i += 3 {
		p.smoothAnchor(i)
	}
}

// smoothAnchor places both controls of an anchor on the line that bisects the
// directions to its neighbors, each at half the distance to that neighbor.
func (p *ControlPolygon) smoothAnchor(anchorIndex int) {
	n := len(p.points)
	anchor := p.points[anchorIndex]

	var dir geometry.Vector3
	var dist [2]float64

	if anchorIndex-3 >= 0 || p.closed {
		offset := p.points[p.loopIndex(anchorIndex-3)].Sub(anchor)
		dir = dir.Add(offset.Normalize())
		dist[0] = offset.Length()
	}
	if anchorIndex+3 < n || p.closed {
		offset := p.points[p.loopIndex(anchorIndex+3)].Sub(anchor)
		dir = dir.Sub(offset.Normalize())
		dist[1] = -offset.Length()
	}
	dir = dir.Normalize()

	for side := range 2 {
		c := anchorIndex + side*2 - 1
		if c >= 0 && c < n || p.closed {
			p.points[p.loopIndex(c)] = anchor.Add(dir.Mul(dist[side] * 0.5))
		}
	}
}

// smoothEnds resets the outer controls of an open polygon to the midpoints of
// their segments.
func (p *ControlPolygon) smoothEnds() {
	n := len(p.points)
	if n < 4 {
		return
	}
	p.points[1] = p.points[0].Add(p.points[3]).Mul(0.5)
	p.points[n-2] = p.points[n-1].Add(p.points[n-4]).Mul(0.5)
}
