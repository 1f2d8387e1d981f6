package geometry

import (
	"fmt"
)

// CircleFit represents a circle in 3D space
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	Normal Vector3 // Unit normal of the plane containing the circle
}

// CircleThroughPoints returns the circle passing through three points.
// It fails when the points are collinear (or coincident).
//
// With u = b-a, w = c-a and n = u x w, the center relative to a is
//
//	(|w|^2 (n x u) + |u|^2 (w x n)) / (2 |n|^2)
func CircleThroughPoints(a, b, c Vector3) (*CircleFit, error) {
	u := b.Sub(a)
	w := c.Sub(a)
	n := u.Cross(w)

	n2 := n.SqrLength()
	scale := u.SqrLength() * w.SqrLength()
	if n2 <= 1e-18*scale || scale == 0 {
		return nil, fmt.Errorf("points are collinear")
	}

	offset := n.Cross(u).Mul(w.SqrLength()).
		Add(w.Cross(n).Mul(u.SqrLength())).
		Mul(1 / (2 * n2))

	return &CircleFit{
		Center: a.Add(offset),
		Radius: offset.Length(),
		Normal: n.Normalize(),
	}, nil
}
