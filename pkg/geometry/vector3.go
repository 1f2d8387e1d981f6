package geometry

import "math"

// Vector3 represents a 3D point or vector
type Vector3 struct {
	X, Y, Z float64
}

// Common axes. Up is +Y, matching the authoring convention of spline documents.
var (
	Zero    = Vector3{}
	Right   = Vector3{X: 1}
	Up      = Vector3{Y: 1}
	Forward = Vector3{Z: 1}
)

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Neg returns the opposite vector
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// SqrLength returns the squared magnitude of the vector
func (v Vector3) SqrLength() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return v.Mul(1.0 / length)
}

// Lerp interpolates linearly from v to other. t is not clamped.
func (v Vector3) Lerp(other Vector3, t float64) Vector3 {
	return v.Add(other.Sub(v).Mul(t))
}

// IsZero reports whether the vector is shorter than eps
func (v Vector3) IsZero(eps float64) bool {
	return v.SqrLength() <= eps*eps
}

// ApproxEqual reports whether every component differs by at most eps
func (v Vector3) ApproxEqual(other Vector3, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps &&
		math.Abs(v.Y-other.Y) <= eps &&
		math.Abs(v.Z-other.Z) <= eps
}

// Reflect mirrors v across the plane through the origin with normal n.
// n does not need to be unit length; a zero normal returns v unchanged.
func (v Vector3) Reflect(n Vector3) Vector3 {
	c := n.SqrLength()
	if c == 0 {
		return v
	}
	return v.Sub(n.Mul(2 / c * n.Dot(v)))
}

// RotateAround rotates v about axis by angle radians (right-hand rule).
// Uses Rodrigues' rotation formula; axis is normalized internally.
func (v Vector3) RotateAround(axis Vector3, angle float64) Vector3 {
	k := axis.Normalize()
	if k == (Vector3{}) {
		return v
	}
	sin, cos := math.Sincos(angle)
	return v.Mul(cos).
		Add(k.Cross(v).Mul(sin)).
		Add(k.Mul(k.Dot(v) * (1 - cos)))
}

// Angle returns the unsigned angle between two vectors in radians
func (v Vector3) Angle(other Vector3) float64 {
	denom := math.Sqrt(v.SqrLength() * other.SqrLength())
	if denom == 0 {
		return 0
	}
	c := v.Dot(other) / denom
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// SignedAngle returns the angle in radians that rotates v onto other about axis.
// Both vectors are projected onto the plane perpendicular to axis first.
func (v Vector3) SignedAngle(other, axis Vector3) float64 {
	k := axis.Normalize()
	a := v.Sub(k.Mul(k.Dot(v)))
	b := other.Sub(k.Mul(k.Dot(other)))
	return math.Atan2(k.Dot(a.Cross(b)), a.Dot(b))
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
		Z: math.Min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
		Z: math.Max(v.Z, other.Z),
	}
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
