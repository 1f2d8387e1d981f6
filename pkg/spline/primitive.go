package spline

import (
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/gospline/pkg/geometry"
)

// PrimitiveKind selects a generated starting shape.
type PrimitiveKind int

const (
	// PrimitiveLine is an open straight line along X.
	PrimitiveLine PrimitiveKind = iota
	// PrimitiveCircle is a closed circle in the XZ plane.
	PrimitiveCircle
	// PrimitivePolygon is a closed regular polygon in the XZ plane with sharp corners.
	PrimitivePolygon
)

var primitiveNames = map[PrimitiveKind]string{
	PrimitiveLine:    "line",
	PrimitiveCircle:  "circle",
	PrimitivePolygon: "polygon",
}

func (k PrimitiveKind) String() string {
	if name, ok := primitiveNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PrimitiveKind(%d)", int(k))
}

// ParsePrimitive parses a primitive name as produced by [PrimitiveKind.String].
func ParsePrimitive(s string) (PrimitiveKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range primitiveNames {
		if n == name {
			return k, nil
		}
	}
	return PrimitiveLine, fmt.Errorf("unknown primitive %q", s)
}

// NewPrimitive generates a polygon of the given kind centered at center.
// size is the line length or the circle/polygon diameter.
func NewPrimitive(kind PrimitiveKind, center geometry.Vector3, segments int, size float64) (*ControlPolygon, error) {
	switch kind {
	case PrimitiveLine:
		if segments < 1 {
			return nil, fmt.Errorf("line needs at least 1 segment, got %d", segments)
		}
		return &ControlPolygon{points: Line(center, segments, size)}, nil
	case PrimitiveCircle:
		if segments < 2 {
			return nil, fmt.Errorf("circle needs at least 2 segments, got %d", segments)
		}
		return &ControlPolygon{points: Circle(center, segments, size*0.5), closed: true}, nil
	case PrimitivePolygon:
		if segments < 3 {
			return nil, fmt.Errorf("polygon needs at least 3 segments, got %d", segments)
		}
		return &ControlPolygon{points: Polygon(center, segments, size*0.5), closed: true}, nil
	}
	return nil, fmt.Errorf("unknown primitive %v", kind)
}

// Line returns 3n+1 points of a straight line of the given length along X,
// with controls at the thirds of every segment.
func Line(center geometry.Vector3, segments int, length float64) []geometry.Vector3 {
	start := center.Add(geometry.NewVector3(-length*0.5, 0, 0))
	end := center.Add(geometry.NewVector3(length*0.5, 0, 0))

	points := make([]geometry.Vector3, 0, segments*3+1)
	for i := range segments * 3 {
		points = append(points, start.Lerp(end, float64(i)/float64(segments*3)))
	}
	return append(points, end)
}

// Circle returns 3n points approximating a circle with n cubic segments.
// The first point is an anchor; the incoming control of that anchor is the last point.
func Circle(center geometry.Vector3, segments int, radius float64) []geometry.Vector3 {
	n := float64(segments)
	handle := math.Tan(math.Pi/(2*n)) * 4 / 3 * radius
	offset := ringOffset(segments)

	points := make([]geometry.Vector3, 0, segments*3)
	for i := range segments {
		sin, cos := math.Sincos(2*math.Pi*float64(i)/n + offset)
		anchor := center.Add(geometry.NewVector3(cos, 0, sin).Mul(-radius))
		tangent := geometry.NewVector3(sin, 0, -cos).Mul(handle)

		points = append(points, anchor.Sub(tangent), anchor, anchor.Add(tangent))
	}
	return rotateLeft(points)
}

// Polygon returns 3n points of a regular polygon whose controls coincide with
// the corners.
func Polygon(center geometry.Vector3, segments int, radius float64) []geometry.Vector3 {
	n := float64(segments)
	offset := ringOffset(segments)

	points := make([]geometry.Vector3, 0, segments*3)
	for i := range segments {
		sin, cos := math.Sincos(2*math.Pi*float64(i)/n + offset)
		corner := center.Add(geometry.NewVector3(cos, 0, sin).Mul(radius))
		points = append(points, corner, corner, corner)
	}
	return rotateLeft(points)
}

// ringOffset turns even-sided shapes so that an edge, not a corner, faces -Z.
func ringOffset(segments int) float64 {
	offset := math.Pi / 2
	if segments%2 == 0 {
		offset += math.Pi / float64(segments)
	}
	return offset
}

// rotateLeft moves the first element to the end.
func rotateLeft(points []geometry.Vector3) []geometry.Vector3 {
	if len(points) == 0 {
		return points
	}
	return append(points[1:], points[0])
}
