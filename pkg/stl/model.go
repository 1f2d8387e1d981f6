package stl

import (
	"fmt"

	"github.com/philipparndt/gospline/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// NewModelFromIndexed builds a model from an indexed triangle list, three
// indices per triangle. Facet normals follow the counter-clockwise winding.
func NewModelFromIndexed(name string, vertices []geometry.Vector3, indices []int) (*Model, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	model := &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0, len(indices)/3),
	}
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		for _, idx := range [3]int{a, b, c} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("triangle %d references vertex %d of %d", i/3, idx, len(vertices))
			}
		}
		model.AddTriangle(geometry.NewTriangleFromVertices(vertices[a], vertices[b], vertices[c]))
	}
	return model, nil
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// Append copies all triangles of other into the model
func (m *Model) Append(other *Model) {
	m.Triangles = append(m.Triangles, other.Triangles...)
}

// Merge combines several models into a new one
func Merge(name string, models ...*Model) *Model {
	count := 0
	for _, m := range models {
		count += m.TriangleCount()
	}
	merged := &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0, count),
	}
	for _, m := range models {
		merged.Append(m)
	}
	return merged
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Vertices returns the corners of all triangles, three per triangle
func (m *Model) Vertices() []geometry.Vector3 {
	vertices := make([]geometry.Vector3, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		vertices = append(vertices, t.V1, t.V2, t.V3)
	}
	return vertices
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
