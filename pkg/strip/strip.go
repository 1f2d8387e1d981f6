// Package strip turns a frame sequence into a flat ribbon mesh, the base
// geometry of roads, fences and rails.
package strip

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gospline/pkg/geometry"
	"github.com/philipparndt/gospline/pkg/spline"
	"github.com/philipparndt/gospline/pkg/stl"
)

// ArrayMode selects the vertex layout of the strip.
type ArrayMode int

const (
	// Continuous emits an independent quad of four vertices per pair of samples.
	Continuous ArrayMode = iota
	// NoSpace emits two vertices per sample and shares them between neighboring quads.
	NoSpace
)

func (m ArrayMode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case NoSpace:
		return "no-space"
	}
	return fmt.Sprintf("ArrayMode(%d)", int(m))
}

// ParseArrayMode parses "continuous" or "no-space".
func ParseArrayMode(s string) (ArrayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "continuous", "default":
		return Continuous, nil
	case "no-space", "nospace", "no_space":
		return NoSpace, nil
	}
	return Continuous, fmt.Errorf("unknown array mode %q", s)
}

// Options configures [Build].
type Options struct {
	Closed bool
	Width  float64
	Mode   ArrayMode
}

// Mesh is an indexed triangle mesh with one UV per vertex.
type Mesh struct {
	Vertices  []geometry.Vector3
	UVs       []geometry.Vector2
	Triangles []int
	Mode      ArrayMode
	Closed    bool
}

// Quad is one cell of the strip. Left is the +Normal side of the frames,
// back is the earlier sample.
type Quad struct {
	LeftBack, RightBack   geometry.Vector3
	LeftFront, RightFront geometry.Vector3
}

// Build tessellates frames into a strip of the given width centered on the
// path. Each quad between sample i and i+1 is split into the triangles
// (left_i, left_i+1, right_i) and (right_i, left_i+1, right_i+1), so the faces
// point along the frame up vector. Closed strips get a quad from the last
// sample back to the first.
func Build(frames []spline.Frame, opts Options) *Mesh {
	mesh := &Mesh{Mode: opts.Mode, Closed: opts.Closed}
	n := len(frames)
	if n == 0 {
		return mesh
	}

	half := opts.Width / 2
	left := make([]geometry.Vector3, n)
	right := make([]geometry.Vector3, n)
	for i, f := range frames {
		offset := f.Normal.Mul(half)
		left[i] = f.Position.Add(offset)
		right[i] = f.Position.Sub(offset)
	}

	quads := quadCount(n, opts.Closed)
	switch opts.Mode {
	case NoSpace:
		mesh.Vertices = make([]geometry.Vector3, 0, 2*n)
		mesh.UVs = make([]geometry.Vector2, 0, 2*n)
		for i := range n {
			v := wave(i, n)
			mesh.Vertices = append(mesh.Vertices, left[i], right[i])
			mesh.UVs = append(mesh.UVs, geometry.NewVector2(0, v), geometry.NewVector2(1, v))
		}
		mesh.Triangles = make([]int, 0, 6*quads)
		for i := range quads {
			j := (i + 1) % n
			mesh.Triangles = append(mesh.Triangles, 2*i, 2*j, 2*i+1, 2*i+1, 2*j, 2*j+1)
		}

	default:
		mesh.Vertices = make([]geometry.Vector3, 0, 4*quads)
		mesh.UVs = make([]geometry.Vector2, 0, 4*quads)
		mesh.Triangles = make([]int, 0, 6*quads)
		for i := range quads {
			j := (i + 1) % n
			v0, v1 := wave(i, n), wave(i+1, n)
			base := len(mesh.Vertices)
			mesh.Vertices = append(mesh.Vertices, left[i], right[i], left[j], right[j])
			mesh.UVs = append(mesh.UVs,
				geometry.NewVector2(0, v0),
				geometry.NewVector2(1, v0),
				geometry.NewVector2(0, v1),
				geometry.NewVector2(1, v1),
			)
			mesh.Triangles = append(mesh.Triangles, base, base+2, base+1, base+1, base+2, base+3)
		}
	}
	return mesh
}

func quadCount(samples int, closed bool) int {
	switch {
	case samples < 2:
		return 0
	case closed && samples > 2:
		return samples
	}
	return samples - 1
}

// wave maps sample i of n onto a triangular ramp that rises from 0 at the
// start to 1 halfway and falls back to 0 at the end.
func wave(i, n int) float64 {
	frac := float64(i) / float64(n)
	v := 2*frac - 1
	if v < 0 {
		v = -v
	}
	return 1 - v
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// QuadCount returns the number of quads, two triangles each.
func (m *Mesh) QuadCount() int {
	return len(m.Triangles) / 6
}

// Quads returns the corners of every quad in path order.
func (m *Mesh) Quads() []Quad {
	quads := make([]Quad, m.QuadCount())
	for q := range quads {
		tri := m.Triangles[q*6 : q*6+6]
		quads[q] = Quad{
			LeftBack:   m.Vertices[tri[0]],
			LeftFront:  m.Vertices[tri[1]],
			RightBack:  m.Vertices[tri[2]],
			RightFront: m.Vertices[tri[5]],
		}
	}
	return quads
}

// Model converts the mesh into an STL model.
func (m *Mesh) Model(name string) (*stl.Model, error) {
	return stl.NewModelFromIndexed(name, m.Vertices, m.Triangles)
}
