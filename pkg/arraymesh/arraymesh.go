// Package arraymesh repeats an element mesh along a strip, bending one copy
// into every selected quad. Fence panels, rail sleepers and curbs are built
// this way.
package arraymesh

import (
	"errors"
	"fmt"
	"iter"

	"github.com/philipparndt/gospline/pkg/geometry"
	"github.com/philipparndt/gospline/pkg/stl"
	"github.com/philipparndt/gospline/pkg/strip"
)

// Range selects a part of the strip as fractions [From, To] of its samples.
type Range struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// Options controls which quads receive an element and how it is placed.
type Options struct {
	// Ranges selects parts of the strip. Empty means the whole strip.
	Ranges []Range
	// Skip leaves this many quads empty after every placed element.
	Skip int
	// SlideOffset shifts elements sideways, in units of the quad width.
	SlideOffset float64
	// HeightScale scales the element height. Zero means 1.
	HeightScale float64
}

// Validate reports option values that cannot select any quad.
func (o Options) Validate() error {
	var errs []error
	if o.Skip < 0 {
		errs = append(errs, fmt.Errorf("skip must not be negative, got %d", o.Skip))
	}
	for i, r := range o.Ranges {
		if r.From < 0 || r.To > 1 || r.From > r.To {
			errs = append(errs, fmt.Errorf("range %d [%v, %v] must satisfy 0 <= from <= to <= 1", i, r.From, r.To))
		}
	}
	return errors.Join(errs...)
}

// QuadIndices returns the quads selected by opts on mesh, in placement order.
func QuadIndices(mesh *strip.Mesh, opts Options) []int {
	quads := mesh.QuadCount()
	if quads == 0 {
		return nil
	}
	samples := quads + 1
	if mesh.Closed {
		samples = quads
	}

	ranges := opts.Ranges
	if len(ranges) == 0 {
		ranges = []Range{{From: 0, To: 1}}
	}
	step := 1 + max(opts.Skip, 0)

	var indices []int
	for _, r := range ranges {
		start := int(r.From * float64(samples-1))
		end := int(r.To * float64(samples-1))
		if mesh.Closed {
			end++
		}
		for q := max(start, 0); q < end && q < quads; q += step {
			indices = append(indices, q)
		}
	}
	return indices
}

// Pieces returns the element bent into every selected quad of mesh, one
// model per quad. The sequence is computed lazily and can be iterated again.
func Pieces(mesh *strip.Mesh, element *stl.Model, opts Options) iter.Seq[*stl.Model] {
	return func(yield func(*stl.Model) bool) {
		if element == nil || element.TriangleCount() == 0 {
			return
		}
		deform := newDeformer(element, opts)
		quads := mesh.Quads()
		for _, q := range QuadIndices(mesh, opts) {
			if !yield(deform.place(quads[q], fmt.Sprintf("%s_%d", element.Name, q))) {
				return
			}
		}
	}
}

// Combine merges every model of seq into one.
func Combine(name string, seq iter.Seq[*stl.Model]) *stl.Model {
	combined := stl.NewModel(name)
	for m := range seq {
		combined.Append(m)
	}
	return combined
}

type deformer struct {
	element     *stl.Model
	min, size   geometry.Vector3
	heightScale float64
	slide       float64
}

func newDeformer(element *stl.Model, opts Options) *deformer {
	bounds := element.BoundingBox()
	scale := opts.HeightScale
	if scale == 0 {
		scale = 1
	}
	return &deformer{
		element:     element,
		min:         bounds.Min,
		size:        bounds.Size(),
		heightScale: scale,
		slide:       opts.SlideOffset,
	}
}

// place maps element space into the quad: X runs across from the left edge,
// Z runs along from the back edge and Y is lifted along the quad up vector.
func (d *deformer) place(q strip.Quad, name string) *stl.Model {
	back := q.LeftBack.Add(q.RightBack).Mul(0.5)
	front := q.LeftFront.Add(q.RightFront).Mul(0.5)
	across := q.RightBack.Sub(q.LeftBack)
	up := front.Sub(back).Cross(across).Normalize()

	model := &stl.Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0, d.element.TriangleCount()),
	}
	for _, t := range d.element.Triangles {
		model.AddTriangle(geometry.NewTriangleFromVertices(
			d.transform(q, up, t.V1),
			d.transform(q, up, t.V2),
			d.transform(q, up, t.V3),
		))
	}
	return model
}

func (d *deformer) transform(q strip.Quad, up, v geometry.Vector3) geometry.Vector3 {
	x := normalized(v.X, d.min.X, d.size.X) + d.slide
	z := normalized(v.Z, d.min.Z, d.size.Z)

	back := q.LeftBack.Lerp(q.RightBack, x)
	front := q.LeftFront.Lerp(q.RightFront, x)
	return back.Lerp(front, z).Add(up.Mul(v.Y * d.heightScale))
}

func normalized(v, lo, size float64) float64 {
	if size == 0 {
		return 0
	}
	return (v - lo) / size
}
