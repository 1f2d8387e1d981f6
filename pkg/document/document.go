// Package document persists control polygons as YAML files.
//
// A document looks like:
//
//	name: ring road
//	closed: true
//	policy: auto-smooth
//	points:
//	  - [0, 0, -2]
//	  - [1.1, 0, -2]
//	  ...
//	angles: [0, 15, 30, 15]
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gospline/pkg/geometry"
	"github.com/philipparndt/gospline/pkg/spline"
)

// Point is a position written as a flow sequence [x, y, z].
type Point [3]float64

// MarshalYAML writes the point on a single line.
func (p Point) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range p {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(c, 'g', -1, 64),
		})
	}
	return node, nil
}

// Vector converts the point to a geometry vector.
func (p Point) Vector() geometry.Vector3 {
	return geometry.NewVector3(p[0], p[1], p[2])
}

// Document is the on-disk form of a control polygon.
type Document struct {
	Name   string    `yaml:"name,omitempty"`
	Closed bool      `yaml:"closed"`
	Policy string    `yaml:"policy"`
	Points []Point   `yaml:"points"`
	Angles []float64 `yaml:"angles,omitempty,flow"`
}

// FromPolygon captures the state of p.
func FromPolygon(name string, p *spline.ControlPolygon) *Document {
	points := p.Points()
	doc := &Document{
		Name:   name,
		Closed: p.Closed(),
		Policy: p.Policy().String(),
		Points: make([]Point, len(points)),
		Angles: p.Angles(),
	}
	for i, v := range points {
		doc.Points[i] = Point{v.X, v.Y, v.Z}
	}
	return doc
}

// Polygon rebuilds the control polygon described by the document.
func (d *Document) Polygon() (*spline.ControlPolygon, error) {
	policy, err := spline.ParsePolicy(d.Policy)
	if err != nil {
		return nil, err
	}

	points := make([]geometry.Vector3, len(d.Points))
	for i, p := range d.Points {
		points[i] = p.Vector()
	}

	poly, err := spline.FromPoints(points, d.Closed)
	if err != nil {
		return nil, err
	}
	if len(d.Angles) > 0 {
		if err := poly.SetAngles(d.Angles); err != nil {
			return nil, err
		}
	}
	poly.SetPolicy(policy)
	return poly, nil
}

// Parse decodes a document from YAML.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding spline document: %w", err)
	}
	return &doc, nil
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Load reads a document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadPolygon reads the document at path and rebuilds its polygon.
func LoadPolygon(path string) (*spline.ControlPolygon, *Document, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	poly, err := doc.Polygon()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return poly, doc, nil
}

// Save writes the document to path, creating parent directories as needed.
func (d *Document) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := d.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
