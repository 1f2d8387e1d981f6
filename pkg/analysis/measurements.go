package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gospline/pkg/geometry"
	"github.com/philipparndt/gospline/pkg/spline"
	"github.com/philipparndt/gospline/pkg/stl"
)

// EdgeInfo contains information about an edge in the model
type EdgeInfo struct {
	Start      geometry.Vector3
	End        geometry.Vector3
	Length     float64
	TriangleID int
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// PathReport describes a resampled path
type PathReport struct {
	Samples     int
	Length      float64
	MinSpacing  float64
	MaxSpacing  float64
	AvgSpacing  float64
	BoundingBox geometry.BoundingBox
	// MinTurnRadius is the radius of the tightest circle through three
	// consecutive samples, +Inf for a straight path
	MinTurnRadius float64
	// TightestSample is the middle sample of that circle, -1 if there is none
	TightestSample int
}

// AnalyzePath measures spacing, length and curvature of a resampled path
func AnalyzePath(path spline.Path, closed bool) *PathReport {
	points := path.Points
	n := len(points)
	report := &PathReport{
		Samples:        n,
		Length:         path.Length(closed),
		BoundingBox:    geometry.BoundsOf(points),
		MinTurnRadius:  math.Inf(1),
		TightestSample: -1,
	}

	gaps := n - 1
	if closed && n > 1 {
		gaps = n
	}
	if gaps > 0 {
		report.MinSpacing = math.MaxFloat64
		for i := range gaps {
			d := points[i].Distance(points[(i+1)%n])
			report.MinSpacing = math.Min(report.MinSpacing, d)
			report.MaxSpacing = math.Max(report.MaxSpacing, d)
		}
		report.AvgSpacing = report.Length / float64(gaps)
	}

	for i := range n {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		if n < 3 {
			break
		}
		prev, next := points[(i-1+n)%n], points[(i+1)%n]
		circle, err := geometry.CircleThroughPoints(prev, points[i], next)
		if err != nil {
			continue
		}
		if circle.Radius < report.MinTurnRadius {
			report.MinTurnRadius = circle.Radius
			report.TightestSample = i
		}
	}

	return report
}

// AnalyzeModel performs comprehensive analysis on a mesh
func AnalyzeModel(model *stl.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
		AllEdges:      make([]EdgeInfo, 0, model.TriangleCount()*3),
	}

	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i, triangle := range model.Triangles {
		edges := [3]struct {
			start, end geometry.Vector3
		}{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		}

		for _, edge := range edges {
			length := edge.start.Distance(edge.end)

			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:      edge.start,
				End:        edge.end,
				Length:     length,
				TriangleID: i,
			})

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
