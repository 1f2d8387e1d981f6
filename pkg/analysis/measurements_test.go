package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/gospline/pkg/geometry"
	"github.com/philipparndt/gospline/pkg/spline"
	"github.com/philipparndt/gospline/pkg/stl"
)

func TestAnalyzePathStraight(t *testing.T) {
	path := spline.Path{Points: []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(3, 0, 0),
	}}
	report := AnalyzePath(path, false)

	if report.Samples != 3 {
		t.Errorf("Samples failed: expected 3, got %d", report.Samples)
	}
	if math.Abs(report.Length-3) > 1e-10 {
		t.Errorf("Length failed: expected 3, got %v", report.Length)
	}
	if report.MinSpacing != 1 || report.MaxSpacing != 2 {
		t.Errorf("Spacing failed: expected 1..2, got %v..%v", report.MinSpacing, report.MaxSpacing)
	}
	if math.Abs(report.AvgSpacing-1.5) > 1e-10 {
		t.Errorf("AvgSpacing failed: expected 1.5, got %v", report.AvgSpacing)
	}
	if !math.IsInf(report.MinTurnRadius, 1) || report.TightestSample != -1 {
		t.Errorf("Straight path should have no turn radius, got %v at %d", report.MinTurnRadius, report.TightestSample)
	}
}

func TestAnalyzePathCircle(t *testing.T) {
	const radius = 3.0
	poly, err := spline.NewPrimitive(spline.PrimitiveCircle, geometry.Zero, 8, 2*radius)
	if err != nil {
		t.Fatalf("NewPrimitive failed: %v", err)
	}
	path, err := spline.Resample(poly, 0.2, 2)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}

	report := AnalyzePath(path, true)
	if math.Abs(report.MinTurnRadius-radius) > 0.05*radius {
		t.Errorf("MinTurnRadius failed: expected about %v, got %v", radius, report.MinTurnRadius)
	}
	if math.Abs(report.Length-2*math.Pi*radius) > 0.05 {
		t.Errorf("Length failed: expected about %v, got %v", 2*math.Pi*radius, report.Length)
	}
	if report.MaxSpacing > 0.2+1e-9 {
		t.Errorf("MaxSpacing failed: expected at most 0.2, got %v", report.MaxSpacing)
	}
	size := report.BoundingBox.Size()
	if math.Abs(size.X-2*radius) > 0.01 || size.Y != 0 {
		t.Errorf("BoundingBox failed: got size %v", size)
	}
}

func TestAnalyzePathEmpty(t *testing.T) {
	report := AnalyzePath(spline.Path{}, true)
	if report.Samples != 0 || report.Length != 0 || report.AvgSpacing != 0 {
		t.Errorf("Empty path report: got %+v", report)
	}
}

func TestAnalyzeModel(t *testing.T) {
	model := stl.NewModel("tri")
	model.AddTriangle(geometry.NewTriangleFromVertices(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(3, 0, 0),
		geometry.NewVector3(0, 4, 0),
	))

	result := AnalyzeModel(model)
	if result.TriangleCount != 1 || result.EdgeCount != 3 {
		t.Errorf("Counts failed: got %d triangles, %d edges", result.TriangleCount, result.EdgeCount)
	}
	if math.Abs(result.SurfaceArea-6) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 6, got %v", result.SurfaceArea)
	}
	if result.MinEdgeLength != 3 || result.MaxEdgeLength != 5 {
		t.Errorf("Edge lengths failed: expected 3..5, got %v..%v", result.MinEdgeLength, result.MaxEdgeLength)
	}
	if math.Abs(result.AvgEdgeLength-4) > 1e-10 {
		t.Errorf("AvgEdgeLength failed: expected 4, got %v", result.AvgEdgeLength)
	}

	shortest := FindShortestEdges(result, 2)
	if len(shortest) != 2 || shortest[0].Length != 3 || shortest[1].Length != 4 {
		t.Errorf("FindShortestEdges failed: got %+v", shortest)
	}
	if len(FindShortestEdges(result, 10)) != 3 {
		t.Error("FindShortestEdges should cap at the edge count")
	}
}

func TestAnalyzeEmptyModel(t *testing.T) {
	result := AnalyzeModel(stl.NewModel(""))
	if result.MinEdgeLength != 0 || result.EdgeCount != 0 {
		t.Errorf("Empty model: got %+v", result)
	}
}

func TestFormat(t *testing.T) {
	if got := FormatMeasurement(1.5, ""); got != "1.500000 units" {
		t.Errorf("FormatMeasurement failed: got %q", got)
	}
	if got := FormatVector(geometry.NewVector3(1, 2, 3)); got != "(1.000000, 2.000000, 3.000000)" {
		t.Errorf("FormatVector failed: got %q", got)
	}
}
