package geometry

import (
	"math"
	"testing"
)

func TestCircleThroughPoints(t *testing.T) {
	center := NewVector3(1, 2, 3)
	radius := 2.5

	// Circle in the XZ plane
	a := center.Add(NewVector3(radius, 0, 0))
	b := center.Add(NewVector3(0, 0, radius))
	c := center.Add(NewVector3(-radius*math.Cos(0.3), 0, -radius*math.Sin(0.3)))

	fit, err := CircleThroughPoints(a, b, c)
	if err != nil {
		t.Fatalf("CircleThroughPoints failed: %v", err)
	}

	if !fit.Center.ApproxEqual(center, 1e-9) {
		t.Errorf("Center failed: expected %v, got %v", center, fit.Center)
	}
	if math.Abs(fit.Radius-radius) > 1e-9 {
		t.Errorf("Radius failed: expected %v, got %v", radius, fit.Radius)
	}
	if math.Abs(math.Abs(fit.Normal.Y)-1) > 1e-9 {
		t.Errorf("Normal failed: expected +-Y, got %v", fit.Normal)
	}
}

func TestCircleThroughCollinearPoints(t *testing.T) {
	_, err := CircleThroughPoints(
		NewVector3(0, 0, 0),
		NewVector3(1, 1, 1),
		NewVector3(2, 2, 2),
	)
	if err == nil {
		t.Error("expected error for collinear points")
	}
}
