package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}

	if zero := (Vector3{}).Normalize(); zero != (Vector3{}) {
		t.Errorf("Normalize of zero vector failed: expected zero, got %v", zero)
	}
}

func TestVector3Cross(t *testing.T) {
	result := Right.Cross(Up)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Lerp(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(2, 4, 6)

	expected := NewVector3(1, 2, 3)
	if result := v1.Lerp(v2, 0.5); result != expected {
		t.Errorf("Lerp failed: expected %v, got %v", expected, result)
	}

	expected = NewVector3(4, 8, 12)
	if result := v1.Lerp(v2, 2); result != expected {
		t.Errorf("Lerp extrapolation failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Reflect(t *testing.T) {
	v := NewVector3(1, 1, 0)
	result := v.Reflect(NewVector3(0, 2, 0))

	expected := NewVector3(1, -1, 0)
	if !result.ApproxEqual(expected, 1e-10) {
		t.Errorf("Reflect failed: expected %v, got %v", expected, result)
	}

	if result := v.Reflect(Vector3{}); result != v {
		t.Errorf("Reflect across zero normal failed: expected %v, got %v", v, result)
	}
}

func TestVector3RotateAround(t *testing.T) {
	result := Right.RotateAround(Up, math.Pi/2)

	// Right-hand rule about +Y takes +X to -Z
	expected := NewVector3(0, 0, -1)
	if !result.ApproxEqual(expected, 1e-10) {
		t.Errorf("RotateAround failed: expected %v, got %v", expected, result)
	}

	result = NewVector3(0, 3, 0).RotateAround(NewVector3(0, 5, 0), 1.234)
	if !result.ApproxEqual(NewVector3(0, 3, 0), 1e-10) {
		t.Errorf("RotateAround of parallel vector failed: got %v", result)
	}
}

func TestVector3SignedAngle(t *testing.T) {
	angle := Right.SignedAngle(Forward, Up)
	if math.Abs(angle+math.Pi/2) > 1e-10 {
		t.Errorf("SignedAngle failed: expected %v, got %v", -math.Pi/2, angle)
	}

	angle = Forward.SignedAngle(Right, Up)
	if math.Abs(angle-math.Pi/2) > 1e-10 {
		t.Errorf("SignedAngle failed: expected %v, got %v", math.Pi/2, angle)
	}

	// Components along the axis are ignored
	angle = NewVector3(1, 5, 0).SignedAngle(NewVector3(1, -3, 0), Up)
	if math.Abs(angle) > 1e-10 {
		t.Errorf("SignedAngle with axial component failed: expected 0, got %v", angle)
	}
}

func TestVector3SignedAngleRoundTrip(t *testing.T) {
	axis := NewVector3(1, 2, 3).Normalize()
	from := axis.Cross(Up).Normalize()

	for _, angle := range []float64{-2.5, -0.3, 0, 0.7, 3.0} {
		to := from.RotateAround(axis, angle)
		got := from.SignedAngle(to, axis)
		if math.Abs(got-angle) > 1e-10 {
			t.Errorf("SignedAngle(RotateAround(%v)) failed: got %v", angle, got)
		}
	}
}

func TestVector3Angle(t *testing.T) {
	angle := Right.Angle(NewVector3(1, 1, 0))
	if math.Abs(angle-math.Pi/4) > 1e-10 {
		t.Errorf("Angle failed: expected %v, got %v", math.Pi/4, angle)
	}
}

func TestDegreeConversion(t *testing.T) {
	if math.Abs(DegToRad(180)-math.Pi) > 1e-10 {
		t.Errorf("DegToRad failed: got %v", DegToRad(180))
	}
	if math.Abs(RadToDeg(math.Pi/2)-90) > 1e-10 {
		t.Errorf("RadToDeg failed: got %v", RadToDeg(math.Pi/2))
	}
}
