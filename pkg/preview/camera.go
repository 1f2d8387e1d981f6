package preview

import (
	"math"

	"github.com/philipparndt/gospline/pkg/geometry"
)

// Camera represents a 3D camera orbiting a target
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Field of view in radians
	Distance float64
	// Elevation is the angle above the target's horizon, Azimuth the angle
	// around the vertical axis measured from +Z, both in radians
	Elevation float64
	Azimuth   float64
}

// NewCamera creates a new camera positioned to view a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 1.6
	if distance < 1e-6 {
		distance = 1
	}

	c := &Camera{
		Target:   center,
		Up:       geometry.Up,
		FOV:      math.Pi / 4, // 45 degrees
		Distance: distance,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on the orbit angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.Elevation) * math.Sin(c.Azimuth)
	y := c.Distance * math.Sin(c.Elevation)
	z := c.Distance * math.Cos(c.Elevation) * math.Cos(c.Azimuth)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Orbit places the camera at the given elevation and azimuth in degrees
func (c *Camera) Orbit(elevation, azimuth float64) {
	// Clamp elevation to keep the view direction away from the up axis
	maxAngle := math.Pi/2 - 0.01
	c.Elevation = math.Max(-maxAngle, math.Min(maxAngle, geometry.DegToRad(elevation)))
	c.Azimuth = geometry.DegToRad(azimuth)
	c.UpdatePosition()
}

// Forward returns the unit view direction
func (c *Camera) Forward() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Project projects a 3D point to 2D screen coordinates
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Forward()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	// Transform to camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	// Perspective projection
	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}
