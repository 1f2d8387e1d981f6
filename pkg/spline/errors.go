package spline

import "errors"

var (
	// ErrInvalidIndex is returned when a point, anchor or segment index is out of range.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrEmptyPolygon is returned when resampling a polygon without points.
	ErrEmptyPolygon = errors.New("control polygon has no points")
	// ErrInvalidSpacing is returned for a non-positive resample spacing.
	ErrInvalidSpacing = errors.New("spacing must be positive")
	// ErrInvalidResolution is returned for a non-positive resample resolution.
	ErrInvalidResolution = errors.New("resolution must be positive")
	// ErrClosed is returned when appending a segment to a closed polygon.
	ErrClosed = errors.New("control polygon is closed")
	// ErrControlLocked is returned when moving a control point under the AutoSmooth policy.
	ErrControlLocked = errors.New("control points are computed automatically")
	// ErrInvalidPointCount is returned when a point list does not match the open/closed layout.
	ErrInvalidPointCount = errors.New("invalid point count")
)
