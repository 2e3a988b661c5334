package timeline

// Zoom bounds and step for the pixels-per-day scale. Requests outside the
// bounds clamp rather than error.
const (
	MinPixelsPerDay     = 4
	MaxPixelsPerDay     = 40
	ZoomStep            = 4
	DefaultPixelsPerDay = 8
)

// ZoomDirection selects a zoom action.
type ZoomDirection int

// Zoom directions.
const (
	ZoomIn ZoomDirection = iota
	ZoomOut
)

// ClampScale forces a scale into the valid [MinPixelsPerDay,
// MaxPixelsPerDay] range.
func ClampScale(scale int) int {
	if scale < MinPixelsPerDay {
		return MinPixelsPerDay
	}
	if scale > MaxPixelsPerDay {
		return MaxPixelsPerDay
	}
	return scale
}

// ZoomScale steps a scale by one zoom action and clamps the result.
// Zooming out at the minimum or in at the maximum leaves the scale
// unchanged.
func ZoomScale(scale int, dir ZoomDirection) int {
	switch dir {
	case ZoomIn:
		scale += ZoomStep
	case ZoomOut:
		scale -= ZoomStep
	}
	return ClampScale(scale)
}
