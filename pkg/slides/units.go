package slides

import "math"

// EMU (English Metric Units) are the integer coordinate unit of OOXML
// drawings. The public API works in points.
const (
	// EMUPerPoint is the fixed conversion ratio between EMUs and points.
	EMUPerPoint = 12700

	// DegreeUnits is the fixed-point angular unit: 1 degree = 60000 units.
	DegreeUnits = 60000
)

// ToPoints converts an EMU value to points.
func ToPoints(emu int64) float64 {
	return float64(emu) / EMUPerPoint
}

// ToEMU converts a point value to EMUs, rounding to nearest.
func ToEMU(points float64) int64 {
	return int64(math.Round(points * EMUPerPoint))
}

// Rect is a rectangle in points: position plus size.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}
