package docx

import "math"

// Length is a WordprocessingML measurement in twentieths of a point (twips).
type Length int64

// Unit conversion factors.
const (
	twipsPerInch = 1440
	mmPerInch    = 25.4
)

// Mm converts millimeters to a Length, rounded to the nearest twip.
func Mm(v float64) Length {
	return Length(math.Round(v * twipsPerInch / mmPerInch))
}

// Millimeters returns l in millimeters.
func (l Length) Millimeters() float64 {
	return float64(l) * mmPerInch / twipsPerInch
}

// halfPoints converts a font size in points to the half-point unit used by w:sz.
func halfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}
