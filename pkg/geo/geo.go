// Package geo provides the box geometry primitives shared by the rule engine,
// the brand guardian, and the adaptive resizer.
//
// All element geometry in a layout is expressed as percentages of the canvas
// ([0,100] per axis). This package converts between that percentage space and
// integer pixel space, and answers overlap/separation questions on pixel
// boxes.
//
// # Conversion Semantics
//
// Percentage→pixel conversion truncates (floors) each product. Callers that
// compare against exact pixel thresholds must use the same truncation to get
// identical results; there is no rounding.
package geo

// Box is an axis-aligned pixel rectangle given by its min and max corners.
// Max coordinates are exclusive in the sense that two boxes sharing an edge
// (a.MaxX == b.MinX) do not overlap.
type Box struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// NewBox builds a Box from an origin and size in pixels.
func NewBox(x, y, w, h int) Box {
	return Box{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Width returns the box width in pixels.
func (b Box) Width() int { return b.MaxX - b.MinX }

// Height returns the box height in pixels.
func (b Box) Height() int { return b.MaxY - b.MinY }

// Area returns the box area in square pixels.
func (b Box) Area() int { return b.Width() * b.Height() }

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return float64(b.MinX) + float64(b.Width())/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return float64(b.MinY) + float64(b.Height())/2 }

// Expand grows the box by margin pixels on every side.
// A negative margin shrinks the box; the result may be degenerate.
func (b Box) Expand(margin int) Box {
	return Box{
		MinX: b.MinX - margin,
		MinY: b.MinY - margin,
		MaxX: b.MaxX + margin,
		MaxY: b.MaxY + margin,
	}
}

// PercentToPixels converts percentage-based geometry to pixel values by
// truncating multiplication against the canvas dimensions.
func PercentToPixels(xPct, yPct, wPct, hPct float64, canvasW, canvasH int) (x, y, w, h int) {
	x = int(xPct / 100 * float64(canvasW))
	y = int(yPct / 100 * float64(canvasH))
	w = int(wPct / 100 * float64(canvasW))
	h = int(hPct / 100 * float64(canvasH))
	return x, y, w, h
}

// PixelsToPercent converts pixel geometry back to percentages of the canvas.
// This is the (lossy) inverse of PercentToPixels.
func PixelsToPercent(x, y, w, h, canvasW, canvasH int) (xPct, yPct, wPct, hPct float64) {
	xPct = float64(x) / float64(canvasW) * 100
	yPct = float64(y) / float64(canvasH) * 100
	wPct = float64(w) / float64(canvasW) * 100
	hPct = float64(h) / float64(canvasH) * 100
	return xPct, yPct, wPct, hPct
}

// PercentBox converts percentage geometry straight to a pixel Box.
func PercentBox(xPct, yPct, wPct, hPct float64, canvasW, canvasH int) Box {
	x, y, w, h := PercentToPixels(xPct, yPct, wPct, hPct, canvasW, canvasH)
	return NewBox(x, y, w, h)
}

// Overlap reports whether two boxes overlap. Boxes that merely touch along
// an edge or corner are treated as non-overlapping.
func Overlap(a, b Box) bool {
	return !(a.MaxX <= b.MinX || b.MaxX <= a.MinX ||
		a.MaxY <= b.MinY || b.MaxY <= a.MinY)
}

// MinGap returns the separation between two boxes in pixels.
//
// The gap is computed per axis: zero when the boxes overlap or touch on that
// axis, otherwise the distance between the nearest edges. The result is the
// larger of the two axis gaps (a Chebyshev-style metric), not the Euclidean
// corner distance. Overlapping boxes have a gap of 0.
func MinGap(a, b Box) int {
	var hGap, vGap int

	switch {
	case a.MaxX < b.MinX:
		hGap = b.MinX - a.MaxX
	case b.MaxX < a.MinX:
		hGap = a.MinX - b.MaxX
	}

	switch {
	case a.MaxY < b.MinY:
		vGap = b.MinY - a.MaxY
	case b.MaxY < a.MinY:
		vGap = a.MinY - b.MaxY
	}

	if hGap > vGap {
		return hGap
	}
	return vGap
}

// TooClose reports whether b intrudes into the margin around a. The margin is
// applied by expanding a before the overlap test, matching clear-space rules.
func TooClose(a, b Box, margin int) bool {
	return Overlap(a.Expand(margin), b)
}
