// Package color implements the colorimetric math behind the compliance and
// brand rules: WCAG relative luminance and contrast ratios, readable-text
// suggestions, and nearest-brand-color lookups.
//
// Colors are hex strings ("#RRGGBB" or the short "#RGB" form, any case).
// Parsing is delegated to go-colorful; the WCAG luminance computation is
// implemented here because the accessibility standard pins an exact sRGB
// gamma expansion (threshold 0.03928, divisor 12.92, exponent 2.4) that
// differs from colorful's own linearization helpers.
package color

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/adproof/adproof/pkg/errors"
)

// WCAG AA contrast thresholds.
const (
	// ContrastNormalText is the minimum ratio for text below the large cutoff.
	ContrastNormalText = 4.5

	// ContrastLargeText is the minimum ratio for large text.
	ContrastLargeText = 3.0

	// LargeTextMinSize is the font size (px) at which text counts as large.
	LargeTextMinSize = 24
)

// Parse parses a hex color string into a colorful.Color.
// Both "#RRGGBB" and "#RGB" forms are accepted, case-insensitively.
func Parse(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse color %q", hex)
	}
	return c, nil
}

// Normalize returns the canonical upper-case "#RRGGBB" form of a hex color.
func Normalize(hex string) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(c.Hex()), nil
}

// RelativeLuminance computes the WCAG relative luminance of a color.
//
// Each sRGB channel is gamma-expanded (c/12.92 if c <= 0.03928, else
// ((c+0.055)/1.055)^2.4) and the channels are combined with the standard
// 0.2126/0.7152/0.0722 weights. The result is in [0,1].
func RelativeLuminance(hex string) (float64, error) {
	c, err := Parse(hex)
	if err != nil {
		return 0, err
	}
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B), nil
}

// linearize applies the WCAG sRGB gamma expansion to one channel in [0,1].
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two colors.
// The result is always in [1,21], with 21 for pure black on pure white.
func ContrastRatio(c1, c2 string) (float64, error) {
	l1, err := RelativeLuminance(c1)
	if err != nil {
		return 0, err
	}
	l2, err := RelativeLuminance(c2)
	if err != nil {
		return 0, err
	}

	lighter, darker := l1, l2
	if darker > lighter {
		lighter, darker = darker, lighter
	}
	return (lighter + 0.05) / (darker + 0.05), nil
}

// MeetsWCAGAA reports whether a text/background pair meets the WCAG AA
// contrast requirement: 4.5:1 for normal text, 3:1 for large text.
func MeetsWCAGAA(textColor, bgColor string, isLargeText bool) (bool, error) {
	ratio, err := ContrastRatio(textColor, bgColor)
	if err != nil {
		return false, err
	}
	return ratio >= ContrastThreshold(isLargeText), nil
}

// ContrastThreshold returns the applicable WCAG AA ratio for the text size.
func ContrastThreshold(isLargeText bool) float64 {
	if isLargeText {
		return ContrastLargeText
	}
	return ContrastNormalText
}

// IsLargeText reports whether a font size qualifies as WCAG "large" text.
func IsLargeText(fontSize int) bool {
	return fontSize >= LargeTextMinSize
}

// SuggestedTextColor returns black or white, whichever reads better against
// the given background. Backgrounds with luminance above 0.5 get black text.
// An unparseable background defaults to black text.
func SuggestedTextColor(bgColor string) string {
	lum, err := RelativeLuminance(bgColor)
	if err != nil || lum > 0.5 {
		return "#000000"
	}
	return "#FFFFFF"
}

// neutrals are always acceptable regardless of brand palette.
var neutrals = map[string]bool{
	"#000000": true,
	"#FFFFFF": true,
	"#333333": true,
	"#666666": true,
	"#999999": true,
}

// IsNeutral reports whether a color is a neutral (black, white, or a standard
// grey) that is exempt from brand-palette checks. Unparseable colors are not
// neutral.
func IsNeutral(hex string) bool {
	n, err := Normalize(hex)
	if err != nil {
		return false
	}
	return neutrals[n]
}

// Nearest returns the palette entry closest to the given color by Euclidean
// RGB distance. Ties resolve to the earliest palette entry. Palette entries
// that fail to parse are skipped; if none parse (or the palette is empty),
// the input color is returned unchanged.
func Nearest(hex string, palette []string) string {
	c, err := Parse(hex)
	if err != nil {
		return hex
	}

	best := hex
	bestDist := math.Inf(1)
	for _, p := range palette {
		pc, err := Parse(p)
		if err != nil {
			continue
		}
		if d := c.DistanceRgb(pc); d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

// InPalette reports whether a color appears in the palette, comparing
// normalized forms so "#fff" matches "#FFFFFF".
func InPalette(hex string, palette []string) bool {
	n, err := Normalize(hex)
	if err != nil {
		return false
	}
	for _, p := range palette {
		if pn, err := Normalize(p); err == nil && pn == n {
			return true
		}
	}
	return false
}
