package errors

import (
	"regexp"
	"strings"
)

// canvasRegex matches canvas size strings like "1080x1920".
var canvasRegex = regexp.MustCompile(`^(\d+)x(\d+)$`)

// ValidateCanvasString validates a "WxH" canvas size string.
// Both dimensions must be positive integers. This only checks the shape of
// the string; parsing into dimensions is done by creative.ParseCanvas.
func ValidateCanvasString(canvas string) error {
	if canvas == "" {
		return New(ErrCodeInvalidCanvas, "canvas size cannot be empty")
	}

	m := canvasRegex.FindStringSubmatch(canvas)
	if m == nil {
		return New(ErrCodeInvalidCanvas, "invalid canvas size format: %q (expected WxH, e.g. 1080x1920)", canvas)
	}

	// Leading zeros are tolerated but a zero dimension is not.
	if strings.Trim(m[1], "0") == "" || strings.Trim(m[2], "0") == "" {
		return New(ErrCodeInvalidCanvas, "canvas dimensions must be positive: %q", canvas)
	}

	return nil
}

// KnownChannels is the set of delivery channels understood by the rule engine.
// Unknown channels fall back to the default channel thresholds rather than
// failing, but API input is validated against this set.
var KnownChannels = map[string]bool{
	"facebook":  true,
	"instagram": true,
	"stories":   true,
	"in_store":  true,
	"says":      true,
}

// ValidateChannel checks that a channel name is known.
func ValidateChannel(channel string) error {
	if channel == "" {
		return New(ErrCodeInvalidChannel, "channel cannot be empty")
	}
	if !KnownChannels[channel] {
		return New(ErrCodeInvalidChannel, "unknown channel: %q (must be one of: facebook, instagram, stories, in_store, says)", channel)
	}
	return nil
}

// hexColorRegex matches 3- or 6-digit hex colors with a leading #.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor checks that a string is a #RGB or #RRGGBB hex color.
func ValidateHexColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q", color)
	}
	return nil
}

// ValidateRetailer checks a retailer identifier for basic sanity.
// Unknown retailers are allowed (the brand guardian falls back to the
// default rule table), so this only rejects obviously malformed input.
func ValidateRetailer(retailer string) error {
	if retailer == "" {
		return New(ErrCodeInvalidRetailer, "retailer cannot be empty")
	}
	for _, r := range retailer {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '_' && r != '-' {
			return New(ErrCodeInvalidRetailer, "invalid retailer identifier: %q", retailer)
		}
	}
	return nil
}
