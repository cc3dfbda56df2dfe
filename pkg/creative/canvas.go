package creative

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/adproof/adproof/pkg/errors"
)

// canvasRegex matches canvas size strings like "1080x1920".
var canvasRegex = regexp.MustCompile(`^(\d+)x(\d+)$`)

// ParseCanvas parses a "WxH" canvas size string into pixel dimensions.
// A malformed string or non-positive dimension is a fatal input error;
// validation cannot proceed without a real canvas.
func ParseCanvas(canvas string) (width, height int, err error) {
	m := canvasRegex.FindStringSubmatch(canvas)
	if m == nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidCanvas, "invalid canvas size format: %q", canvas)
	}

	width, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidCanvas, err, "canvas width %q", m[1])
	}
	height, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidCanvas, err, "canvas height %q", m[2])
	}

	if width <= 0 || height <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidCanvas, "canvas dimensions must be positive: %q", canvas)
	}
	return width, height, nil
}

// CanvasKey formats pixel dimensions as the canonical "WxH" registry key.
func CanvasKey(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}
