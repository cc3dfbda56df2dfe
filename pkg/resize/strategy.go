package resize

import (
	"math"

	"github.com/adproof/adproof/pkg/errors"
	"github.com/adproof/adproof/pkg/format"
)

// Strategy selects how a layout is transformed into a new format.
type Strategy string

const (
	// StrategyScaleFit uniformly scales the whole layout and centers it.
	StrategyScaleFit Strategy = "scale_fit"
	// StrategyReflow rearranges elements into a landscape template.
	StrategyReflow Strategy = "reflow"
	// StrategyCropCenter maps elements through a centered crop window.
	StrategyCropCenter Strategy = "crop_center"
	// StrategyStack rearranges elements into a vertical template.
	StrategyStack Strategy = "stack"
	// StrategySideBySide is an alias for reflow kept for wide formats.
	StrategySideBySide Strategy = "side_by_side"
)

// ParseStrategy validates a strategy name. The empty string is allowed and
// means "choose automatically".
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyScaleFit, StrategyReflow, StrategyCropCenter, StrategyStack, StrategySideBySide:
		return Strategy(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q", s)
}

// DetermineStrategy picks an adaptation strategy from the aspect-ratio
// relationship between source and target:
//
//   - near-identical ratios scale,
//   - portrait to landscape reflows,
//   - landscape to portrait stacks,
//   - extreme banners reflow,
//   - everything else scales.
func DetermineStrategy(source, target format.Config) Strategy {
	sourceAR := source.AspectRatio
	targetAR := target.AspectRatio

	if math.Abs(sourceAR-targetAR) < 0.1 {
		return StrategyScaleFit
	}
	if sourceAR < 1 && targetAR > 1 {
		return StrategyReflow
	}
	if sourceAR > 1 && targetAR < 1 {
		return StrategyStack
	}
	if targetAR > 3 || targetAR < 0.3 {
		return StrategyReflow
	}
	return StrategyScaleFit
}
