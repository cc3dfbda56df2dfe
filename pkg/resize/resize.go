// Package resize adapts creative layouts between canvas formats.
//
// Adaptation is deterministic: a strategy is chosen (or overridden), the
// layout is transformed by that strategy, then safe-zone clamping and
// text-readability floors are applied. Every transform works on a clone; the
// input layout is never modified.
package resize

import (
	"fmt"
	"math"

	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/format"
)

// Reflow/stack font treatment.
const reflowFontScale = 0.7

// Resizer adapts layouts using a format registry.
type Resizer struct {
	formats *format.Registry
}

// New returns a resizer over the given registry.
func New(formats *format.Registry) *Resizer {
	return &Resizer{formats: formats}
}

// Formats exposes the underlying registry.
func (r *Resizer) Formats() *format.Registry { return r.formats }

// Adapt converts a layout from the source format to the target format.
// An empty strategy selects one automatically. The returned layout is a new
// value with the target key appended to its id; adapting a format onto
// itself returns an unmodified clone.
func (r *Resizer) Adapt(l *creative.Layout, sourceKey, targetKey string, strategy Strategy) (*creative.Layout, error) {
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}
	if sourceKey == targetKey {
		return l.Clone(), nil
	}

	source := r.formats.Source(sourceKey)
	target := r.formats.Target(targetKey)

	if strategy == "" {
		strategy = DetermineStrategy(source, target)
	}

	adapted := l.Clone()
	adapted.ID = fmt.Sprintf("%s_%s", l.ID, targetKey)

	switch strategy {
	case StrategyScaleFit:
		adapted = scaleFit(adapted, source, target)
	case StrategyReflow, StrategySideBySide:
		adapted = reflow(adapted, target)
	case StrategyStack:
		adapted = stack(adapted)
	case StrategyCropCenter:
		adapted = cropCenter(adapted, source, target)
	}

	adapted = applySafeZones(adapted, target)
	adapted = ensureTextReadability(adapted, target)
	return adapted, nil
}

// BatchAdapt converts a layout into every target format. A failing target is
// omitted from the result and reported as a warning; the remaining targets
// still complete.
func (r *Resizer) BatchAdapt(l *creative.Layout, sourceKey string, targetKeys []string) (map[string]*creative.Layout, []string) {
	results := make(map[string]*creative.Layout, len(targetKeys))
	var warnings []string

	for _, target := range targetKeys {
		adapted, err := r.Adapt(l, sourceKey, target, "")
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("adapt to %s: %v", target, err))
			continue
		}
		results[target] = adapted
	}
	return results, warnings
}

// ===== Strategies =====

// scaleFit scales all positioned elements by the uniform factor and centers
// the scaled content on the target canvas. Offsets are computed in
// percentage space.
func scaleFit(l *creative.Layout, source, target format.Config) *creative.Layout {
	scaleX := float64(target.Width) / float64(source.Width)
	scaleY := float64(target.Height) / float64(source.Height)
	scale := math.Min(scaleX, scaleY)

	offsetX := (float64(target.Width) - float64(source.Width)*scale) / 2 / float64(target.Width) * 100
	offsetY := (float64(target.Height) - float64(source.Height)*scale) / 2 / float64(target.Height) * 100

	for i := range l.Elements {
		e := &l.Elements[i]
		if e.IsBackground() {
			continue
		}
		e.X = e.X*scale + offsetX
		e.Y = e.Y*scale + offsetY
		e.Width *= scale
		e.Height *= scale
	}
	return l
}

// elementIndex keeps the last element of each type, matching the
// one-slot-per-type semantics of the reflow and stack templates.
func elementIndex(l *creative.Layout) map[string]creative.Element {
	idx := make(map[string]creative.Element, len(l.Elements))
	for _, e := range l.Elements {
		idx[e.Type] = e
	}
	return idx
}

// reflow rebuilds the layout into a fixed landscape template: packshot on
// the left, text column on the right, compliance elements in the bottom
// corners. Types absent from the source are omitted.
func reflow(l *creative.Layout, target format.Config) *creative.Layout {
	idx := elementIndex(l)
	out := l.Elements[:0:0]

	if bg, ok := idx[creative.TypeBackground]; ok {
		out = append(out, bg)
	}

	if target.AspectRatio > 1 {
		if ps, ok := idx[creative.TypePackshot]; ok {
			ps.X, ps.Y, ps.Width, ps.Height = 5, 10, 35, 60
			out = append(out, ps)
		}

		const textX = 45.0
		currentY := 15.0

		if h, ok := idx[creative.TypeHeadline]; ok {
			h.X, h.Y, h.Width, h.Height = textX, currentY, 50, 20
			if h.FontSize > 0 {
				h.FontSize = int(float64(h.FontSize) * reflowFontScale)
			}
			out = append(out, h)
			currentY += 25
		}

		if s, ok := idx[creative.TypeSubhead]; ok {
			s.X, s.Y, s.Width, s.Height = textX, currentY, 50, 15
			if s.FontSize > 0 {
				s.FontSize = int(float64(s.FontSize) * reflowFontScale)
			}
			out = append(out, s)
		}

		if logo, ok := idx[creative.TypeLogo]; ok {
			logo.X, logo.Y, logo.Width, logo.Height = textX, 70, 15, 20
			out = append(out, logo)
		}

		if tag, ok := idx[creative.TypeTescoTag]; ok {
			tag.X, tag.Y, tag.Width, tag.Height = 70, 85, 25, 10
			out = append(out, tag)
		}

		if da, ok := idx[creative.TypeDrinkaware]; ok {
			da.X, da.Y, da.Width, da.Height = 5, 85, 30, 10
			out = append(out, da)
		}
	}

	l.Elements = out
	return l
}

// stack rebuilds the layout into a vertical template for portrait targets:
// logo, headline, packshot and subhead flow downward from below the top safe
// zone, with compliance elements pinned near the bottom.
func stack(l *creative.Layout) *creative.Layout {
	idx := elementIndex(l)
	out := l.Elements[:0:0]

	if bg, ok := idx[creative.TypeBackground]; ok {
		out = append(out, bg)
	}

	currentY := 12.0

	if logo, ok := idx[creative.TypeLogo]; ok {
		logo.X, logo.Y, logo.Width, logo.Height = 10, currentY, 20, 8
		out = append(out, logo)
		currentY += 10
	}

	if h, ok := idx[creative.TypeHeadline]; ok {
		h.X, h.Y, h.Width, h.Height = 10, currentY, 80, 12
		out = append(out, h)
		currentY += 14
	}

	if ps, ok := idx[creative.TypePackshot]; ok {
		ps.X, ps.Y, ps.Width, ps.Height = 15, currentY, 70, 40
		out = append(out, ps)
		currentY += 42
	}

	if s, ok := idx[creative.TypeSubhead]; ok {
		s.X, s.Y, s.Width, s.Height = 10, currentY, 80, 8
		out = append(out, s)
	}

	if tag, ok := idx[creative.TypeTescoTag]; ok {
		tag.X, tag.Y, tag.Width, tag.Height = 5, 80, 30, 5
		out = append(out, tag)
	}

	if da, ok := idx[creative.TypeDrinkaware]; ok {
		da.X, da.Y, da.Width, da.Height = 35, 92, 30, 3
		out = append(out, da)
	}

	l.Elements = out
	return l
}

// cropCenter maps every positioned element through a centered crop window
// matched to the target aspect ratio. Elements in the cropped margin land
// outside [0,100] and are left there; downstream validation flags them.
func cropCenter(l *creative.Layout, source, target format.Config) *creative.Layout {
	sourceAR := source.AspectRatio
	targetAR := target.AspectRatio

	var offsetX, offsetY, scaleX, scaleY float64
	if sourceAR > targetAR {
		// Source is wider, crop the sides.
		visibleWidth := targetAR / sourceAR * 100
		offsetX = (100 - visibleWidth) / 2
		scaleX = 100 / visibleWidth
		scaleY = 1
	} else {
		// Source is taller, crop top and bottom.
		visibleHeight := sourceAR / targetAR * 100
		offsetY = (100 - visibleHeight) / 2
		scaleX = 1
		scaleY = 100 / visibleHeight
	}

	for i := range l.Elements {
		e := &l.Elements[i]
		if e.IsBackground() {
			continue
		}
		e.X = (e.X - offsetX) * scaleX
		e.Y = (e.Y - offsetY) * scaleY
		e.Width *= scaleX
		e.Height *= scaleY
	}
	return l
}

// ===== Post-processing =====

// applySafeZones clamps elements out of the target's reserved bands.
// Backgrounds and drinkaware lock-ups pass through.
func applySafeZones(l *creative.Layout, target format.Config) *creative.Layout {
	if !target.HasSafeZones() {
		return l
	}

	safeTop := target.SafeZoneTopPct
	safeBottom := 100 - target.SafeZoneBottomPct

	for i := range l.Elements {
		e := &l.Elements[i]
		if e.IsBackground() || e.Type == creative.TypeDrinkaware {
			continue
		}

		if e.Y < safeTop {
			e.Y = safeTop
		}
		if e.Y+e.Height > safeBottom {
			e.Y = safeBottom - e.Height
		}
	}
	return l
}

// ensureTextReadability raises font sizes to the target's minimums, derived
// from canvas height. Sizes are only ever raised.
func ensureTextReadability(l *creative.Layout, target format.Config) *creative.Layout {
	minHeadline := int(math.Max(20, math.Round(float64(target.Height)*0.025)))
	minSubhead := int(math.Max(14, math.Round(float64(target.Height)*0.015)))

	for i := range l.Elements {
		e := &l.Elements[i]
		switch e.Type {
		case creative.TypeHeadline:
			if e.FontSize < minHeadline {
				e.FontSize = minHeadline
			}
		case creative.TypeSubhead:
			if e.FontSize < minSubhead {
				e.FontSize = minSubhead
			}
		}
	}
	return l
}
