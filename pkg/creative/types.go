// Package creative defines the canonical layout model for retail-media
// creatives.
//
// A Layout is an ordered collection of Elements on a percentage-based canvas.
// Element is a discriminated union - check Type to determine which fields are
// meaningful:
//
//	background:  Color (fills the canvas, no geometry)
//	packshot:    Asset + geometry
//	logo:        Asset + geometry
//	headline:    Text, FontSize, Color, FontFamily + geometry
//	subhead:     Text, FontSize, Color, FontFamily + geometry
//	tesco_tag:   Text + geometry
//	value_tile:  optional Text + geometry
//	drinkaware:  Color (black/white lock-up) + geometry
//
// Geometry fields (X, Y, Width, Height) are percentages of the canvas in
// [0,100]; Unmarshal clamps out-of-range input so engine code can rely on
// the bound. X+Width and Y+Height may still exceed 100 (overflow is a rule
// violation, never a crash). Z is integer paint order, lower paints first.
// Font sizes are defined at the 1080x1920 reference canvas and must fall in
// [MinFontSize, MaxFontSize] when set.
//
// Layouts are treated as immutable values: every transform works on a Clone
// and callers' inputs are never mutated in place.
package creative

import (
	"github.com/adproof/adproof/pkg/geo"
)

// Element type discriminators.
const (
	TypeBackground = "background"
	TypePackshot   = "packshot"
	TypeLogo       = "logo"
	TypeHeadline   = "headline"
	TypeSubhead    = "subhead"
	TypeTescoTag   = "tesco_tag"
	TypeValueTile  = "value_tile"
	TypeDrinkaware = "drinkaware"
)

// ReferenceHeight is the canvas height (px) at which font sizes are defined.
const ReferenceHeight = 1920

// Bounds for a declared font size. Unmarshal rejects sizes outside this
// range; zero means the element carries no font size.
const (
	MinFontSize = 8
	MaxFontSize = 200
)

// Element is the unified element type for all serialization contexts.
type Element struct {
	Type string `json:"type" bson:"type"`

	// Geometry as canvas percentages. Meaningless for background elements.
	X      float64 `json:"x,omitempty" bson:"x,omitempty"`
	Y      float64 `json:"y,omitempty" bson:"y,omitempty"`
	Width  float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty"`
	Z      int     `json:"z,omitempty" bson:"z,omitempty"`

	// Kind-specific fields.
	Asset      string `json:"asset,omitempty" bson:"asset,omitempty"`
	Text       string `json:"text,omitempty" bson:"text,omitempty"`
	FontSize   int    `json:"font_size,omitempty" bson:"font_size,omitempty"`
	Color      string `json:"color,omitempty" bson:"color,omitempty"`
	FontFamily string `json:"font_family,omitempty" bson:"font_family,omitempty"`
}

// IsBackground returns true for background elements.
func (e *Element) IsBackground() bool { return e.Type == TypeBackground }

// Positioned reports whether the element carries canvas geometry.
// Background elements implicitly fill the canvas and have none.
func (e *Element) Positioned() bool { return e.Type != TypeBackground }

// IsText reports whether the element is a headline or subhead.
func (e *Element) IsText() bool { return e.Type == TypeHeadline || e.Type == TypeSubhead }

// Box converts the element's percentage geometry to a pixel box on the given
// canvas using floor semantics.
func (e *Element) Box(canvasW, canvasH int) geo.Box {
	return geo.PercentBox(e.X, e.Y, e.Width, e.Height, canvasW, canvasH)
}

// Layout is a complete creative layout.
type Layout struct {
	ID       string    `json:"id" bson:"id"`
	Score    float64   `json:"score" bson:"score"`
	Elements []Element `json:"elements" bson:"elements"`
}

// Clone returns a deep copy of the layout. Transforms operate on clones so
// the caller's layout is never aliased or mutated.
func (l *Layout) Clone() *Layout {
	out := &Layout{
		ID:       l.ID,
		Score:    l.Score,
		Elements: make([]Element, len(l.Elements)),
	}
	copy(out.Elements, l.Elements)
	return out
}

// First returns the first element of the given type, or nil.
func (l *Layout) First(elemType string) *Element {
	for i := range l.Elements {
		if l.Elements[i].Type == elemType {
			return &l.Elements[i]
		}
	}
	return nil
}

// OfType returns all elements of the given type, in storage order.
func (l *Layout) OfType(elemType string) []*Element {
	var out []*Element
	for i := range l.Elements {
		if l.Elements[i].Type == elemType {
			out = append(out, &l.Elements[i])
		}
	}
	return out
}

// Has reports whether the layout contains an element of the given type.
func (l *Layout) Has(elemType string) bool { return l.First(elemType) != nil }

// BackgroundColor returns the background element's color, defaulting to
// white when no background is present.
func (l *Layout) BackgroundColor() string {
	if bg := l.First(TypeBackground); bg != nil && bg.Color != "" {
		return bg.Color
	}
	return "#FFFFFF"
}

// HeadlineText returns the text of the last headline element, or "".
func (l *Layout) HeadlineText() string { return l.lastText(TypeHeadline) }

// SubheadText returns the text of the last subhead element, or "".
func (l *Layout) SubheadText() string { return l.lastText(TypeSubhead) }

func (l *Layout) lastText(elemType string) string {
	text := ""
	for i := range l.Elements {
		if l.Elements[i].Type == elemType {
			text = l.Elements[i].Text
		}
	}
	return text
}

// ScaleFontSize scales a reference font size to a target canvas height.
// The result is rounded and floored at 8px so text never disappears.
func ScaleFontSize(base, baseHeight, targetHeight int) int {
	if baseHeight <= 0 {
		baseHeight = ReferenceHeight
	}
	scaled := int(float64(base)*float64(targetHeight)/float64(baseHeight) + 0.5)
	if scaled < 8 {
		return 8
	}
	return scaled
}
