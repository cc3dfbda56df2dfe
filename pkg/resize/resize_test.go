package resize

import (
	"math"
	"testing"

	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/format"
)

func registry(t *testing.T) *format.Registry {
	t.Helper()
	return format.Builtin()
}

func cfg(t *testing.T, r *format.Registry, key string) format.Config {
	t.Helper()
	c, ok := r.Lookup(key)
	if !ok {
		t.Fatalf("format %s missing", key)
	}
	return c
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []string{"", "scale_fit", "reflow", "crop_center", "stack", "side_by_side"} {
		if _, err := ParseStrategy(s); err != nil {
			t.Errorf("ParseStrategy(%q): %v", s, err)
		}
	}
	if _, err := ParseStrategy("shrink"); err == nil {
		t.Error("unknown strategy should fail")
	}
}

func TestDetermineStrategy(t *testing.T) {
	r := registry(t)

	tests := []struct {
		source, target string
		want           Strategy
	}{
		{"1080x1920", "1080x1080", StrategyScaleFit},  // portrait to square
		{"1080x1920", "1200x628", StrategyReflow},     // portrait to landscape
		{"1200x628", "1080x1920", StrategyStack},      // landscape to portrait
		{"1080x1920", "160x600", StrategyReflow},      // extreme skyscraper
		{"1080x1080", "728x90", StrategyReflow},       // extreme leaderboard
		{"1080x1920", "1080x1920", StrategyScaleFit},  // identical ratio
		{"300x250", "1200x628", StrategyScaleFit},     // landscape to landscape
		{"2480x3508", "1080x1920", StrategyScaleFit},  // similar portraits
	}

	for _, tt := range tests {
		got := DetermineStrategy(cfg(t, r, tt.source), cfg(t, r, tt.target))
		if got != tt.want {
			t.Errorf("DetermineStrategy(%s, %s) = %s, want %s", tt.source, tt.target, got, tt.want)
		}
	}
}

func storyLayout() *creative.Layout {
	return &creative.Layout{
		ID:    "src",
		Score: 0.9,
		Elements: []creative.Element{
			{Type: creative.TypeBackground, Color: "#FFFFFF"},
			{Type: creative.TypePackshot, Asset: "a", X: 20, Y: 25, Width: 60, Height: 35},
			{Type: creative.TypeHeadline, Text: "New Product", X: 10, Y: 50, Width: 80, Height: 10, FontSize: 32, Color: "#000000"},
			{Type: creative.TypeSubhead, Text: "Fresh taste", X: 10, Y: 62, Width: 80, Height: 6, FontSize: 20, Color: "#000000"},
			{Type: creative.TypeLogo, Asset: "l", X: 40, Y: 15, Width: 20, Height: 6},
			{Type: creative.TypeTescoTag, Text: "Available at Tesco", X: 5, Y: 75, Width: 25, Height: 5},
			{Type: creative.TypeDrinkaware, Color: "#000000", X: 5, Y: 95, Width: 30, Height: 2},
		},
	}
}

func TestAdaptIdentity(t *testing.T) {
	rz := New(registry(t))
	src := storyLayout()

	out, err := rz.Adapt(src, "1080x1920", "1080x1920", "")
	if err != nil {
		t.Fatal(err)
	}
	if out.ID != "src" {
		t.Errorf("identity adapt changed id to %s", out.ID)
	}
	if len(out.Elements) != len(src.Elements) {
		t.Error("identity adapt changed elements")
	}

	out.Elements[1].X = 99
	if src.Elements[1].X == 99 {
		t.Error("identity adapt must return a clone")
	}
}

func TestAdaptDoesNotMutateSource(t *testing.T) {
	rz := New(registry(t))
	src := storyLayout()
	before := src.Clone()

	if _, err := rz.Adapt(src, "1080x1920", "1200x628", ""); err != nil {
		t.Fatal(err)
	}

	for i := range before.Elements {
		if src.Elements[i] != before.Elements[i] {
			t.Fatalf("source element %d mutated: %+v", i, src.Elements[i])
		}
	}
}

func TestScaleFit(t *testing.T) {
	rz := New(registry(t))
	src := &creative.Layout{
		ID:    "sf",
		Score: 0.9,
		Elements: []creative.Element{
			{Type: creative.TypeBackground, Color: "#FFFFFF"},
			{Type: creative.TypeHeadline, Text: "Hi", X: 10, Y: 50, Width: 80, Height: 10, FontSize: 64, Color: "#000000"},
		},
	}

	out, err := rz.Adapt(src, "1080x1920", "1080x1080", "")
	if err != nil {
		t.Fatal(err)
	}
	if out.ID != "sf_1080x1080" {
		t.Errorf("id = %s", out.ID)
	}

	// Uniform scale is 1080/1920 = 0.5625; horizontal offset centers the
	// narrowed content at 21.875%.
	h := out.First(creative.TypeHeadline)
	eps := 1e-9
	if math.Abs(h.X-27.5) > eps || math.Abs(h.Y-28.125) > eps {
		t.Errorf("position = (%v, %v)", h.X, h.Y)
	}
	if math.Abs(h.Width-45) > eps || math.Abs(h.Height-5.625) > eps {
		t.Errorf("size = (%v, %v)", h.Width, h.Height)
	}

	// Background passes through untouched.
	bg := out.First(creative.TypeBackground)
	if bg == nil || bg.Color != "#FFFFFF" {
		t.Error("background lost")
	}
}

func TestReflowTemplate(t *testing.T) {
	rz := New(registry(t))

	out, err := rz.Adapt(storyLayout(), "1080x1920", "1200x628", "")
	if err != nil {
		t.Fatal(err)
	}

	ps := out.First(creative.TypePackshot)
	if ps == nil || ps.X != 5 || ps.Y != 10 || ps.Width != 35 || ps.Height != 60 {
		t.Errorf("packshot = %+v", ps)
	}

	h := out.First(creative.TypeHeadline)
	if h == nil || h.X != 45 || h.Y != 15 {
		t.Errorf("headline = %+v", h)
	}
	// 32 * 0.7 truncates to 22, above the landscape readability floor.
	if h.FontSize != 22 {
		t.Errorf("headline font = %d, want 22", h.FontSize)
	}

	s := out.First(creative.TypeSubhead)
	if s == nil || s.X != 45 || s.Y != 40 {
		t.Errorf("subhead = %+v", s)
	}
	// 20 * 0.7 = 14, raised to the 14px subhead floor exactly.
	if s.FontSize != 14 {
		t.Errorf("subhead font = %d, want 14", s.FontSize)
	}

	tag := out.First(creative.TypeTescoTag)
	if tag == nil || tag.X != 70 || tag.Y != 85 || tag.Width != 25 || tag.Height != 10 {
		t.Errorf("tesco tag = %+v", tag)
	}
	da := out.First(creative.TypeDrinkaware)
	if da == nil || da.X != 5 || da.Y != 85 {
		t.Errorf("drinkaware = %+v", da)
	}
	if tag.Text != "Available at Tesco" {
		t.Error("element content must survive the template")
	}
}

func TestReflowOmitsAbsentTypes(t *testing.T) {
	rz := New(registry(t))
	src := &creative.Layout{
		ID:    "sparse",
		Score: 0.9,
		Elements: []creative.Element{
			{Type: creative.TypeBackground, Color: "#FFFFFF"},
			{Type: creative.TypeHeadline, Text: "Hi", X: 10, Y: 50, Width: 80, Height: 10, FontSize: 40},
		},
	}

	out, err := rz.Adapt(src, "1080x1920", "1200x628", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Elements) != 2 {
		t.Errorf("want background+headline only, got %d elements", len(out.Elements))
	}
	if out.Has(creative.TypePackshot) || out.Has(creative.TypeTescoTag) {
		t.Error("absent types must not be invented")
	}
}

func TestStackTemplate(t *testing.T) {
	rz := New(registry(t))
	src := storyLayout()

	out, err := rz.Adapt(src, "1200x628", "1080x1920", "")
	if err != nil {
		t.Fatal(err)
	}

	logo := out.First(creative.TypeLogo)
	if logo == nil || logo.X != 10 || logo.Y != 12 {
		t.Errorf("logo = %+v", logo)
	}
	h := out.First(creative.TypeHeadline)
	if h == nil || h.Y != 22 {
		t.Errorf("headline = %+v", h)
	}
	ps := out.First(creative.TypePackshot)
	if ps == nil || ps.Y != 36 || ps.Width != 70 {
		t.Errorf("packshot = %+v", ps)
	}
	s := out.First(creative.TypeSubhead)
	if s == nil || s.Y != 78 {
		t.Errorf("subhead = %+v", s)
	}
	tag := out.First(creative.TypeTescoTag)
	if tag == nil || tag.X != 5 || tag.Y != 80 {
		t.Errorf("tesco tag = %+v", tag)
	}
	da := out.First(creative.TypeDrinkaware)
	if da == nil || da.X != 35 || da.Y != 92 || da.Height != 3 {
		t.Errorf("drinkaware = %+v", da)
	}
}

func TestCropCenterClampsIntoSafeZones(t *testing.T) {
	rz := New(registry(t))
	src := &creative.Layout{
		ID:    "crop",
		Score: 0.9,
		Elements: []creative.Element{
			{Type: creative.TypeBackground, Color: "#FFFFFF"},
			{Type: creative.TypeHeadline, Text: "Top", X: 10, Y: 5, Width: 50, Height: 4, FontSize: 48, Color: "#000000"},
			{Type: creative.TypeSubhead, Text: "Bottom", X: 10, Y: 95, Width: 50, Height: 4, FontSize: 24, Color: "#000000"},
		},
	}

	out, err := rz.Adapt(src, "1080x1080", "1080x1920", StrategyCropCenter)
	if err != nil {
		t.Fatal(err)
	}

	// Story safe zones are top 10.4% and bottom 13%. Crop-center keeps the
	// vertical axis for a square-to-portrait conversion, so both elements
	// must be clamped.
	h := out.First(creative.TypeHeadline)
	if h.Y != 10.4 {
		t.Errorf("headline not clamped to top zone: y=%v", h.Y)
	}
	s := out.First(creative.TypeSubhead)
	if got := s.Y + s.Height; got > 87.0+1e-9 {
		t.Errorf("subhead extends into bottom zone: bottom=%v", got)
	}
}

func TestSafeZonePostCondition(t *testing.T) {
	rz := New(registry(t))
	src := storyLayout()

	// Any strategy into the story format must leave content clear of both
	// safe-zone bands.
	for _, strategy := range []Strategy{StrategyScaleFit, StrategyStack, StrategyCropCenter} {
		out, err := rz.Adapt(src, "1080x1080", "1080x1920", strategy)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range out.Elements {
			if e.IsBackground() || e.Type == creative.TypeDrinkaware {
				continue
			}
			if e.Y < 10.4-1e-9 {
				t.Errorf("%s: %s in top zone (y=%v)", strategy, e.Type, e.Y)
			}
			if e.Y+e.Height > 87.0+1e-9 {
				t.Errorf("%s: %s in bottom zone (bottom=%v)", strategy, e.Type, e.Y+e.Height)
			}
		}
	}
}

func TestTextReadabilityFloor(t *testing.T) {
	rz := New(registry(t))
	src := &creative.Layout{
		ID:    "tiny",
		Score: 0.9,
		Elements: []creative.Element{
			{Type: creative.TypeHeadline, Text: "Hi", X: 10, Y: 50, Width: 80, Height: 10, FontSize: 10},
			{Type: creative.TypeSubhead, Text: "Lo", X: 10, Y: 62, Width: 80, Height: 6, FontSize: 10},
		},
	}

	// For a 1080px-tall target the floors are 27px and 16px.
	out, err := rz.Adapt(src, "1080x1920", "1080x1080", "")
	if err != nil {
		t.Fatal(err)
	}
	if h := out.First(creative.TypeHeadline); h.FontSize != 27 {
		t.Errorf("headline font = %d, want 27", h.FontSize)
	}
	if s := out.First(creative.TypeSubhead); s.FontSize != 16 {
		t.Errorf("subhead font = %d, want 16", s.FontSize)
	}

	// Sizes already above the floor are never lowered.
	big := &creative.Layout{
		ID:    "big",
		Score: 0.9,
		Elements: []creative.Element{
			{Type: creative.TypeHeadline, Text: "Hi", X: 10, Y: 50, Width: 80, Height: 10, FontSize: 60},
		},
	}
	out, err = rz.Adapt(big, "1080x1920", "1080x1080", "")
	if err != nil {
		t.Fatal(err)
	}
	if h := out.First(creative.TypeHeadline); h.FontSize != 60 {
		t.Errorf("headline font = %d, want 60", h.FontSize)
	}
}

func TestBatchAdapt(t *testing.T) {
	rz := New(registry(t))
	src := storyLayout()

	targets := []string{"1080x1080", "1200x628", "300x250"}
	results, warnings := rz.BatchAdapt(src, "1080x1920", targets)

	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(results) != len(targets) {
		t.Fatalf("got %d results, want %d", len(results), len(targets))
	}
	for _, target := range targets {
		adapted, ok := results[target]
		if !ok {
			t.Errorf("missing result for %s", target)
			continue
		}
		if adapted.ID != "src_"+target {
			t.Errorf("id = %s", adapted.ID)
		}
	}
}

func TestAdaptRejectsBadStrategy(t *testing.T) {
	rz := New(registry(t))
	if _, err := rz.Adapt(storyLayout(), "1080x1920", "1080x1080", "shrink"); err == nil {
		t.Error("bad strategy must be rejected")
	}
}
