package rules

import (
	"fmt"
	"strings"

	"github.com/adproof/adproof/pkg/color"
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/geo"
)

// ===== Configuration =====

// AllowedTescoTags are the only permitted tesco_tag texts, compared
// case-sensitively after trimming whitespace.
var AllowedTescoTags = []string{
	"Only at Tesco",
	"Available at Tesco",
	"Selected stores. While stocks last",
}

// Safe zones for the stories channel, in pixels at the 1080x1920 reference.
const (
	StoriesSafeZoneTopPx    = 200
	StoriesSafeZoneBottomPx = 250
)

// Minimum reference font sizes per channel. Channels without an entry use
// the default.
const (
	MinFontSizeDefault = 20
	MinFontSizeSays    = 12
)

// Drinkaware lock-up constraints.
const DrinkawareMinHeightPx = 20

var drinkawareAllowedColors = map[string]bool{
	"#000000": true,
	"#FFFFFF": true,
	"#000":    true,
	"#FFF":    true,
}

// CTA gap requirements in pixels.
const (
	CTAGapDoubleDensityPx = 24
	CTAGapSingleDensityPx = 12
)

// ctaKeywords mark headline/subhead text as call-to-action copy. This is a
// substring heuristic, not a structural CTA element.
var ctaKeywords = []string{"shop", "buy", "get", "discover"}

// protectedSafeZoneTypes must stay clear of the stories safe zones.
var protectedSafeZoneTypes = map[string]bool{
	creative.TypeHeadline:  true,
	creative.TypeSubhead:   true,
	creative.TypeLogo:      true,
	creative.TypeValueTile: true,
	creative.TypeTescoTag:  true,
}

// MinFontSize returns the minimum reference font size for a channel.
func MinFontSize(channel string) int {
	if channel == "says" {
		return MinFontSizeSays
	}
	return MinFontSizeDefault
}

// Options configures a validation run.
type Options struct {
	// Canvas is the "WxH" pixel size the layout renders at.
	Canvas string
	// Channel is the distribution channel (facebook, instagram, stories,
	// in_store, says). Safe zones apply only to stories.
	Channel string
	// Alcohol marks the campaign as an alcohol campaign, which requires a
	// drinkaware lock-up.
	Alcohol bool
	// SingleDensity relaxes the CTA gap from 24px to 12px.
	SingleDensity bool
}

// ===== Element rules =====

func checkTescoTag(l *creative.Layout) []Issue {
	var issues []Issue
	for _, tag := range l.OfType(creative.TypeTescoTag) {
		text := strings.TrimSpace(tag.Text)
		allowed := false
		for _, t := range AllowedTescoTags {
			if text == t {
				allowed = true
				break
			}
		}
		if !allowed {
			issues = append(issues, Issue{
				Severity:      SeverityHard,
				Code:          "TESCO_TAG_INVALID",
				Message:       fmt.Sprintf("Tesco tag text %q is not allowed. Must be one of: %s", text, strings.Join(AllowedTescoTags, ", ")),
				FixSuggestion: fmt.Sprintf("Change text to %q", AllowedTescoTags[1]),
				ElementType:   creative.TypeTescoTag,
			})
		}
	}
	return issues
}

func checkDrinkaware(l *creative.Layout, alcohol bool, canvasH int) []Issue {
	if !alcohol {
		return nil
	}

	da := l.First(creative.TypeDrinkaware)
	if da == nil {
		return []Issue{{
			Severity:      SeverityHard,
			Code:          "DRINKAWARE_MISSING",
			Message:       "Drinkaware lock-up is required for alcohol campaigns",
			FixSuggestion: "Add drinkaware element with black or white color",
		}}
	}

	var issues []Issue
	if !drinkawareAllowedColors[strings.ToUpper(da.Color)] {
		issues = append(issues, Issue{
			Severity:      SeverityHard,
			Code:          "DRINKAWARE_COLOR_INVALID",
			Message:       fmt.Sprintf("Drinkaware color must be black (#000000) or white (#FFFFFF), got %s", strings.ToUpper(da.Color)),
			FixSuggestion: "Change drinkaware color to #000000 or #FFFFFF",
			ElementType:   creative.TypeDrinkaware,
		})
	}

	heightPx := int(da.Height / 100 * float64(canvasH))
	if heightPx < DrinkawareMinHeightPx {
		issues = append(issues, Issue{
			Severity:      SeverityHard,
			Code:          "DRINKAWARE_TOO_SMALL",
			Message:       fmt.Sprintf("Drinkaware height must be at least %dpx, currently %dpx", DrinkawareMinHeightPx, heightPx),
			FixSuggestion: fmt.Sprintf("Increase drinkaware height to at least %.1f%%", float64(DrinkawareMinHeightPx)/float64(canvasH)*100),
			ElementType:   creative.TypeDrinkaware,
		})
	}
	return issues
}

func checkValueTile(l *creative.Layout, canvasW, canvasH int) []Issue {
	var issues []Issue
	for _, tile := range l.OfType(creative.TypeValueTile) {
		tileBox := tile.Box(canvasW, canvasH)

		for i := range l.Elements {
			other := &l.Elements[i]
			if other.Type == creative.TypeValueTile || other.Type == creative.TypeBackground {
				continue
			}
			if geo.Overlap(tileBox, other.Box(canvasW, canvasH)) {
				issues = append(issues, Issue{
					Severity:      SeverityHard,
					Code:          "VALUE_TILE_OVERLAP",
					Message:       fmt.Sprintf("Value tile overlaps with %s element", other.Type),
					FixSuggestion: fmt.Sprintf("Move %s element away from value tile", other.Type),
					ElementType:   other.Type,
				})
			}
		}
	}
	return issues
}

func checkSafeZones(l *creative.Layout, canvasW, canvasH int, channel string) []Issue {
	if channel != "stories" {
		return nil
	}

	var issues []Issue
	bottomZoneStart := canvasH - StoriesSafeZoneBottomPx

	for i := range l.Elements {
		e := &l.Elements[i]
		if !protectedSafeZoneTypes[e.Type] {
			continue
		}

		box := e.Box(canvasW, canvasH)
		snapshot := &BoundingBox{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}

		if box.MinY < StoriesSafeZoneTopPx {
			issues = append(issues, Issue{
				Severity:      SeverityHard,
				Code:          "SAFE_ZONE_TOP_VIOLATION",
				Message:       fmt.Sprintf("%s element is in top safe zone (top %dpx)", e.Type, StoriesSafeZoneTopPx),
				FixSuggestion: fmt.Sprintf("Move element below %dpx from top", StoriesSafeZoneTopPx),
				ElementType:   e.Type,
				BoundingBox:   snapshot,
			})
		}
		if box.MaxY > bottomZoneStart {
			issues = append(issues, Issue{
				Severity:      SeverityHard,
				Code:          "SAFE_ZONE_BOTTOM_VIOLATION",
				Message:       fmt.Sprintf("%s element is in bottom safe zone (bottom %dpx)", e.Type, StoriesSafeZoneBottomPx),
				FixSuggestion: fmt.Sprintf("Move element above %dpx from bottom", StoriesSafeZoneBottomPx),
				ElementType:   e.Type,
				BoundingBox:   snapshot,
			})
		}
	}
	return issues
}

// checkFontSize compares the element's reference font size against the
// channel minimum. Sizes are defined at the 1080x1920 reference canvas, so
// the comparison is canvas-independent.
func checkFontSize(l *creative.Layout, channel string) []Issue {
	minSize := MinFontSize(channel)

	var issues []Issue
	for i := range l.Elements {
		e := &l.Elements[i]
		if !e.IsText() {
			continue
		}
		if e.FontSize < minSize {
			issues = append(issues, Issue{
				Severity:      SeverityHard,
				Code:          "FONT_SIZE_TOO_SMALL",
				Message:       fmt.Sprintf("%s font size (%dpx) is below minimum (%dpx)", e.Type, e.FontSize, minSize),
				FixSuggestion: fmt.Sprintf("Increase font size to at least %dpx", minSize),
				ElementType:   e.Type,
			})
		}
	}
	return issues
}

func checkContrast(l *creative.Layout) []Issue {
	bg := l.BackgroundColor()

	var issues []Issue
	for i := range l.Elements {
		e := &l.Elements[i]
		if !e.IsText() || e.Color == "" {
			continue
		}

		large := color.IsLargeText(e.FontSize)
		ok, err := color.MeetsWCAGAA(e.Color, bg, large)
		if err != nil {
			continue
		}
		if !ok {
			ratio, _ := color.ContrastRatio(e.Color, bg)
			issues = append(issues, Issue{
				Severity:      SeverityHard,
				Code:          "WCAG_CONTRAST_FAIL",
				Message:       fmt.Sprintf("%s contrast ratio (%.2f:1) is below WCAG AA threshold (%.1f:1)", e.Type, ratio, color.ContrastThreshold(large)),
				FixSuggestion: fmt.Sprintf("Change text color to improve contrast with background %s", bg),
				ElementType:   e.Type,
			})
		}
	}
	return issues
}

func checkCTAGap(l *creative.Layout, canvasW, canvasH int, singleDensity bool) []Issue {
	requiredGap := CTAGapDoubleDensityPx
	if singleDensity {
		requiredGap = CTAGapSingleDensityPx
	}

	var ctas []*creative.Element
	for i := range l.Elements {
		e := &l.Elements[i]
		if e.IsText() && isCTAText(e.Text) {
			ctas = append(ctas, e)
		}
	}

	var issues []Issue
	for _, ps := range l.OfType(creative.TypePackshot) {
		psBox := ps.Box(canvasW, canvasH)
		for _, cta := range ctas {
			gap := geo.MinGap(psBox, cta.Box(canvasW, canvasH))
			if gap < requiredGap {
				issues = append(issues, Issue{
					Severity:      SeverityHard,
					Code:          "CTA_SAFE_GAP_VIOLATION",
					Message:       fmt.Sprintf("Gap between packshot and CTA (%dpx) is less than required (%dpx)", gap, requiredGap),
					FixSuggestion: fmt.Sprintf("Increase gap to at least %dpx", requiredGap),
				})
			}
		}
	}
	return issues
}

func isCTAText(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range ctaKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// checkPeople warns once when photography is present. Image analysis is out
// of reach here, so any packshot triggers the consent reminder.
func checkPeople(l *creative.Layout) []Issue {
	if !l.Has(creative.TypePackshot) {
		return nil
	}
	return []Issue{{
		Severity:      SeverityWarn,
		Code:          "PEOPLE_IN_PHOTOGRAPHY",
		Message:       "If packshot contains people, ensure model consent is obtained",
		FixSuggestion: "Verify model consent documentation is on file",
		ElementType:   creative.TypePackshot,
	}}
}

// ===== Aggregation =====

// Validate runs the full rule set against a layout. Issues are deduplicated
// by code with the first finding kept, and OK reflects hard failures only.
func Validate(l *creative.Layout, opts Options) (*Result, error) {
	if opts.Canvas == "" {
		opts.Canvas = "1080x1920"
	}
	canvasW, canvasH, err := creative.ParseCanvas(opts.Canvas)
	if err != nil {
		return nil, err
	}

	headline := l.HeadlineText()
	subhead := l.SubheadText()

	var issues []Issue
	var checked []string

	checked = append(checked, "TESCO_TAG")
	issues = append(issues, checkTescoTag(l)...)

	checked = append(checked, "DRINKAWARE")
	issues = append(issues, checkDrinkaware(l, opts.Alcohol, canvasH)...)

	checked = append(checked, CopyRuleNames()...)
	issues = append(issues, CheckCopy(headline, subhead)...)

	checked = append(checked, "VALUE_TILE_POSITION")
	issues = append(issues, checkValueTile(l, canvasW, canvasH)...)

	checked = append(checked, "SOCIAL_SAFE_ZONES")
	issues = append(issues, checkSafeZones(l, canvasW, canvasH, opts.Channel)...)

	checked = append(checked, "MINIMUM_FONT_SIZE")
	issues = append(issues, checkFontSize(l, opts.Channel)...)

	checked = append(checked, "WCAG_CONTRAST")
	issues = append(issues, checkContrast(l)...)

	checked = append(checked, "CTA_SAFE_GAP")
	issues = append(issues, checkCTAGap(l, canvasW, canvasH, opts.SingleDensity)...)

	checked = append(checked, "PEOPLE_IN_PHOTOGRAPHY")
	issues = append(issues, checkPeople(l)...)

	issues = dedupeByCode(issues)

	result := &Result{
		OK:           true,
		Issues:       issues,
		CheckedRules: checked,
	}
	result.OK = result.HardCount() == 0
	return result, nil
}

// QuickCheck validates copy and a tesco tag text without a full layout.
// Useful before any layout exists. An alcohol campaign gets an advisory
// reminder that a drinkaware lock-up will be required.
func QuickCheck(headline, subhead, tescoTagText string, alcohol bool) *Result {
	issues := CheckCopy(headline, subhead)

	tag := &creative.Layout{Elements: []creative.Element{
		{Type: creative.TypeTescoTag, Text: tescoTagText},
	}}
	issues = append(issues, checkTescoTag(tag)...)

	if alcohol {
		issues = append(issues, Issue{
			Severity:      SeverityWarn,
			Code:          "DRINKAWARE_REQUIRED",
			Message:       "Drinkaware lock-up will be required for this alcohol campaign",
			FixSuggestion: "Ensure drinkaware element is added with black or white color",
		})
	}

	checked := append([]string{"TESCO_TAG", "DRINKAWARE"}, CopyRuleNames()...)
	result := &Result{
		OK:           true,
		Issues:       issues,
		CheckedRules: checked,
	}
	result.OK = result.HardCount() == 0
	return result
}
