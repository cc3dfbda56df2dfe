package brand

import (
	"fmt"

	"github.com/adproof/adproof/pkg/color"
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/geo"
	"github.com/adproof/adproof/pkg/rules"
)

// ValidateBrandIdentity checks color palette consistency, logo sizing and
// logo clear space. All findings are warnings.
func (g *Guardian) ValidateBrandIdentity(l *creative.Layout, brandColors []string, canvas string) ([]rules.Issue, error) {
	canvasW, canvasH, err := creative.ParseCanvas(canvas)
	if err != nil {
		return nil, err
	}

	var issues []rules.Issue
	issues = append(issues, checkColorPalette(l, brandColors)...)
	issues = append(issues, checkLogoSize(l)...)
	issues = append(issues, checkLogoClearSpace(l, canvasW, canvasH)...)
	return issues, nil
}

// checkColorPalette flags colored elements whose color is neither in the
// brand palette nor a neutral. Backgrounds are exempt; an empty palette
// disables the check.
func checkColorPalette(l *creative.Layout, brandColors []string) []rules.Issue {
	if len(brandColors) == 0 {
		return nil
	}

	var issues []rules.Issue
	for i := range l.Elements {
		e := &l.Elements[i]
		if e.Color == "" || e.IsBackground() {
			continue
		}
		if color.InPalette(e.Color, brandColors) || color.IsNeutral(e.Color) {
			continue
		}

		closest := color.Nearest(e.Color, brandColors)
		issues = append(issues, issue(
			rules.SeverityWarn,
			"BRAND_COLOR_MISMATCH",
			fmt.Sprintf("Color %s in %s is not in brand palette", e.Color, e.Type),
			fmt.Sprintf("Consider using brand color %s", closest),
			e.Type,
		))
	}
	return issues
}

func checkLogoSize(l *creative.Layout) []rules.Issue {
	var issues []rules.Issue
	for _, logo := range l.OfType(creative.TypeLogo) {
		if logo.Width < LogoMinWidthPct || logo.Height < LogoMinHeightPct {
			issues = append(issues, issue(
				rules.SeverityWarn,
				"LOGO_TOO_SMALL",
				fmt.Sprintf("Logo is too small (%g%%x%g%%). Minimum %g%% width recommended.", logo.Width, logo.Height, LogoMinWidthPct),
				"Increase logo size for better visibility",
				creative.TypeLogo,
			))
		}
		if logo.Width > LogoMaxWidthPct || logo.Height > LogoMaxHeightPct {
			issues = append(issues, issue(
				rules.SeverityWarn,
				"LOGO_TOO_LARGE",
				fmt.Sprintf("Logo may be too large (%g%%x%g%%)", logo.Width, logo.Height),
				"Consider reducing logo size for better balance",
				creative.TypeLogo,
			))
		}
	}
	return issues
}

// checkLogoClearSpace enforces a clear margin of 2% of the canvas width
// around every logo.
func checkLogoClearSpace(l *creative.Layout, canvasW, canvasH int) []rules.Issue {
	clearSpace := int(float64(canvasW) * LogoClearSpacePct / 100)

	var issues []rules.Issue
	for _, logo := range l.OfType(creative.TypeLogo) {
		logoBox := logo.Box(canvasW, canvasH)

		for i := range l.Elements {
			other := &l.Elements[i]
			if other.Type == creative.TypeLogo || other.IsBackground() {
				continue
			}
			if geo.TooClose(logoBox, other.Box(canvasW, canvasH), clearSpace) {
				issues = append(issues, issue(
					rules.SeverityWarn,
					"LOGO_CLEAR_SPACE",
					fmt.Sprintf("Logo needs more clear space from %s", other.Type),
					"Increase spacing between logo and other elements",
					other.Type,
				))
			}
		}
	}
	return issues
}

// ValidateVisualQuality checks text contrast, visual hierarchy, element
// spacing and layout balance.
func (g *Guardian) ValidateVisualQuality(l *creative.Layout, canvas string) ([]rules.Issue, error) {
	canvasW, canvasH, err := creative.ParseCanvas(canvas)
	if err != nil {
		return nil, err
	}

	var issues []rules.Issue
	issues = append(issues, checkTextContrast(l)...)
	issues = append(issues, checkHierarchy(l)...)
	issues = append(issues, checkSpacing(l, canvasW, canvasH)...)
	issues = append(issues, checkBalance(l, canvasW, canvasH)...)
	return issues, nil
}

// checkTextContrast is the guardian's contrast pass. Unlike the rule engine
// it assumes black for uncolored text so generated drafts are checked too.
func checkTextContrast(l *creative.Layout) []rules.Issue {
	bg := l.BackgroundColor()

	var issues []rules.Issue
	for i := range l.Elements {
		e := &l.Elements[i]
		if !e.IsText() {
			continue
		}

		textColor := e.Color
		if textColor == "" {
			textColor = "#000000"
		}

		ratio, err := color.ContrastRatio(textColor, bg)
		if err != nil {
			continue
		}
		required := color.ContrastThreshold(color.IsLargeText(e.FontSize))
		if ratio < required {
			suggested := color.SuggestedTextColor(bg)
			issues = append(issues, issue(
				rules.SeverityHard,
				"WCAG_CONTRAST_FAIL",
				fmt.Sprintf("Text contrast ratio %.2f:1 fails WCAG AA (need %.1f:1)", ratio, required),
				fmt.Sprintf("Change text to %s", suggested),
				e.Type,
			))
		}
	}
	return issues
}

// checkHierarchy verifies the headline reads larger than the subhead.
func checkHierarchy(l *creative.Layout) []rules.Issue {
	headline := l.First(creative.TypeHeadline)
	subhead := l.First(creative.TypeSubhead)
	if headline == nil || subhead == nil {
		return nil
	}

	hSize := headline.FontSize
	if hSize == 0 {
		hSize = defaultHeadlineSize
	}
	sSize := subhead.FontSize
	if sSize == 0 {
		sSize = defaultSubheadSize
	}

	var issues []rules.Issue
	if sSize >= hSize {
		issues = append(issues, issue(
			rules.SeverityWarn,
			"HIERARCHY_VIOLATION",
			"Subhead should be smaller than headline",
			fmt.Sprintf("Reduce subhead font size below %dpx", hSize),
			creative.TypeSubhead,
		))
	}

	ratio := float64(hSize) / float64(sSize)
	if ratio < HierarchyMinRatio {
		issues = append(issues, issue(
			rules.SeverityWarn,
			"WEAK_HIERARCHY",
			fmt.Sprintf("Headline to subhead ratio (%.1fx) is too small", ratio),
			"Increase headline size or decrease subhead for better hierarchy",
			creative.TypeHeadline,
		))
	}
	return issues
}

func checkSpacing(l *creative.Layout, canvasW, canvasH int) []rules.Issue {
	var positioned []*creative.Element
	for i := range l.Elements {
		if l.Elements[i].Positioned() {
			positioned = append(positioned, &l.Elements[i])
		}
	}

	var issues []rules.Issue
	for i, a := range positioned {
		boxA := a.Box(canvasW, canvasH)
		for _, b := range positioned[i+1:] {
			if geo.Overlap(boxA, b.Box(canvasW, canvasH)) {
				issues = append(issues, issue(
					rules.SeverityWarn,
					"ELEMENT_OVERLAP",
					fmt.Sprintf("%s overlaps with %s", a.Type, b.Type),
					"Adjust element positions to prevent overlap",
					a.Type,
				))
			}
		}
	}
	return issues
}

// checkBalance computes the area-weighted centroid of all positioned
// elements and flags layouts whose visual weight sits far off center.
func checkBalance(l *creative.Layout, canvasW, canvasH int) []rules.Issue {
	var totalWeight, weightedX, weightedY float64

	for i := range l.Elements {
		e := &l.Elements[i]
		if !e.Positioned() {
			continue
		}
		box := e.Box(canvasW, canvasH)
		weight := float64(box.Area())
		weightedX += box.CenterX() * weight
		weightedY += box.CenterY() * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return nil
	}

	balanceX := weightedX / totalWeight / float64(canvasW) * 100
	balanceY := weightedY / totalWeight / float64(canvasH) * 100

	var issues []rules.Issue
	if balanceX < 25 || balanceX > 75 {
		issues = append(issues, issue(
			rules.SeverityWarn,
			"LAYOUT_UNBALANCED_H",
			fmt.Sprintf("Layout is horizontally unbalanced (center at %.0f%%)", balanceX),
			"Consider redistributing elements for better balance",
			"",
		))
	}
	if balanceY < 20 || balanceY > 80 {
		issues = append(issues, issue(
			rules.SeverityWarn,
			"LAYOUT_UNBALANCED_V",
			fmt.Sprintf("Layout may be vertically unbalanced (center at %.0f%%)", balanceY),
			"Consider adjusting vertical element distribution",
			"",
		))
	}
	return issues
}
