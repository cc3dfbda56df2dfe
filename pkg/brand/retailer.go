package brand

import (
	"fmt"
	"strings"

	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/rules"
)

// ValidateRetailerCompliance applies retailer-specific rules: safe zones on
// the stories channel, required elements, and alcohol compliance.
func (g *Guardian) ValidateRetailerCompliance(l *creative.Layout, retailer string, alcohol bool, channel, canvas string) ([]rules.Issue, error) {
	r := g.Retailer(retailer)
	_, canvasH, err := creative.ParseCanvas(canvas)
	if err != nil {
		return nil, err
	}

	var issues []rules.Issue
	if channel == "stories" {
		issues = append(issues, checkRetailerSafeZones(l, r, canvasH)...)
	}
	issues = append(issues, checkRequiredElements(l, r, alcohol)...)
	if alcohol {
		issues = append(issues, checkAlcoholCompliance(l, r, canvasH)...)
	}
	return issues, nil
}

// checkRetailerSafeZones applies the retailer's percentage safe zones.
// Backgrounds and drinkaware lock-ups are exempt; the lock-up is expected
// near the canvas edge.
func checkRetailerSafeZones(l *creative.Layout, r RetailerRules, canvasH int) []rules.Issue {
	safeTopPx := float64(canvasH) * r.SafeZoneTopPct / 100
	safeBottomPx := float64(canvasH) * (100 - r.SafeZoneBottomPct) / 100

	var issues []rules.Issue
	for i := range l.Elements {
		e := &l.Elements[i]
		if e.IsBackground() || e.Type == creative.TypeDrinkaware {
			continue
		}

		yPx := e.Y / 100 * float64(canvasH)
		hPx := e.Height / 100 * float64(canvasH)

		if yPx < safeTopPx {
			issues = append(issues, issue(
				rules.SeverityHard,
				"SAFE_ZONE_TOP_VIOLATION",
				fmt.Sprintf("%s is in top safe zone (platform UI area)", e.Type),
				fmt.Sprintf("Move element below %.1f%% from top", r.SafeZoneTopPct),
				e.Type,
			))
		}
		if yPx+hPx > safeBottomPx {
			issues = append(issues, issue(
				rules.SeverityHard,
				"SAFE_ZONE_BOTTOM_VIOLATION",
				fmt.Sprintf("%s extends into bottom safe zone", e.Type),
				fmt.Sprintf("Keep element above %.1f%% from top", 100-r.SafeZoneBottomPct),
				e.Type,
			))
		}
	}
	return issues
}

func checkRequiredElements(l *creative.Layout, r RetailerRules, alcohol bool) []rules.Issue {
	var issues []rules.Issue

	if r.RequiresTescoTag && !l.Has(creative.TypeTescoTag) {
		issues = append(issues, issue(
			rules.SeverityHard,
			"MISSING_TESCO_TAG",
			"Tesco tag is required for this retailer",
			"Add 'Available at Tesco' tag element",
			"",
		))
	}

	if alcohol && !l.Has(creative.TypeDrinkaware) {
		issues = append(issues, issue(
			rules.SeverityHard,
			"DRINKAWARE_MISSING",
			"Drinkaware lock-up is required for alcohol campaigns",
			"Add drinkaware element with black or white color",
			"",
		))
	}

	return issues
}

func checkAlcoholCompliance(l *creative.Layout, r RetailerRules, canvasH int) []rules.Issue {
	da := l.First(creative.TypeDrinkaware)
	if da == nil {
		return nil
	}

	allowed := r.DrinkawareColors
	if len(allowed) == 0 {
		allowed = []string{"#000000", "#FFFFFF"}
	}
	colorOK := false
	for _, c := range allowed {
		if strings.EqualFold(da.Color, c) {
			colorOK = true
			break
		}
	}

	var issues []rules.Issue
	if !colorOK {
		issues = append(issues, issue(
			rules.SeverityHard,
			"DRINKAWARE_COLOR_INVALID",
			fmt.Sprintf("Drinkaware color must be black or white, got %s", strings.ToUpper(da.Color)),
			"Change drinkaware color to #000000 or #FFFFFF",
			creative.TypeDrinkaware,
		))
	}

	minHeight := r.DrinkawareMinHeightPx
	if minHeight == 0 {
		minHeight = 20
	}
	heightPx := da.Height / 100 * float64(canvasH)
	if heightPx < float64(minHeight) {
		issues = append(issues, issue(
			rules.SeverityHard,
			"DRINKAWARE_TOO_SMALL",
			fmt.Sprintf("Drinkaware height must be at least %dpx, currently %.0fpx", minHeight, heightPx),
			"Increase drinkaware height",
			creative.TypeDrinkaware,
		))
	}
	return issues
}
