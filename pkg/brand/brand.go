// Package brand implements the brand guardian: identity, visual quality and
// retailer compliance checks layered on top of the core rule engine.
//
// The guardian reports through the same issue/severity vocabulary as the rule
// engine so findings from both can be merged, deduplicated and scored
// together.
package brand

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/adproof/adproof/pkg/errors"
	"github.com/adproof/adproof/pkg/rules"
)

// RetailerRules holds the per-retailer compliance parameters.
type RetailerRules struct {
	SafeZoneTopPct        float64  `toml:"safe_zone_top_pct"`
	SafeZoneBottomPct     float64  `toml:"safe_zone_bottom_pct"`
	MinFontSize           int      `toml:"min_font_size"`
	DrinkawareMinHeightPx int      `toml:"drinkaware_min_height"`
	DrinkawareColors      []string `toml:"drinkaware_colors"`
	RequiresTescoTag      bool     `toml:"requires_tesco_tag"`
	RequiresBrandTag      bool     `toml:"requires_brand_tag"`
}

// DefaultRetailer is used when a requested retailer is unknown.
const DefaultRetailer = "tesco"

func builtinRetailers() map[string]RetailerRules {
	return map[string]RetailerRules{
		"tesco": {
			SafeZoneTopPct:        10.4,
			SafeZoneBottomPct:     13.0,
			MinFontSize:           20,
			DrinkawareMinHeightPx: 20,
			DrinkawareColors:      []string{"#000000", "#FFFFFF"},
			RequiresTescoTag:      true,
		},
		"sainsburys": {
			SafeZoneTopPct:    8.0,
			SafeZoneBottomPct: 10.0,
			MinFontSize:       18,
			RequiresBrandTag:  true,
		},
		"asda": {
			SafeZoneTopPct:    10.0,
			SafeZoneBottomPct: 12.0,
			MinFontSize:       20,
		},
	}
}

// Brand-identity thresholds, expressed as canvas percentages.
const (
	LogoMinWidthPct     = 5.0
	LogoMinHeightPct    = 3.0
	LogoMaxWidthPct     = 30.0
	LogoMaxHeightPct    = 20.0
	LogoClearSpacePct   = 2.0
	HierarchyMinRatio   = 1.2
	defaultHeadlineSize = 48
	defaultSubheadSize  = 24
)

// Guardian evaluates brand identity and retailer compliance for layouts.
type Guardian struct {
	retailers map[string]RetailerRules
}

// NewGuardian returns a guardian with the builtin retailer table.
func NewGuardian() *Guardian {
	return &Guardian{retailers: builtinRetailers()}
}

// Retailer resolves a retailer name case-insensitively, falling back to the
// default retailer when unknown.
func (g *Guardian) Retailer(name string) RetailerRules {
	if r, ok := g.retailers[strings.ToLower(name)]; ok {
		return r
	}
	return g.retailers[DefaultRetailer]
}

// Known reports whether a retailer name resolves without falling back.
func (g *Guardian) Known(name string) bool {
	_, ok := g.retailers[strings.ToLower(name)]
	return ok
}

// Retailers returns the configured retailer names.
func (g *Guardian) Retailers() []string {
	out := make([]string, 0, len(g.retailers))
	for name := range g.retailers {
		out = append(out, name)
	}
	return out
}

type retailerFile struct {
	Retailers map[string]RetailerRules `toml:"retailers"`
}

// LoadFile merges retailer definitions from a TOML file over the builtin
// table. Entries replace builtins with the same name.
func (g *Guardian) LoadFile(path string) error {
	var file retailerFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRetailer, err, "decode retailers file %s", path)
	}
	for name, r := range file.Retailers {
		g.retailers[strings.ToLower(name)] = r
	}
	return nil
}

// issue is a small constructor shorthand for guardian findings.
func issue(sev rules.Severity, code, message, fix, elemType string) rules.Issue {
	return rules.Issue{
		Severity:      sev,
		Code:          code,
		Message:       message,
		FixSuggestion: fix,
		ElementType:   elemType,
	}
}
