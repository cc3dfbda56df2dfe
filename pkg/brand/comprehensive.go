package brand

import (
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/rules"
)

// Options configures a comprehensive validation run. It extends the rule
// engine options with brand palette and retailer context.
type Options struct {
	Canvas        string
	Channel       string
	Alcohol       bool
	SingleDensity bool

	// Retailer selects the retailer rule set; unknown names fall back to
	// the default retailer.
	Retailer string
	// BrandColors enables the palette consistency check when non-empty.
	BrandColors []string
}

func (o Options) ruleOptions() rules.Options {
	return rules.Options{
		Canvas:        o.Canvas,
		Channel:       o.Channel,
		Alcohol:       o.Alcohol,
		SingleDensity: o.SingleDensity,
	}
}

// Summary aggregates the comprehensive result for quick display.
type Summary struct {
	TotalIssues     int `json:"total_issues" bson:"total_issues"`
	HardFailures    int `json:"hard_failures" bson:"hard_failures"`
	Warnings        int `json:"warnings" bson:"warnings"`
	ComplianceScore int `json:"compliance_score" bson:"compliance_score"`
}

// ComprehensiveResult is the combined outcome of the rule engine and the
// guardian checks.
type ComprehensiveResult struct {
	OK           bool          `json:"ok" bson:"ok"`
	Issues       []rules.Issue `json:"issues" bson:"issues"`
	CheckedRules []string      `json:"checked_rules" bson:"checked_rules"`
	Summary      Summary       `json:"summary" bson:"summary"`
}

// ValidateComprehensive runs the core rule engine plus brand identity,
// visual quality and retailer compliance, merges the findings (first issue
// per code wins) and scores the layout. Each hard failure costs 20 points
// and each warning 5, floored at 0.
func (g *Guardian) ValidateComprehensive(l *creative.Layout, opts Options) (*ComprehensiveResult, error) {
	if opts.Canvas == "" {
		opts.Canvas = "1080x1920"
	}

	compliance, err := rules.Validate(l, opts.ruleOptions())
	if err != nil {
		return nil, err
	}
	issues := append([]rules.Issue{}, compliance.Issues...)

	if len(opts.BrandColors) > 0 {
		brandIssues, err := g.ValidateBrandIdentity(l, opts.BrandColors, opts.Canvas)
		if err != nil {
			return nil, err
		}
		issues = append(issues, brandIssues...)
	}

	visualIssues, err := g.ValidateVisualQuality(l, opts.Canvas)
	if err != nil {
		return nil, err
	}
	issues = append(issues, visualIssues...)

	retailerIssues, err := g.ValidateRetailerCompliance(l, opts.Retailer, opts.Alcohol, opts.Channel, opts.Canvas)
	if err != nil {
		return nil, err
	}
	issues = append(issues, retailerIssues...)

	issues = dedupeByCode(issues)

	hard := 0
	for _, i := range issues {
		if i.Severity == rules.SeverityHard {
			hard++
		}
	}
	warn := len(issues) - hard

	score := 100 - hard*20 - warn*5
	if score < 0 {
		score = 0
	}

	return &ComprehensiveResult{
		OK:     hard == 0,
		Issues: issues,
		CheckedRules: append(compliance.CheckedRules,
			"BRAND_IDENTITY", "VISUAL_QUALITY", "RETAILER_COMPLIANCE"),
		Summary: Summary{
			TotalIssues:     len(issues),
			HardFailures:    hard,
			Warnings:        warn,
			ComplianceScore: score,
		},
	}, nil
}

func dedupeByCode(issues []rules.Issue) []rules.Issue {
	seen := make(map[string]bool, len(issues))
	out := issues[:0:0]
	for _, i := range issues {
		if seen[i.Code] {
			continue
		}
		seen[i.Code] = true
		out = append(out, i)
	}
	return out
}
