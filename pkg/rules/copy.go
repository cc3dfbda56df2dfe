package rules

import (
	"regexp"
	"strings"
)

// copyRule is one prohibited-copy category. The joined headline and subhead
// text is lowercased once, then each pattern is tried in order; the first
// match fires the category and the rest are skipped, so a category reports
// at most one issue per run.
type copyRule struct {
	code     string
	ruleName string
	message  string
	fix      string
	patterns []*regexp.Regexp
}

func rx(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// copyRules are checked in this order and contribute their ruleName to
// CheckedRules even when clean.
var copyRules = []copyRule{
	{
		code:     "TERMS_AND_CONDITIONS",
		ruleName: "NO_TERMS_AND_CONDITIONS",
		message:  "Terms and conditions are not allowed in creative copy",
		fix:      "Remove T&Cs reference from copy",
		patterns: rx(
			`terms\s*(and|&)\s*conditions`,
			`t\s*&\s*c`,
			`t&cs`,
			`subject to`,
			`see\s+website\s+for\s+details`,
			`see\s+in\s*-?\s*store\s+for\s+details`,
		),
	},
	{
		code:     "COMPETITION_COPY",
		ruleName: "NO_COMPETITION_COPY",
		message:  "Competition or prize wording is not allowed",
		fix:      "Remove competition-related language",
		patterns: rx(
			`\b(win|enter|contest|prize|giveaway|competition|raffle|lottery)\b`,
			`\b(chance\s+to\s+win|enter\s+now|enter\s+to\s+win)\b`,
		),
	},
	{
		code:     "SUSTAINABILITY_CLAIM",
		ruleName: "NO_SUSTAINABILITY_CLAIMS",
		message:  "Sustainability or environmental claims are not allowed without approval",
		fix:      "Remove sustainability claims or obtain approval",
		patterns: rx(
			`\b(sustainable|sustainability|eco|eco-friendly|green|carbon|net\s*zero)\b`,
			`\b(environmental|planet|recycle|recyclable|biodegradable)\b`,
		),
	},
	{
		code:     "CHARITY_PARTNERSHIP",
		ruleName: "NO_CHARITY_COPY",
		message:  "Charity partnership copy is not allowed",
		fix:      "Remove charity-related messaging",
		patterns: rx(
			`\b(charity|charitable|donate|donation|fundrais|nonprofit)\b`,
			`\b(support\s+(a\s+)?cause|giving\s+back|community)\b`,
		),
	},
	{
		code:     "PRICE_CALLOUT",
		ruleName: "NO_PRICE_CALLOUTS",
		message:  "Price call-outs are not allowed in copy",
		fix:      "Remove pricing language from copy",
		patterns: rx(
			`£\d+`,
			`\$\d+`,
			`\d+%\s*off`,
			`\b(price|discount|sale|deal|offer|save|saving|reduced|clearance)\b`,
			`\b(buy\s+one\s+get|bogof|2\s*for|3\s*for)\b`,
		),
	},
	{
		code:     "MONEY_BACK_GUARANTEE",
		ruleName: "NO_MONEY_BACK_GUARANTEE",
		message:  "Money-back guarantees are not allowed",
		fix:      "Remove guarantee language",
		patterns: rx(
			`money\s*-?\s*back`,
			`\b(guarantee|guaranteed|refund|return)\b`,
			`satisfaction\s+(or|guaranteed)`,
		),
	},
	{
		code:     "UNSUBSTANTIATED_CLAIM",
		ruleName: "NO_CLAIMS",
		message:  "Claims like '#1', 'best', 'clinically proven' require substantiation",
		fix:      "Remove claim or provide substantiation documentation",
		patterns: rx(
			`#\s*1\b`,
			`\bnumber\s+(one|1)\b`,
			`\b(best|leading|top|favourite|favorite)\b`,
			`\b(clinically|scientifically|proven|tested)\b`,
			`\b(survey|study|studies|research)\s+(shows?|proves?|found)\b`,
			`\b(award|awarded|winning)\b`,
		),
	},
}

// CopyRuleNames returns the checked-rule names of all copy categories in
// evaluation order.
func CopyRuleNames() []string {
	out := make([]string, len(copyRules))
	for i, r := range copyRules {
		out[i] = r.ruleName
	}
	return out
}

// CheckCopy runs all prohibited-copy categories against the headline and
// subhead. Matching is case-insensitive; each category fires at most once.
func CheckCopy(headline, subhead string) []Issue {
	text := strings.ToLower(headline + " " + subhead)

	var issues []Issue
	for _, rule := range copyRules {
		for _, p := range rule.patterns {
			if p.MatchString(text) {
				issues = append(issues, Issue{
					Severity:      SeverityHard,
					Code:          rule.code,
					Message:       rule.message,
					FixSuggestion: rule.fix,
				})
				break
			}
		}
	}
	return issues
}
