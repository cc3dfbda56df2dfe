// Package rules implements the retailer compliance rule engine for creative
// layouts. Rules are split into copy rules (pattern matches over headline and
// subhead text) and layout rules (geometry, typography and element checks on
// a pixel canvas).
//
// Every rule reports through a stable machine-readable code so downstream
// tooling can filter, deduplicate and document findings without parsing
// messages.
package rules

// Severity classifies an issue. Hard failures block sign-off; warnings are
// advisory.
type Severity string

const (
	SeverityHard Severity = "hard"
	SeverityWarn Severity = "warn"
)

// BoundingBox is a percentage-geometry snapshot attached to positional
// findings so a UI can highlight the offending region.
type BoundingBox struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Issue is a single rule finding.
type Issue struct {
	Severity      Severity     `json:"severity" bson:"severity"`
	Code          string       `json:"code" bson:"code"`
	Message       string       `json:"message" bson:"message"`
	FixSuggestion string       `json:"fix_suggestion,omitempty" bson:"fix_suggestion,omitempty"`
	ElementType   string       `json:"element_type,omitempty" bson:"element_type,omitempty"`
	BoundingBox   *BoundingBox `json:"bounding_box,omitempty" bson:"bounding_box,omitempty"`
}

// Result is the outcome of a validation run. OK is true when no hard
// failures were found; warnings never flip it.
type Result struct {
	OK           bool     `json:"ok" bson:"ok"`
	Issues       []Issue  `json:"issues" bson:"issues"`
	CheckedRules []string `json:"checked_rules" bson:"checked_rules"`
}

// HardCount returns the number of hard failures.
func (r *Result) HardCount() int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == SeverityHard {
			n++
		}
	}
	return n
}

// WarnCount returns the number of warnings.
func (r *Result) WarnCount() int { return len(r.Issues) - r.HardCount() }

// dedupeByCode keeps the first issue per code, preserving order.
func dedupeByCode(issues []Issue) []Issue {
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
