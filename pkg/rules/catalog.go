package rules

// CatalogEntry describes one rule for documentation and UI display.
type CatalogEntry struct {
	Code        string   `json:"code"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// Catalog returns every rule in evaluation order.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			Code:        "TESCO_TAG",
			Severity:    SeverityHard,
			Description: "Tesco tag text must be one of: 'Only at Tesco', 'Available at Tesco', 'Selected stores. While stocks last'",
		},
		{
			Code:        "DRINKAWARE",
			Severity:    SeverityHard,
			Description: "Drinkaware lock-up required for alcohol campaigns with black/white color and minimum 20px height",
		},
		{
			Code:        "NO_TERMS_AND_CONDITIONS",
			Severity:    SeverityHard,
			Description: "No T&Cs allowed in creative copy",
		},
		{
			Code:        "NO_COMPETITION_COPY",
			Severity:    SeverityHard,
			Description: "No competition or giveaway wording allowed",
		},
		{
			Code:        "NO_SUSTAINABILITY_CLAIMS",
			Severity:    SeverityHard,
			Description: "No sustainability or environmental claims without approval",
		},
		{
			Code:        "NO_CHARITY_COPY",
			Severity:    SeverityHard,
			Description: "No charity partnership copy allowed",
		},
		{
			Code:        "NO_PRICE_CALLOUTS",
			Severity:    SeverityHard,
			Description: "No price or discount references in copy",
		},
		{
			Code:        "NO_MONEY_BACK_GUARANTEE",
			Severity:    SeverityHard,
			Description: "No money-back guarantee language allowed",
		},
		{
			Code:        "NO_CLAIMS",
			Severity:    SeverityHard,
			Description: "No unsubstantiated claims (#1, best, clinically proven, etc.)",
		},
		{
			Code:        "VALUE_TILE_POSITION",
			Severity:    SeverityHard,
			Description: "Value tile must not overlap with other elements",
		},
		{
			Code:        "SOCIAL_SAFE_ZONES",
			Severity:    SeverityHard,
			Description: "Stories: Top 200px and bottom 250px must be free of text/logos/tiles",
		},
		{
			Code:        "MINIMUM_FONT_SIZE",
			Severity:    SeverityHard,
			Description: "Minimum font size: 20px for Brand/Social, 12px for SAYS",
		},
		{
			Code:        "WCAG_CONTRAST",
			Severity:    SeverityHard,
			Description: "Text must meet WCAG AA contrast (4.5:1 normal, 3:1 large text)",
		},
		{
			Code:        "CTA_SAFE_GAP",
			Severity:    SeverityHard,
			Description: "Minimum 24px gap between packshot and CTA (12px for single density)",
		},
		{
			Code:        "PEOPLE_IN_PHOTOGRAPHY",
			Severity:    SeverityWarn,
			Description: "Confirm model consent if people are present in imagery",
		},
	}
}
