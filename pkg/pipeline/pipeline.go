// Package pipeline provides the core validate → adapt → revalidate pipeline.
//
// This package implements the complete compliance pipeline that can be used by
// CLI and API components. By centralizing this logic, we ensure consistent
// behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Validate: Run the rule engine and brand guardian against the source layout
//  2. Adapt: Produce layouts for each requested target format
//  3. Revalidate: Re-check each adapted layout against its target format
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:   "1080x1920",
//	    Targets:  []string{"1080x1080", "300x250"},
//	    Retailer: "tesco",
//	    Channel:  "stories",
//	}
//	result, err := runner.Execute(ctx, layout, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	square := result.Adapted["1080x1080"]
//
// Run individual stages:
//
//	// Validate only
//	res, err := runner.Validate(ctx, layout, opts)
//
//	// Adapt only
//	adapted, err := runner.Adapt(ctx, layout, "1080x1080", opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/adproof/adproof/pkg/brand"
	"github.com/adproof/adproof/pkg/cache"
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/resize"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultTargets is the target set used when a run requests adaptation
// without naming formats: the square feed plus the standard display sizes.
var DefaultTargets = []string{"1080x1080", "1200x628", "300x250"}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the compliance pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Validation options
	Source        string   `json:"source,omitempty"`
	Channel       string   `json:"channel,omitempty"`
	Retailer      string   `json:"retailer,omitempty"`
	Alcohol       bool     `json:"alcohol,omitempty"`
	SingleDensity bool     `json:"single_density,omitempty"`
	BrandColors   []string `json:"brand_colors,omitempty"`

	// Adaptation options
	Targets  []string `json:"targets,omitempty"`
	Strategy string   `json:"strategy,omitempty"` // empty selects per-target automatically

	// Revalidate re-checks each adapted layout against its target format.
	Revalidate bool `json:"revalidate,omitempty"`

	// Refresh bypasses the cache and recomputes all stages.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Validation is the comprehensive result for the source layout.
	Validation *brand.ComprehensiveResult

	// LayoutHash is the content hash of the source layout.
	LayoutHash string

	// Adapted contains adapted layouts keyed by target format.
	Adapted map[string]*creative.Layout

	// Revalidations contains per-target validation of the adapted layouts.
	// Only populated when Options.Revalidate is set.
	Revalidations map[string]*brand.ComprehensiveResult

	// Warnings lists targets that could not be adapted.
	Warnings []string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount   int
	TargetCount    int
	ValidateTime   time.Duration
	AdaptTime      time.Duration
	RevalidateTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ValidationHit bool // Whether the source validation came from cache
	AdaptHits     int  // Number of targets served from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if _, err := resize.ParseStrategy(o.Strategy); err != nil {
		return err
	}
	if len(o.Targets) == 0 {
		o.Targets = append([]string{}, DefaultTargets...)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ValidationKeyOpts returns cache key options for source validation.
func (o *Options) ValidationKeyOpts() cache.ValidationKeyOpts {
	return cache.ValidationKeyOpts{
		Canvas:        o.Source,
		Channel:       o.Channel,
		Retailer:      o.Retailer,
		Alcohol:       o.Alcohol,
		SingleDensity: o.SingleDensity,
		BrandColors:   o.BrandColors,
	}
}

// AdaptKeyOpts returns cache key options for a single target adaptation.
func (o *Options) AdaptKeyOpts(target string) cache.AdaptKeyOpts {
	return cache.AdaptKeyOpts{
		Source:   o.Source,
		Target:   target,
		Strategy: o.Strategy,
	}
}

// GuardianOpts converts pipeline options into guardian validation options.
func (o *Options) GuardianOpts() brand.Options {
	return brand.Options{
		Canvas:        o.Source,
		Channel:       o.Channel,
		Alcohol:       o.Alcohol,
		SingleDensity: o.SingleDensity,
		Retailer:      o.Retailer,
		BrandColors:   o.BrandColors,
	}
}

// hashLayout computes the content hash used in cache keys.
func hashLayout(l *creative.Layout) (string, error) {
	data, err := creative.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("serialize layout for cache key: %w", err)
	}
	return cache.Hash(data), nil
}
