package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/adproof/adproof/pkg/brand"
	"github.com/adproof/adproof/pkg/cache"
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/format"
	"github.com/adproof/adproof/pkg/observability"
	"github.com/adproof/adproof/pkg/resize"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Guardian *brand.Guardian
	Resizer  *resize.Resizer
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
		Guardian: brand.NewGuardian(),
		Resizer:  resize.New(format.Builtin()),
	}
}

// Execute runs the complete validate → adapt → revalidate pipeline with caching.
func (r *Runner) Execute(ctx context.Context, l *creative.Layout, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Adapted: make(map[string]*creative.Layout),
	}

	layoutHash, err := hashLayout(l)
	if err != nil {
		return nil, err
	}
	result.LayoutHash = layoutHash
	result.Stats.ElementCount = len(l.Elements)

	// Stage 1: Validate
	validateStart := time.Now()
	validation, validationHit, err := r.ValidateWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	result.Validation = validation
	result.Stats.ValidateTime = time.Since(validateStart)
	result.CacheInfo.ValidationHit = validationHit

	r.Logger.Info("validated layout",
		"issues", validation.Summary.TotalIssues,
		"score", validation.Summary.ComplianceScore,
		"duration", result.Stats.ValidateTime)

	// Stage 2: Adapt
	adaptStart := time.Now()
	for _, target := range opts.Targets {
		adapted, adaptHit, err := r.AdaptWithCacheInfo(ctx, l, target, opts)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("failed to adapt to %s: %v", target, err))
			continue
		}
		result.Adapted[target] = adapted
		if adaptHit {
			result.CacheInfo.AdaptHits++
		}
	}
	result.Stats.AdaptTime = time.Since(adaptStart)
	result.Stats.TargetCount = len(result.Adapted)

	r.Logger.Info("adapted layout",
		"targets", len(result.Adapted),
		"warnings", len(result.Warnings),
		"duration", result.Stats.AdaptTime)

	// Stage 3: Revalidate
	if opts.Revalidate {
		revalidateStart := time.Now()
		result.Revalidations = make(map[string]*brand.ComprehensiveResult, len(result.Adapted))
		for target, adapted := range result.Adapted {
			reval, err := r.Guardian.ValidateComprehensive(adapted, r.targetOpts(target, opts))
			if err != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("failed to revalidate %s: %v", target, err))
				continue
			}
			result.Revalidations[target] = reval
		}
		result.Stats.RevalidateTime = time.Since(revalidateStart)

		r.Logger.Info("revalidated targets",
			"targets", len(result.Revalidations),
			"duration", result.Stats.RevalidateTime)
	}

	return result, nil
}

// ValidateWithCacheInfo validates a layout with caching and returns cache hit info.
func (r *Runner) ValidateWithCacheInfo(ctx context.Context, l *creative.Layout, opts Options) (*brand.ComprehensiveResult, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	layoutHash, err := hashLayout(l)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.ValidationKey(layoutHash, opts.ValidationKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached brand.ComprehensiveResult
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "validate")
				return &cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "validate")
	}

	start := time.Now()
	observability.Validation().OnValidateStart(ctx, opts.Retailer, opts.Channel)
	res, err := r.Guardian.ValidateComprehensive(l, opts.GuardianOpts())
	observability.Validation().OnValidateComplete(ctx, opts.Retailer, opts.Channel,
		summaryIssueCount(res), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	for _, issue := range res.Issues {
		observability.Validation().OnRuleViolation(ctx, issue.Code, string(issue.Severity))
	}

	// Cache the result
	if data, err := json.Marshal(res); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLValidation); err == nil {
			observability.Cache().OnCacheSet(ctx, "validate", len(data))
		}
	}

	return res, false, nil // Cache miss
}

// Validate is a convenience wrapper that discards the cache hit info.
func (r *Runner) Validate(ctx context.Context, l *creative.Layout, opts Options) (*brand.ComprehensiveResult, error) {
	res, _, err := r.ValidateWithCacheInfo(ctx, l, opts)
	return res, err
}

// AdaptWithCacheInfo adapts a layout to one target with caching and returns
// cache hit info.
func (r *Runner) AdaptWithCacheInfo(ctx context.Context, l *creative.Layout, target string, opts Options) (*creative.Layout, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	layoutHash, err := hashLayout(l)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.AdaptKey(layoutHash, opts.AdaptKeyOpts(target))

	// Try cache first (unless refresh requested). Cached bytes are engine
	// output, not untrusted input, so they are decoded without the ingest
	// clamping: crop transforms may legally place elements off-canvas and
	// a warm hit must return the cold run's exact result.
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached creative.Layout
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "adapt")
				return &cached, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "adapt")
	}

	strategy, err := resize.ParseStrategy(opts.Strategy)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	observability.Resize().OnAdaptStart(ctx, opts.Source, target, opts.Strategy)
	adapted, err := r.Resizer.Adapt(l, opts.Source, target, strategy)
	observability.Resize().OnAdaptComplete(ctx, opts.Source, target, opts.Strategy,
		time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := creative.Marshal(adapted); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLAdapt); err == nil {
			observability.Cache().OnCacheSet(ctx, "adapt", len(data))
		}
	}

	return adapted, false, nil // Cache miss
}

// Adapt is a convenience wrapper that discards the cache hit info.
func (r *Runner) Adapt(ctx context.Context, l *creative.Layout, target string, opts Options) (*creative.Layout, error) {
	adapted, _, err := r.AdaptWithCacheInfo(ctx, l, target, opts)
	return adapted, err
}

// targetOpts builds guardian options for revalidating an adapted layout. The
// canvas becomes the target key and the channel follows the target platform.
func (r *Runner) targetOpts(target string, opts Options) brand.Options {
	out := opts.GuardianOpts()
	out.Canvas = target
	if cfg, ok := r.Resizer.Formats().Lookup(target); ok {
		out.Channel = cfg.Platform
	}
	return out
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func summaryIssueCount(res *brand.ComprehensiveResult) int {
	if res == nil {
		return 0
	}
	return res.Summary.TotalIssues
}
