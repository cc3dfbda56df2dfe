// Package cache provides pluggable caching for validation and adaptation
// results. Backends share one interface; callers pick null (disabled), memory
// (per-process), file (CLI runs) or redis (shared service deployments).
package cache

import (
	"context"
	"time"
)

// Default TTLs per result kind. Validation results go stale when rule
// tables change, so they expire faster than adaptations, which are pure
// functions of the layout and target format.
const (
	TTLValidation = 1 * time.Hour
	TTLAdapt      = 24 * time.Hour
)

// Cache is the backend interface. Get reports a miss with found=false and a
// nil error; errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ValidationKeyOpts are the inputs that change a validation result.
type ValidationKeyOpts struct {
	Canvas        string
	Channel       string
	Retailer      string
	Alcohol       bool
	SingleDensity bool
	BrandColors   []string
}

// AdaptKeyOpts are the inputs that change an adaptation result.
type AdaptKeyOpts struct {
	Source   string
	Target   string
	Strategy string
}

// Keyer builds cache keys from layout content hashes and run options.
type Keyer interface {
	// ValidationKey keys a rule-engine or comprehensive validation result.
	ValidationKey(layoutHash string, opts ValidationKeyOpts) string
	// AdaptKey keys a single-format adaptation result.
	AdaptKey(layoutHash string, opts AdaptKeyOpts) string
}

// DefaultKeyer hashes options into namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ValidationKey generates a key for validation results.
func (k *DefaultKeyer) ValidationKey(layoutHash string, opts ValidationKeyOpts) string {
	return hashKey("validate", layoutHash, opts.Canvas, opts.Channel, opts.Retailer,
		opts.Alcohol, opts.SingleDensity, opts.BrandColors)
}

// AdaptKey generates a key for adaptation results.
func (k *DefaultKeyer) AdaptKey(layoutHash string, opts AdaptKeyOpts) string {
	return hashKey("adapt", layoutHash, opts.Source, opts.Target, opts.Strategy)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
