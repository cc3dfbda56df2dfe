// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about validation runs, layout adaptation, and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetValidationHooks(&myValidationHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Validation().OnValidateStart(ctx, retailer, channel)
//	// ... run checks ...
//	observability.Validation().OnValidateComplete(ctx, retailer, channel, issueCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Validation Hooks
// =============================================================================

// ValidationHooks receives events from compliance validation.
type ValidationHooks interface {
	// OnValidateStart records the start of a validation run.
	OnValidateStart(ctx context.Context, retailer, channel string)

	// OnValidateComplete records the end of a validation run.
	OnValidateComplete(ctx context.Context, retailer, channel string, issueCount int, duration time.Duration, err error)

	// OnRuleViolation records a single rule violation.
	OnRuleViolation(ctx context.Context, code, severity string)
}

// =============================================================================
// Resize Hooks
// =============================================================================

// ResizeHooks receives events from layout adaptation.
type ResizeHooks interface {
	// OnAdaptStart records the start of an adaptation.
	OnAdaptStart(ctx context.Context, source, target, strategy string)

	// OnAdaptComplete records the end of an adaptation.
	OnAdaptComplete(ctx context.Context, source, target, strategy string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopValidationHooks is a no-op implementation of ValidationHooks.
type NoopValidationHooks struct{}

func (NoopValidationHooks) OnValidateStart(context.Context, string, string) {}
func (NoopValidationHooks) OnValidateComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopValidationHooks) OnRuleViolation(context.Context, string, string) {}

// NoopResizeHooks is a no-op implementation of ResizeHooks.
type NoopResizeHooks struct{}

func (NoopResizeHooks) OnAdaptStart(context.Context, string, string, string) {}
func (NoopResizeHooks) OnAdaptComplete(context.Context, string, string, string, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	validationHooks ValidationHooks = NoopValidationHooks{}
	resizeHooks     ResizeHooks     = NoopResizeHooks{}
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	hooksMu         sync.RWMutex
)

// SetValidationHooks registers custom validation hooks.
// This should be called once at application startup before any validation runs.
func SetValidationHooks(h ValidationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		validationHooks = h
	}
}

// SetResizeHooks registers custom resize hooks.
// This should be called once at application startup before any adaptations.
func SetResizeHooks(h ResizeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resizeHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Validation returns the registered validation hooks.
func Validation() ValidationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return validationHooks
}

// Resize returns the registered resize hooks.
func Resize() ResizeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resizeHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	validationHooks = NoopValidationHooks{}
	resizeHooks = NoopResizeHooks{}
	cacheHooks = NoopCacheHooks{}
}
