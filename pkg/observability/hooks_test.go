package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Validation hooks
	v := NoopValidationHooks{}
	v.OnValidateStart(ctx, "tesco", "stories")
	v.OnValidateComplete(ctx, "tesco", "stories", 3, time.Second, nil)
	v.OnRuleViolation(ctx, "MISSING_TESCO_TAG", "hard")

	// Resize hooks
	r := NoopResizeHooks{}
	r.OnAdaptStart(ctx, "1080x1920", "1080x1080", "scale_fit")
	r.OnAdaptComplete(ctx, "1080x1920", "1080x1080", "scale_fit", time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "validate")
	c.OnCacheMiss(ctx, "adapt")
	c.OnCacheSet(ctx, "adapt", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Validation().(NoopValidationHooks); !ok {
		t.Error("Validation() should return NoopValidationHooks by default")
	}
	if _, ok := Resize().(NoopResizeHooks); !ok {
		t.Error("Resize() should return NoopResizeHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customValidation := &testValidationHooks{}
	SetValidationHooks(customValidation)
	if Validation() != customValidation {
		t.Error("SetValidationHooks should set custom hooks")
	}

	customResize := &testResizeHooks{}
	SetResizeHooks(customResize)
	if Resize() != customResize {
		t.Error("SetResizeHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Validation().(NoopValidationHooks); !ok {
		t.Error("Reset() should restore NoopValidationHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testValidationHooks{}
	SetValidationHooks(custom)

	// Setting nil should be ignored
	SetValidationHooks(nil)

	if Validation() != custom {
		t.Error("SetValidationHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testValidationHooks struct{ NoopValidationHooks }
type testResizeHooks struct{ NoopResizeHooks }
type testCacheHooks struct{ NoopCacheHooks }
