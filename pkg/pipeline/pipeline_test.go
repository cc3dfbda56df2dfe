package pipeline

import (
	"context"
	"testing"

	"github.com/adproof/adproof/pkg/cache"
	"github.com/adproof/adproof/pkg/creative"
)

func storyLayout() *creative.Layout {
	return &creative.Layout{
		ID: "story-1",
		Elements: []creative.Element{
			{Type: creative.TypeBackground, Color: "#FFFFFF"},
			{Type: creative.TypePackshot, X: 20, Y: 30, Width: 60, Height: 30, Asset: "packshot.png"},
			{Type: creative.TypeHeadline, X: 10, Y: 12, Width: 80, Height: 10, Text: "Fresh deals this week", FontSize: 48, Color: "#000000"},
			{Type: creative.TypeSubhead, X: 10, Y: 65, Width: 80, Height: 8, Text: "In stores now", FontSize: 24, Color: "#000000"},
			{Type: creative.TypeLogo, X: 40, Y: 75, Width: 20, Height: 8, Asset: "logo.png"},
			{Type: creative.TypeTescoTag, X: 30, Y: 84, Width: 40, Height: 3, Text: "Available at Tesco"},
		},
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}

	// Check defaults were set
	if len(opts.Targets) != len(DefaultTargets) {
		t.Errorf("Targets should default to %v, got %v", DefaultTargets, opts.Targets)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsRejectsBadStrategy(t *testing.T) {
	opts := Options{Strategy: "teleport"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Unknown strategy should fail")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Targets: []string{"300x250"}}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	originalTargets := len(opts.Targets)

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if len(opts.Targets) != originalTargets {
		t.Error("Targets changed on second call")
	}
}

func TestExecuteFullPipeline(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(cache.NewMemoryCache(), nil, nil)
	defer runner.Close()

	opts := Options{
		Source:     "1080x1920",
		Channel:    "stories",
		Retailer:   "tesco",
		Targets:    []string{"1080x1080", "300x250"},
		Revalidate: true,
	}
	result, err := runner.Execute(ctx, storyLayout(), opts)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.Validation == nil {
		t.Fatal("Validation should be populated")
	}
	if result.LayoutHash == "" {
		t.Error("LayoutHash should be set")
	}
	if len(result.Adapted) != 2 {
		t.Errorf("Adapted = %d targets, want 2", len(result.Adapted))
	}
	if len(result.Revalidations) != 2 {
		t.Errorf("Revalidations = %d targets, want 2", len(result.Revalidations))
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	for target, adapted := range result.Adapted {
		if adapted.ID != "story-1_"+target {
			t.Errorf("adapted ID = %q for target %s", adapted.ID, target)
		}
	}
}

func TestExecuteUsesCache(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(cache.NewMemoryCache(), nil, nil)
	defer runner.Close()

	opts := Options{Targets: []string{"1080x1080"}}

	// First run populates the cache
	first, err := runner.Execute(ctx, storyLayout(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.ValidationHit || first.CacheInfo.AdaptHits != 0 {
		t.Errorf("first run should miss: %+v", first.CacheInfo)
	}

	// Second run should hit for both stages
	second, err := runner.Execute(ctx, storyLayout(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.ValidationHit {
		t.Error("second run should hit the validation cache")
	}
	if second.CacheInfo.AdaptHits != 1 {
		t.Errorf("second run AdaptHits = %d, want 1", second.CacheInfo.AdaptHits)
	}

	// Cached and fresh results must agree
	if second.Validation.Summary != first.Validation.Summary {
		t.Errorf("cached summary %+v != fresh %+v", second.Validation.Summary, first.Validation.Summary)
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(cache.NewMemoryCache(), nil, nil)
	defer runner.Close()

	opts := Options{Targets: []string{"1080x1080"}}
	if _, err := runner.Execute(ctx, storyLayout(), opts); err != nil {
		t.Fatal(err)
	}

	opts.Refresh = true
	result, err := runner.Execute(ctx, storyLayout(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.ValidationHit || result.CacheInfo.AdaptHits != 0 {
		t.Errorf("refresh run should not hit the cache: %+v", result.CacheInfo)
	}
}

func TestExecuteWithoutCache(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(ctx, storyLayout(), Options{})
	if err != nil {
		t.Fatalf("Execute with NullCache error: %v", err)
	}
	if len(result.Adapted) != len(DefaultTargets) {
		t.Errorf("Adapted = %d targets, want %d", len(result.Adapted), len(DefaultTargets))
	}
}

func TestValidateStage(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(cache.NewMemoryCache(), nil, nil)
	defer runner.Close()

	res, err := runner.Validate(ctx, storyLayout(), Options{Retailer: "tesco", Channel: "stories"})
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if res.Summary.ComplianceScore < 0 || res.Summary.ComplianceScore > 100 {
		t.Errorf("ComplianceScore out of range: %d", res.Summary.ComplianceScore)
	}
}

func TestAdaptStage(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(cache.NewMemoryCache(), nil, nil)
	defer runner.Close()

	adapted, err := runner.Adapt(ctx, storyLayout(), "1080x1080", Options{Source: "1080x1920"})
	if err != nil {
		t.Fatalf("Adapt error: %v", err)
	}
	if adapted.ID != "story-1_1080x1080" {
		t.Errorf("adapted ID = %q", adapted.ID)
	}
	if len(adapted.Elements) == 0 {
		t.Error("adapted layout should keep its elements")
	}
}

func TestExecuteUnknownTargetWarns(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(cache.NewMemoryCache(), nil, nil)
	defer runner.Close()

	// Unknown targets fall back to the default target format, so adaptation
	// still succeeds; the layout is keyed by the requested name.
	result, err := runner.Execute(ctx, storyLayout(), Options{Targets: []string{"999x999"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := result.Adapted["999x999"]; !ok {
		t.Error("unknown target should fall back to the default target format")
	}
}
