package store

import (
	"context"
	"errors"
	"testing"

	"github.com/adproof/adproof/pkg/creative"
)

func testLayout() *creative.Layout {
	return &creative.Layout{
		ID: "layout-1",
		Elements: []creative.Element{
			{Type: creative.TypeBackground, Color: "#FFFFFF"},
			{Type: creative.TypeHeadline, X: 10, Y: 20, Width: 80, Height: 10, Text: "Fresh deals", FontSize: 32, Color: "#000000"},
		},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec := NewRecord(testLayout(), "campaign:summer24")
	if rec.ID == "" {
		t.Fatal("NewRecord should assign an ID")
	}
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Campaign != "campaign:summer24" {
		t.Errorf("Campaign = %q", got.Campaign)
	}
	if got.Layout.ID != "layout-1" || len(got.Layout.Elements) != 2 {
		t.Errorf("stored layout mismatch: %+v", got.Layout)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete missing = %v, want ErrNotFound", err)
	}
	if err := s.RecordValidation(ctx, "missing", ValidationRecord{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("RecordValidation missing = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	a := NewRecord(testLayout(), "campaign:a")
	b := NewRecord(testLayout(), "campaign:b")
	c := NewRecord(testLayout(), "campaign:a")
	for _, rec := range []*Record{a, b, c} {
		if err := s.Put(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.List(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("List all = %d records", len(all))
	}

	filtered, err := s.List(ctx, "campaign:a")
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered) != 2 {
		t.Errorf("List campaign:a = %d records", len(filtered))
	}
	for _, rec := range filtered {
		if rec.Campaign != "campaign:a" {
			t.Errorf("unexpected campaign %q", rec.Campaign)
		}
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec := NewRecord(testLayout(), "")
	if err := s.Put(ctx, rec); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Get(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreRecordValidation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec := NewRecord(testLayout(), "")
	if err := s.Put(ctx, rec); err != nil {
		t.Fatal(err)
	}

	v := ValidationRecord{
		OK:              false,
		HardFailures:    2,
		Warnings:        1,
		ComplianceScore: 55,
		Retailer:        "tesco",
		Channel:         "stories",
	}
	if err := s.RecordValidation(ctx, rec.ID, v); err != nil {
		t.Fatalf("RecordValidation error: %v", err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Validation == nil {
		t.Fatal("Validation should be set")
	}
	if got.Validation.ComplianceScore != 55 || got.Validation.HardFailures != 2 {
		t.Errorf("Validation = %+v", got.Validation)
	}
}

func TestMemoryStoreDetachesRecords(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec := NewRecord(testLayout(), "")
	if err := s.Put(ctx, rec); err != nil {
		t.Fatal(err)
	}

	// Mutating a returned record must not affect stored state.
	got, _ := s.Get(ctx, rec.ID)
	got.Layout.Elements[1].Text = "mutated"
	got.Campaign = "mutated"

	fresh, _ := s.Get(ctx, rec.ID)
	if fresh.Layout.Elements[1].Text != "Fresh deals" {
		t.Error("stored layout was aliased through Get")
	}
	if fresh.Campaign != "" {
		t.Error("stored record was aliased through Get")
	}

	// Mutating the original input must not affect stored state either.
	rec.Layout.Elements[1].Text = "mutated again"
	fresh, _ = s.Get(ctx, rec.ID)
	if fresh.Layout.Elements[1].Text != "Fresh deals" {
		t.Error("stored layout was aliased through Put")
	}
}

func TestNewRecordClonesLayout(t *testing.T) {
	l := testLayout()
	rec := NewRecord(l, "")

	l.Elements[1].Text = "changed"
	if rec.Layout.Elements[1].Text != "Fresh deals" {
		t.Error("NewRecord should clone the layout")
	}
}
