// Package store provides persistence for creative layouts and their
// validation history.
//
// This package defines an interface for layout storage with implementations
// for different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for production deployments
//
// # Architecture
//
// A Record wraps a layout with ownership and audit metadata. The Store
// interface supports:
//   - Get/List/Put/Delete operations
//   - Recording validation results against a stored layout
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// Production
//	st, err := store.NewMongoStore(ctx, store.MongoOptions{
//	    URI:      "mongodb://localhost:27017",
//	    Database: "adproof",
//	})
//
// Save and retrieve layouts:
//
//	rec := store.NewRecord(layout, "campaign:summer24")
//	if err := st.Put(ctx, rec); err != nil {
//	    return err
//	}
//
//	rec, err := st.Get(ctx, rec.ID)
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/adproof/adproof/pkg/creative"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
)

// Record wraps a layout with ownership and audit metadata.
type Record struct {
	ID        string           `json:"id" bson:"_id"`
	Campaign  string           `json:"campaign,omitempty" bson:"campaign,omitempty"`
	Layout    *creative.Layout `json:"layout" bson:"layout"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" bson:"updated_at"`

	// Validation holds the most recent validation run, if any.
	Validation *ValidationRecord `json:"validation,omitempty" bson:"validation,omitempty"`
}

// ValidationRecord captures the outcome of a validation run.
type ValidationRecord struct {
	OK              bool      `json:"ok" bson:"ok"`
	HardFailures    int       `json:"hard_failures" bson:"hard_failures"`
	Warnings        int       `json:"warnings" bson:"warnings"`
	ComplianceScore int       `json:"compliance_score" bson:"compliance_score"`
	Retailer        string    `json:"retailer,omitempty" bson:"retailer,omitempty"`
	Channel         string    `json:"channel,omitempty" bson:"channel,omitempty"`
	ValidatedAt     time.Time `json:"validated_at" bson:"validated_at"`
}

// NewRecord creates a record for a layout with a generated ID.
// The layout is cloned so later edits to the caller's copy don't leak in.
func NewRecord(layout *creative.Layout, campaign string) *Record {
	now := time.Now().UTC()
	return &Record{
		ID:        uuid.NewString(),
		Campaign:  campaign,
		Layout:    layout.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store is the interface for layout storage backends.
type Store interface {
	// Get retrieves a record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns records, optionally filtered by campaign.
	// An empty campaign matches all records.
	List(ctx context.Context, campaign string) ([]*Record, error)

	// Put stores a record, replacing any existing record with the same ID.
	Put(ctx context.Context, rec *Record) error

	// Delete removes a record.
	// Returns ErrNotFound if the record doesn't exist.
	Delete(ctx context.Context, id string) error

	// RecordValidation attaches a validation outcome to a stored record.
	// Returns ErrNotFound if the record doesn't exist.
	RecordValidation(ctx context.Context, id string, v ValidationRecord) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
