package repository

import (
	"context"

	"nestly/internal/domain/entity"
)

// InsertResult mirrors the document store's insert acknowledgement.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// RemoveResult mirrors the document store's delete acknowledgement.
type RemoveResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// ListingRepository defines the persistence operations for catalog listings.
type ListingRepository interface {
	// Insert stores the raw payload as a new document.
	Insert(ctx context.Context, fields map[string]any) (*InsertResult, error)

	// All returns every listing document, unfiltered and unpaginated.
	All(ctx context.Context) ([]entity.Listing, error)

	// UpdateFields applies a partial $set-style merge to the document with
	// the given id and returns the document as it existed BEFORE the update.
	// Returns (nil, nil) when no document matches.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*entity.Listing, error)

	// Remove deletes the document with the given id.
	Remove(ctx context.Context, id string) (*RemoveResult, error)
}
