package usecase

import (
	"context"

	"nestly/internal/domain/entity"
	"nestly/internal/domain/repository"
)

// UpdateListingInput carries the partial field set for a listing update. The
// wire format nests the fields under a "product" key.
type UpdateListingInput struct {
	Product map[string]any `json:"product"`
}

// CatalogUsecase defines the interface for listing CRUD operations. Every
// operation is a single request-scoped store call; there is no caching,
// ownership check or cross-request state.
type CatalogUsecase interface {
	// Create inserts the raw payload as a new listing document.
	Create(ctx context.Context, payload map[string]any) (*repository.InsertResult, error)

	// List returns all listings, unfiltered and unpaginated.
	List(ctx context.Context) ([]entity.Listing, error)

	// Update merges the supplied fields into the listing and returns the
	// pre-update document, or nil when no listing matches.
	Update(ctx context.Context, id string, fields map[string]any) (*entity.Listing, error)

	// Delete removes the listing and returns the removal acknowledgement.
	Delete(ctx context.Context, id string) (*repository.RemoveResult, error)
}
