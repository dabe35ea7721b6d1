package impl

import (
	"context"
	"log/slog"

	deliverycontext "nestly/internal/delivery/context"
	"nestly/internal/domain/entity"
	"nestly/internal/domain/repository"
	"nestly/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. Each operation is a
// single pass-through store call; failures surface to the delivery layer as
// wrapped errors and become a generic 500 there.
type catalogService struct {
	listingRepo repository.ListingRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		listingRepo: params.ListingRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) Create(ctx context.Context, payload map[string]any) (*repository.InsertResult, error) {
	result, err := srv.listingRepo.Insert(ctx, payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert listing")
	}

	srv.log(ctx).Debug("Listing created", slog.String("listingID", result.InsertedID))

	return result, nil
}

func (srv *catalogService) List(ctx context.Context) ([]entity.Listing, error) {
	listings, err := srv.listingRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return listings, nil
}

func (srv *catalogService) Update(ctx context.Context, id string, fields map[string]any) (*entity.Listing, error) {
	previous, err := srv.listingRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update listing")
	}

	srv.log(ctx).Debug("Listing updated", slog.String("listingID", id))

	return previous, nil
}

func (srv *catalogService) Delete(ctx context.Context, id string) (*repository.RemoveResult, error) {
	result, err := srv.listingRepo.Remove(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete listing")
	}

	srv.log(ctx).Debug("Listing deleted", slog.String("listingID", id), slog.Int64("deleted", result.DeletedCount))

	return result, nil
}
