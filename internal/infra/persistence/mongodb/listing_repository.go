package mongodb

import (
	"context"

	"nestly/internal/domain/entity"
	"nestly/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listingsCollection = "products"

// listingRepository implements the repository.ListingRepository interface on
// top of the products collection. Listings are schema-flexible, so documents
// travel as raw maps rather than typed models.
type listingRepository struct {
	listings *mongo.Collection
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *mongo.Database) repository.ListingRepository {
	return &listingRepository{
		listings: db.Collection(listingsCollection),
	}
}

// Insert stores the raw payload as a new document.
func (repo *listingRepository) Insert(ctx context.Context, fields map[string]any) (*repository.InsertResult, error) {
	if fields == nil {
		fields = map[string]any{}
	}

	result, err := repo.listings.InsertOne(ctx, bson.M(fields))
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert listing")
	}

	insertResult := &repository.InsertResult{Acknowledged: true}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		insertResult.InsertedID = oid.Hex()
	}

	return insertResult, nil
}

// All returns every listing document, unfiltered and unpaginated.
func (repo *listingRepository) All(ctx context.Context) ([]entity.Listing, error) {
	cursor, err := repo.listings.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query listings")
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode listings")
	}

	listings := make([]entity.Listing, 0, len(docs))
	for _, doc := range docs {
		listings = append(listings, toListing(doc))
	}

	return listings, nil
}

// UpdateFields applies a $set merge keyed by document identifier and returns
// the document as it existed before the update, or nil when nothing matched.
func (repo *listingRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (*entity.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid listing id %q", id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var doc bson.M
	err = repo.listings.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M(fields)},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to update listing")
	}

	listing := toListing(doc)

	return &listing, nil
}

// Remove deletes the document with the given id.
func (repo *listingRepository) Remove(ctx context.Context, id string) (*repository.RemoveResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid listing id %q", id)
	}

	result, err := repo.listings.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete listing")
	}

	return &repository.RemoveResult{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	}, nil
}

// toListing maps a raw document to the domain's open payload, hex-encoding
// the store-assigned identifier.
func toListing(doc bson.M) entity.Listing {
	listing := make(entity.Listing, len(doc))
	for key, value := range doc {
		listing[key] = value
	}

	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		listing["_id"] = oid.Hex()
	}

	return listing
}
