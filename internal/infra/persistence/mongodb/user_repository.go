package mongodb

import (
	"context"

	"nestly/internal/domain/entity"
	"nestly/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

// userDocument is the persistence model for the users collection.
type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	RoleID   int                `bson:"roleId"`
}

// toDomain maps the persistence model back to a pure domain entity.
func (doc *userDocument) toDomain() *entity.User {
	return &entity.User{
		ID:       doc.ID.Hex(),
		Username: doc.Username,
		Email:    doc.Email,
		Password: doc.Password,
		RoleID:   entity.RoleID(doc.RoleID),
	}
}

// userRepository implements the repository.UserRepository interface on top of
// the users collection.
type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface,
// adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		users: db.Collection(usersCollection),
	}
}

// FindByNameAndEmail retrieves the single user whose username AND email both
// match exactly.
func (repo *userRepository) FindByNameAndEmail(ctx context.Context, username, email string) (*entity.User, error) {
	filter := bson.M{"$and": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}

	var doc userDocument
	err := repo.users.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		// If no document matches, return a domain-specific error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username and email")
	}

	return doc.toDomain(), nil
}

// Create persists a new user record. There is no uniqueness index on
// (username, email); callers are expected to have checked beforehand.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := &userDocument{
		Username: user.Username,
		Email:    user.Email,
		Password: user.Password,
		RoleID:   int(user.RoleID),
	}

	result, err := repo.users.InsertOne(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to insert user")
	}

	// Fill in the store-assigned identifier.
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}

	return nil
}
