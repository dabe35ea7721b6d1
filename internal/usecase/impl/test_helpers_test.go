package impl

import (
	"context"
	"io"
	"log/slog"

	"nestly/internal/domain/entity"
	"nestly/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByNameAndEmail(ctx context.Context, username, email string) (*entity.User, error) {
	args := m.Called(ctx, username, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID string) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

type mockListingRepo struct {
	mock.Mock
}

func (m *mockListingRepo) Insert(ctx context.Context, fields map[string]any) (*repository.InsertResult, error) {
	args := m.Called(ctx, fields)
	if result := args.Get(0); result != nil {
		return result.(*repository.InsertResult), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockListingRepo) All(ctx context.Context) ([]entity.Listing, error) {
	args := m.Called(ctx)
	if listings := args.Get(0); listings != nil {
		return listings.([]entity.Listing), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockListingRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) (*entity.Listing, error) {
	args := m.Called(ctx, id, fields)
	if listing := args.Get(0); listing != nil {
		return listing.(*entity.Listing), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockListingRepo) Remove(ctx context.Context, id string) (*repository.RemoveResult, error) {
	args := m.Called(ctx, id)
	if result := args.Get(0); result != nil {
		return result.(*repository.RemoveResult), args.Error(1)
	}

	return nil, args.Error(1)
}
