package services_test

import (
	"context"

	"starwars/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockCharacterRepository is a mock implementation of repositories.CharacterRepository
type MockCharacterRepository struct {
	mock.Mock
}

func (m *MockCharacterRepository) GetAll(ctx context.Context) ([]models.Character, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Character), args.Error(1)
}

func (m *MockCharacterRepository) GetByID(ctx context.Context, id uint) (*models.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *MockCharacterRepository) Create(ctx context.Context, character *models.Character) error {
	args := m.Called(ctx, character)
	return args.Error(0)
}

// MockPlanetRepository is a mock implementation of repositories.PlanetRepository
type MockPlanetRepository struct {
	mock.Mock
}

func (m *MockPlanetRepository) GetAll(ctx context.Context) ([]models.Planet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Planet), args.Error(1)
}

func (m *MockPlanetRepository) GetByID(ctx context.Context, id uint) (*models.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Planet), args.Error(1)
}

func (m *MockPlanetRepository) Create(ctx context.Context, planet *models.Planet) error {
	args := m.Called(ctx, planet)
	return args.Error(0)
}

// MockFavoriteRepository is a mock implementation of repositories.FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) ListCharactersByUser(ctx context.Context, userID uint) ([]models.FavoriteCharacter, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FavoriteCharacter), args.Error(1)
}

func (m *MockFavoriteRepository) ListPlanetsByUser(ctx context.Context, userID uint) ([]models.FavoritePlanet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FavoritePlanet), args.Error(1)
}

func (m *MockFavoriteRepository) AddCharacter(ctx context.Context, favorite *models.FavoriteCharacter) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) AddPlanet(ctx context.Context, favorite *models.FavoritePlanet) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(eventType string, body []byte) error {
	args := m.Called(eventType, body)
	return args.Error(0)
}
