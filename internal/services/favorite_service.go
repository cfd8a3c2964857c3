package services

import (
	"context"

	"starwars/internal/metrics"
	"starwars/internal/models"
	"starwars/internal/repositories"
)

// FavoriteService manages the favorite characters and planets of users.
type FavoriteService struct {
	repo   repositories.FavoriteRepository
	events EventPublisher
}

// NewFavoriteService creates a new FavoriteService. events may be nil.
func NewFavoriteService(repo repositories.FavoriteRepository, events EventPublisher) *FavoriteService {
	return &FavoriteService{
		repo:   repo,
		events: events,
	}
}

// GetFavoriteCharacters lists the favorite character rows of a user.
func (s *FavoriteService) GetFavoriteCharacters(ctx context.Context, userID uint) ([]models.FavoriteCharacter, error) {
	return s.repo.ListCharactersByUser(ctx, userID)
}

// GetFavoritePlanets lists the favorite planet rows of a user.
func (s *FavoriteService) GetFavoritePlanets(ctx context.Context, userID uint) ([]models.FavoritePlanet, error) {
	return s.repo.ListPlanetsByUser(ctx, userID)
}

// AddFavoriteCharacter inserts a new row even if the same pair already exists.
// Unknown user or character ids are rejected by the foreign keys only.
func (s *FavoriteService) AddFavoriteCharacter(ctx context.Context, userID, characterID uint) (*models.FavoriteCharacter, error) {
	favorite := &models.FavoriteCharacter{UserID: userID, CharacterID: characterID}
	if err := s.repo.AddCharacter(ctx, favorite); err != nil {
		return nil, err
	}
	metrics.RecordCreated("favorite_character")
	publishCreated(s.events, "favorite_character", favorite.Serialize())
	return favorite, nil
}

// AddFavoritePlanet inserts a new row even if the same pair already exists.
func (s *FavoriteService) AddFavoritePlanet(ctx context.Context, userID, planetID uint) (*models.FavoritePlanet, error) {
	favorite := &models.FavoritePlanet{UserID: userID, PlanetID: planetID}
	if err := s.repo.AddPlanet(ctx, favorite); err != nil {
		return nil, err
	}
	metrics.RecordCreated("favorite_planet")
	publishCreated(s.events, "favorite_planet", favorite.Serialize())
	return favorite, nil
}
