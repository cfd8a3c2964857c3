package services_test

import (
	"context"
	"fmt"
	"testing"

	"starwars/internal/models"
	"starwars/internal/repositories"
	"starwars/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFavoriteService_GetFavorites(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := services.NewFavoriteService(mockRepo, nil)
	ctx := context.Background()

	characters := []models.FavoriteCharacter{{ID: 1, UserID: 2, CharacterID: 3}}
	planets := []models.FavoritePlanet{{ID: 1, UserID: 2, PlanetID: 4}, {ID: 2, UserID: 2, PlanetID: 4}}
	mockRepo.On("ListCharactersByUser", ctx, uint(2)).Return(characters, nil).Once()
	mockRepo.On("ListPlanetsByUser", ctx, uint(2)).Return(planets, nil).Once()

	gotCharacters, err := service.GetFavoriteCharacters(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, characters, gotCharacters)

	gotPlanets, err := service.GetFavoritePlanets(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, gotPlanets, 2)
	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_AddFavoriteCharacter(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewFavoriteService(mockRepo, mockPublisher)
	ctx := context.Background()

	mockRepo.On("AddCharacter", ctx, &models.FavoriteCharacter{UserID: 1, CharacterID: 7}).Run(func(args mock.Arguments) {
		args.Get(1).(*models.FavoriteCharacter).ID = 11
	}).Return(nil).Once()
	mockPublisher.On("Publish", "favorite_character.created", mock.Anything).Return(nil).Once()

	favorite, err := service.AddFavoriteCharacter(ctx, 1, 7)

	assert.NoError(t, err)
	assert.Equal(t, models.FavoriteCharacterView{ID: 11, UserID: 1, CharacterID: 7}, favorite.Serialize())
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestFavoriteService_AddFavoritePlanet(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := services.NewFavoriteService(mockRepo, nil)
	ctx := context.Background()

	mockRepo.On("AddPlanet", ctx, &models.FavoritePlanet{UserID: 1, PlanetID: 2}).Return(nil).Once()
	favorite, err := service.AddFavoritePlanet(ctx, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), favorite.PlanetID)

	// Test unknown user rejected by the foreign key
	mockRepo.On("AddPlanet", ctx, &models.FavoritePlanet{UserID: 404, PlanetID: 2}).
		Return(fmt.Errorf("failed to add favorite planet: %w", repositories.ErrConflict)).Once()
	favorite, err = service.AddFavoritePlanet(ctx, 404, 2)
	assert.Nil(t, favorite)
	assert.ErrorIs(t, err, repositories.ErrConflict)
	mockRepo.AssertExpectations(t)
}
