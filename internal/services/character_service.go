package services

import (
	"context"

	"starwars/internal/metrics"
	"starwars/internal/models"
	"starwars/internal/repositories"
)

// CharacterService handles business logic related to characters.
type CharacterService struct {
	repo   repositories.CharacterRepository
	events EventPublisher
}

// NewCharacterService creates a new CharacterService. events may be nil.
func NewCharacterService(repo repositories.CharacterRepository, events EventPublisher) *CharacterService {
	return &CharacterService{
		repo:   repo,
		events: events,
	}
}

// GetAllCharacters retrieves all characters.
func (s *CharacterService) GetAllCharacters(ctx context.Context) ([]models.Character, error) {
	return s.repo.GetAll(ctx)
}

// GetCharacterByID retrieves a single character by its ID.
func (s *CharacterService) GetCharacterByID(ctx context.Context, id uint) (*models.Character, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateCharacter stores a new character.
func (s *CharacterService) CreateCharacter(ctx context.Context, character *models.Character) error {
	if err := s.repo.Create(ctx, character); err != nil {
		return err
	}
	metrics.RecordCreated("character")
	publishCreated(s.events, "character", character.Serialize())
	return nil
}
