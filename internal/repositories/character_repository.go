package repositories

import (
	"context"
	"errors"
	"fmt"

	"starwars/internal/models"

	"gorm.io/gorm"
)

// CharacterRepository defines the interface for character data access.
type CharacterRepository interface {
	GetAll(ctx context.Context) ([]models.Character, error)
	GetByID(ctx context.Context, id uint) (*models.Character, error)
	Create(ctx context.Context, character *models.Character) error
}

// GORMCharacterRepository is a GORM implementation of CharacterRepository.
type GORMCharacterRepository struct {
	db *gorm.DB
}

// NewGORMCharacterRepository creates a new instance of GORMCharacterRepository.
func NewGORMCharacterRepository(db *gorm.DB) *GORMCharacterRepository {
	return &GORMCharacterRepository{db: db}
}

// GetAll retrieves all characters ordered by id.
func (r *GORMCharacterRepository) GetAll(ctx context.Context) ([]models.Character, error) {
	characters := []models.Character{}
	if err := r.db.WithContext(ctx).Order("id").Find(&characters).Error; err != nil {
		return nil, fmt.Errorf("failed to get all characters: %w", err)
	}
	return characters, nil
}

// GetByID retrieves a character by its ID, wrapping ErrNotFound when absent.
func (r *GORMCharacterRepository) GetByID(ctx context.Context, id uint) (*models.Character, error) {
	var character models.Character
	if err := r.db.WithContext(ctx).First(&character, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("character with ID %d %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get character by ID %d: %w", id, err)
	}
	return &character, nil
}

// Create inserts a new character. A duplicate name yields ErrConflict.
func (r *GORMCharacterRepository) Create(ctx context.Context, character *models.Character) error {
	if err := r.db.WithContext(ctx).Create(character).Error; err != nil {
		return fmt.Errorf("failed to create character: %w", classify(err))
	}
	return nil
}
