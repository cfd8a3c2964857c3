package repositories

import (
	"context"
	"fmt"

	"starwars/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines data access for the favorite join rows.
type FavoriteRepository interface {
	ListCharactersByUser(ctx context.Context, userID uint) ([]models.FavoriteCharacter, error)
	ListPlanetsByUser(ctx context.Context, userID uint) ([]models.FavoritePlanet, error)
	AddCharacter(ctx context.Context, favorite *models.FavoriteCharacter) error
	AddPlanet(ctx context.Context, favorite *models.FavoritePlanet) error
}

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
// Inserts do not check for an existing (user, target) pair.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{db: db}
}

// ListCharactersByUser returns the favorite character rows of a user.
func (r *GORMFavoriteRepository) ListCharactersByUser(ctx context.Context, userID uint) ([]models.FavoriteCharacter, error) {
	favorites := []models.FavoriteCharacter{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorite characters of user %d: %w", userID, err)
	}
	return favorites, nil
}

// ListPlanetsByUser returns the favorite planet rows of a user.
func (r *GORMFavoriteRepository) ListPlanetsByUser(ctx context.Context, userID uint) ([]models.FavoritePlanet, error) {
	favorites := []models.FavoritePlanet{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorite planets of user %d: %w", userID, err)
	}
	return favorites, nil
}

// AddCharacter inserts the row without touching the User or Character associations.
func (r *GORMFavoriteRepository) AddCharacter(ctx context.Context, favorite *models.FavoriteCharacter) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to add favorite character: %w", classify(err))
	}
	return nil
}

func (r *GORMFavoriteRepository) AddPlanet(ctx context.Context, favorite *models.FavoritePlanet) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to add favorite planet: %w", classify(err))
	}
	return nil
}
