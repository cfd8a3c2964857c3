package services

import (
	"context"

	"starwars/internal/metrics"
	"starwars/internal/models"
	"starwars/internal/repositories"
)

// PlanetService handles business logic related to planets.
type PlanetService struct {
	repo   repositories.PlanetRepository
	events EventPublisher
}

// NewPlanetService creates a new PlanetService. events may be nil.
func NewPlanetService(repo repositories.PlanetRepository, events EventPublisher) *PlanetService {
	return &PlanetService{
		repo:   repo,
		events: events,
	}
}

// GetAllPlanets retrieves all planets.
func (s *PlanetService) GetAllPlanets(ctx context.Context) ([]models.Planet, error) {
	return s.repo.GetAll(ctx)
}

// GetPlanetByID retrieves a single planet by its ID.
func (s *PlanetService) GetPlanetByID(ctx context.Context, id uint) (*models.Planet, error) {
	return s.repo.GetByID(ctx, id)
}

// CreatePlanet stores a new planet.
func (s *PlanetService) CreatePlanet(ctx context.Context, planet *models.Planet) error {
	if err := s.repo.Create(ctx, planet); err != nil {
		return err
	}
	metrics.RecordCreated("planet")
	publishCreated(s.events, "planet", planet.Serialize())
	return nil
}
