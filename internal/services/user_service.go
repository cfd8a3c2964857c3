package services

import (
	"context"
	"fmt"

	"starwars/internal/metrics"
	"starwars/internal/models"
	"starwars/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic related to users.
type UserService struct {
	repo   repositories.UserRepository
	events EventPublisher
}

// NewUserService creates a new UserService. events may be nil.
func NewUserService(repo repositories.UserRepository, events EventPublisher) *UserService {
	return &UserService{
		repo:   repo,
		events: events,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}

// CreateUser hashes the password and stores a new user.
func (s *UserService) CreateUser(ctx context.Context, email, password string, active bool) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		IsActive: active,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	metrics.RecordCreated("user")
	publishCreated(s.events, "user", user.Serialize())
	return user, nil
}
