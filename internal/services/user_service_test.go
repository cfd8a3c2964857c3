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
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_GetAllUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)
	ctx := context.Background()

	expected := []models.User{{ID: 1, Email: "luke@rebellion.org", IsActive: true}}
	mockRepo.On("GetAll", ctx).Return(expected, nil).Once()

	users, err := service.GetAllUsers(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expected, users)
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUserHashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := service.CreateUser(ctx, "luke@rebellion.org", "use-the-force", true)

	assert.NoError(t, err)
	assert.Equal(t, "luke@rebellion.org", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "use-the-force", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("use-the-force")))
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUserDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("failed to create user: %w", repositories.ErrConflict)).Once()

	user, err := service.CreateUser(ctx, "luke@rebellion.org", "pw", true)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, repositories.ErrConflict)
	mockRepo.AssertExpectations(t)
}
