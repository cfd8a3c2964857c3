package handlers

import (
	"starwars/internal/models"
	"starwars/internal/services"

	"github.com/gofiber/fiber/v2"
)

const usersMessage = "Estos son los usuarios"

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/user", h.HandleGetUsers)
}

// HandleGetUsers lists every user without their passwords.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers(c.UserContext())
	if err != nil {
		return err
	}

	results := make([]models.UserView, 0, len(users))
	for _, user := range users {
		results = append(results, user.Serialize())
	}
	return c.JSON(fiber.Map{
		"msg":   usersMessage,
		"users": results,
	})
}
