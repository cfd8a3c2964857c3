package handlers

import (
	"starwars/internal/models"
	"starwars/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateCharacterRequest is the body of POST /character. Every column is NOT NULL, so
// every field must be present; zero values are accepted.
type CreateCharacterRequest struct {
	Name      string  `json:"name" validate:"required"`
	Height    *int    `json:"height" validate:"required"`
	Gender    *string `json:"gender" validate:"required"`
	EyesColor *string `json:"eyes_color" validate:"required"`
}

// CharacterHandler handles HTTP requests for characters.
type CharacterHandler struct {
	service  *services.CharacterService
	validate *validator.Validate
}

// NewCharacterHandler creates a new CharacterHandler.
func NewCharacterHandler(service *services.CharacterService) *CharacterHandler {
	return &CharacterHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the character routes with the Fiber app.
func (h *CharacterHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/character", h.HandleGetCharacters)
	router.Get("/character/:id", h.HandleGetCharacterByID)
	router.Post("/character", h.HandleCreateCharacter)
}

// HandleGetCharacters retrieves all characters.
func (h *CharacterHandler) HandleGetCharacters(c *fiber.Ctx) error {
	characters, err := h.service.GetAllCharacters(c.UserContext())
	if err != nil {
		return err
	}

	results := make([]models.CharacterView, 0, len(characters))
	for _, character := range characters {
		results = append(results, character.Serialize())
	}
	return c.JSON(results)
}

// HandleGetCharacterByID retrieves a single character, or 404 if it does not exist.
func (h *CharacterHandler) HandleGetCharacterByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	character, err := h.service.GetCharacterByID(c.UserContext(), id)
	if err != nil {
		return storageError(c, err, "character not found", "character already exists")
	}
	return c.JSON(character.Serialize())
}

// HandleCreateCharacter stores a new character. Success is reported with 200.
func (h *CharacterHandler) HandleCreateCharacter(c *fiber.Ctx) error {
	var req CreateCharacterRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return err
	}

	character := &models.Character{
		Name:      req.Name,
		Height:    *req.Height,
		Gender:    *req.Gender,
		EyesColor: *req.EyesColor,
	}
	if err := h.service.CreateCharacter(c.UserContext(), character); err != nil {
		return storageError(c, err, "character not found", "character already exists")
	}
	return c.JSON(fiber.Map{
		"character created succesfully": character.Serialize(),
	})
}
