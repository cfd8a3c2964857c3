package handlers

import (
	"starwars/internal/models"
	"starwars/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreatePlanetRequest is the body of POST /planet. All fields are required.
type CreatePlanetRequest struct {
	Name     string  `json:"name" validate:"required"`
	Diameter *int    `json:"diameter" validate:"required"`
	Climate  *string `json:"climate" validate:"required"`
	Terrain  *string `json:"terrain" validate:"required"`
}

// PlanetHandler handles HTTP requests for planets.
type PlanetHandler struct {
	service  *services.PlanetService
	validate *validator.Validate
}

// NewPlanetHandler creates a new PlanetHandler.
func NewPlanetHandler(service *services.PlanetService) *PlanetHandler {
	return &PlanetHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the planet routes with the Fiber app.
func (h *PlanetHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/planet", h.HandleGetPlanets)
	router.Get("/planet/:id", h.HandleGetPlanetByID)
	router.Post("/planet", h.HandleCreatePlanet)
}

// HandleGetPlanets retrieves all planets.
func (h *PlanetHandler) HandleGetPlanets(c *fiber.Ctx) error {
	planets, err := h.service.GetAllPlanets(c.UserContext())
	if err != nil {
		return err
	}

	results := make([]models.PlanetView, 0, len(planets))
	for _, planet := range planets {
		results = append(results, planet.Serialize())
	}
	return c.JSON(results)
}

// HandleGetPlanetByID retrieves a single planet, or 404 if it does not exist.
func (h *PlanetHandler) HandleGetPlanetByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	planet, err := h.service.GetPlanetByID(c.UserContext(), id)
	if err != nil {
		return storageError(c, err, "planet not found", "planet already exists")
	}
	return c.JSON(planet.Serialize())
}

// HandleCreatePlanet stores a new planet.
func (h *PlanetHandler) HandleCreatePlanet(c *fiber.Ctx) error {
	var req CreatePlanetRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return err
	}

	planet := &models.Planet{
		Name:     req.Name,
		Diameter: *req.Diameter,
		Climate:  *req.Climate,
		Terrain:  *req.Terrain,
	}
	if err := h.service.CreatePlanet(c.UserContext(), planet); err != nil {
		return storageError(c, err, "planet not found", "planet already exists")
	}
	return c.JSON(fiber.Map{
		"planet created succesfully": planet.Serialize(),
	})
}
