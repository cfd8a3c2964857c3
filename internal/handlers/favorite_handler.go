package handlers

import (
	"starwars/internal/models"
	"starwars/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler handles the favorite characters and planets of a user.
type FavoriteHandler struct {
	service *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
	}
}

// RegisterRoutes registers the favorite routes under /user/:user_id.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user/:user_id")
	userRoutes.Get("/favorite_character", h.HandleGetFavoriteCharacters)
	userRoutes.Get("/favorite_planet", h.HandleGetFavoritePlanets)
	userRoutes.Post("/favorite_character/character/:id", h.HandleAddFavoriteCharacter)
	userRoutes.Post("/favorite_planet/planet/:id", h.HandleAddFavoritePlanet)
}

// HandleGetFavoriteCharacters lists the favorite characters of a user.
func (h *FavoriteHandler) HandleGetFavoriteCharacters(c *fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	favorites, err := h.service.GetFavoriteCharacters(c.UserContext(), userID)
	if err != nil {
		return err
	}

	results := make([]models.FavoriteCharacterView, 0, len(favorites))
	for _, favorite := range favorites {
		results = append(results, favorite.Serialize())
	}
	return c.JSON(results)
}

// HandleGetFavoritePlanets lists the favorite planets of a user.
func (h *FavoriteHandler) HandleGetFavoritePlanets(c *fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	favorites, err := h.service.GetFavoritePlanets(c.UserContext(), userID)
	if err != nil {
		return err
	}

	results := make([]models.FavoritePlanetView, 0, len(favorites))
	for _, favorite := range favorites {
		results = append(results, favorite.Serialize())
	}
	return c.JSON(results)
}

// HandleAddFavoriteCharacter inserts a favorite row. It does not check for an existing
// row with the same pair.
func (h *FavoriteHandler) HandleAddFavoriteCharacter(c *fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	characterID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	favorite, err := h.service.AddFavoriteCharacter(c.UserContext(), userID, characterID)
	if err != nil {
		return storageError(c, err, "user not found", "referenced user or character does not exist")
	}
	return c.JSON(favorite.Serialize())
}

// HandleAddFavoritePlanet inserts a favorite planet row for a user.
func (h *FavoriteHandler) HandleAddFavoritePlanet(c *fiber.Ctx) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	planetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	favorite, err := h.service.AddFavoritePlanet(c.UserContext(), userID, planetID)
	if err != nil {
		return storageError(c, err, "user not found", "referenced user or planet does not exist")
	}
	return c.JSON(favorite.Serialize())
}
