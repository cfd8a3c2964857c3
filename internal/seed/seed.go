// Package seed loads demo data into an empty database.
package seed

import (
	"context"
	"errors"

	"starwars/internal/logging"
	"starwars/internal/models"
	"starwars/internal/repositories"
	"starwars/internal/services"
)

// Services groups the services seeding writes through.
type Services struct {
	Users      *services.UserService
	Characters *services.CharacterService
	Planets    *services.PlanetService
}

// Result counts the rows inserted by Run.
type Result struct {
	Users      int
	Characters int
	Planets    int
}

var demoUsers = []struct {
	Email    string
	IsActive bool
}{
	{"luke@rebellion.org", true},
	{"leia@alderaan.gov", true},
	{"han@falcon.net", true},
	{"vader@empire.gov", false},
}

var demoCharacters = []models.Character{
	{Name: "Luke Skywalker", Height: 172, Gender: "male", EyesColor: "blue"},
	{Name: "Leia Organa", Height: 150, Gender: "female", EyesColor: "brown"},
	{Name: "Han Solo", Height: 180, Gender: "male", EyesColor: "brown"},
	{Name: "Darth Vader", Height: 202, Gender: "male", EyesColor: "yellow"},
	{Name: "Yoda", Height: 66, Gender: "male", EyesColor: "brown"},
}

var demoPlanets = []models.Planet{
	{Name: "Tatooine", Diameter: 10465, Climate: "arid", Terrain: "desert"},
	{Name: "Alderaan", Diameter: 12500, Climate: "temperate", Terrain: "grasslands, mountains"},
	{Name: "Hoth", Diameter: 7200, Climate: "frozen", Terrain: "tundra, ice caves"},
	{Name: "Dagobah", Diameter: 8900, Climate: "murky", Terrain: "swamp, jungles"},
}

// Run inserts the demo users, characters and planets. Rows that already exist are
// skipped, so running it twice is harmless.
func Run(ctx context.Context, svc Services, password string) (Result, error) {
	var res Result

	for _, u := range demoUsers {
		_, err := svc.Users.CreateUser(ctx, u.Email, password, u.IsActive)
		if skip, err := skipConflict(err, "user", u.Email); err != nil {
			return res, err
		} else if !skip {
			res.Users++
		}
	}

	for i := range demoCharacters {
		character := demoCharacters[i]
		err := svc.Characters.CreateCharacter(ctx, &character)
		if skip, err := skipConflict(err, "character", character.Name); err != nil {
			return res, err
		} else if !skip {
			res.Characters++
		}
	}

	for i := range demoPlanets {
		planet := demoPlanets[i]
		err := svc.Planets.CreatePlanet(ctx, &planet)
		if skip, err := skipConflict(err, "planet", planet.Name); err != nil {
			return res, err
		} else if !skip {
			res.Planets++
		}
	}

	logging.Info().
		Int("users", res.Users).
		Int("characters", res.Characters).
		Int("planets", res.Planets).
		Msg("seed finished")
	return res, nil
}

func skipConflict(err error, entity, key string) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, repositories.ErrConflict) {
		logging.Info().Str("entity", entity).Str("key", key).Msg("already seeded, skipping")
		return true, nil
	}
	return false, err
}
