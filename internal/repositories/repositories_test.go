package repositories_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"starwars/internal/database"
	"starwars/internal/models"
	"starwars/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB returns a migrated in-memory sqlite database private to the test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := database.Open(database.Config{
		URL:      fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestGORMPlanetRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMPlanetRepository(openTestDB(t))

	planets, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, planets)
	assert.Empty(t, planets)

	tatooine := &models.Planet{Name: "Tatooine", Diameter: 10465, Climate: "arid", Terrain: "desert"}
	require.NoError(t, repo.Create(ctx, tatooine))
	assert.NotZero(t, tatooine.ID)

	fetched, err := repo.GetByID(ctx, tatooine.ID)
	require.NoError(t, err)
	assert.Equal(t, tatooine.Serialize(), fetched.Serialize())

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Contains(t, err.Error(), "planet with ID 999 not found")

	err = repo.Create(ctx, &models.Planet{Name: "Tatooine", Diameter: 1, Climate: "x", Terrain: "y"})
	assert.ErrorIs(t, err, repositories.ErrConflict)
}

func TestGORMCharacterRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMCharacterRepository(openTestDB(t))

	luke := &models.Character{Name: "Luke Skywalker", Height: 172, Gender: "male", EyesColor: "blue"}
	leia := &models.Character{Name: "Leia Organa", Height: 150, Gender: "female", EyesColor: "brown"}
	require.NoError(t, repo.Create(ctx, luke))
	require.NoError(t, repo.Create(ctx, leia))

	characters, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, characters, 2)
	assert.Equal(t, "Luke Skywalker", characters[0].Name)
	assert.Equal(t, "Leia Organa", characters[1].Name)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = repo.Create(ctx, &models.Character{Name: "Luke Skywalker", Height: 1, Gender: "-", EyesColor: "-"})
	assert.ErrorIs(t, err, repositories.ErrConflict)
}

func TestGORMUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMUserRepository(openTestDB(t))

	user := &models.User{Email: "han@falcon.net", Password: "hash", IsActive: true}
	require.NoError(t, repo.Create(ctx, user))

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "han@falcon.net", users[0].Email)

	fetched, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsActive)

	_, err = repo.GetByID(ctx, user.ID+1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = repo.Create(ctx, &models.User{Email: "han@falcon.net", Password: "other"})
	assert.ErrorIs(t, err, repositories.ErrConflict)
}

func TestGORMFavoriteRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	users := repositories.NewGORMUserRepository(db)
	characters := repositories.NewGORMCharacterRepository(db)
	planets := repositories.NewGORMPlanetRepository(db)
	favorites := repositories.NewGORMFavoriteRepository(db)

	han := &models.User{Email: "han@falcon.net", Password: "hash", IsActive: true}
	leia := &models.User{Email: "leia@alderaan.gov", Password: "hash", IsActive: true}
	require.NoError(t, users.Create(ctx, han))
	require.NoError(t, users.Create(ctx, leia))
	chewie := &models.Character{Name: "Chewbacca", Height: 228, Gender: "male", EyesColor: "blue"}
	require.NoError(t, characters.Create(ctx, chewie))
	hoth := &models.Planet{Name: "Hoth", Diameter: 7200, Climate: "frozen", Terrain: "tundra"}
	require.NoError(t, planets.Create(ctx, hoth))

	// Duplicate pairs are accepted.
	for i := 0; i < 2; i++ {
		fc := &models.FavoriteCharacter{UserID: han.ID, CharacterID: chewie.ID}
		require.NoError(t, favorites.AddCharacter(ctx, fc))
		assert.NotZero(t, fc.ID)
	}
	require.NoError(t, favorites.AddPlanet(ctx, &models.FavoritePlanet{UserID: leia.ID, PlanetID: hoth.ID}))

	hanCharacters, err := favorites.ListCharactersByUser(ctx, han.ID)
	require.NoError(t, err)
	assert.Len(t, hanCharacters, 2)

	leiaCharacters, err := favorites.ListCharactersByUser(ctx, leia.ID)
	require.NoError(t, err)
	assert.NotNil(t, leiaCharacters)
	assert.Empty(t, leiaCharacters)

	leiaPlanets, err := favorites.ListPlanetsByUser(ctx, leia.ID)
	require.NoError(t, err)
	require.Len(t, leiaPlanets, 1)
	assert.Equal(t, hoth.ID, leiaPlanets[0].PlanetID)

	err = favorites.AddPlanet(ctx, &models.FavoritePlanet{UserID: 404, PlanetID: hoth.ID})
	assert.ErrorIs(t, err, repositories.ErrConflict)
}
