package models

// FavoriteCharacter links a User to a Character. The same pair may appear more than once.
type FavoriteCharacter struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"not null;index"`
	CharacterID uint `gorm:"not null;index"`

	User      User      `gorm:"foreignKey:UserID"`
	Character Character `gorm:"foreignKey:CharacterID"`
}

func (FavoriteCharacter) TableName() string {
	return "favorite_character"
}

// FavoriteCharacterView only carries the scalar foreign keys, never the related rows.
type FavoriteCharacterView struct {
	ID          uint `json:"id"`
	UserID      uint `json:"user_id"`
	CharacterID uint `json:"character_id"`
}

func (f FavoriteCharacter) Serialize() FavoriteCharacterView {
	return FavoriteCharacterView{
		ID:          f.ID,
		UserID:      f.UserID,
		CharacterID: f.CharacterID,
	}
}

// FavoritePlanet links a User to a Planet. The same pair may appear more than once.
type FavoritePlanet struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"not null;index"`
	PlanetID uint `gorm:"not null;index"`

	User   User   `gorm:"foreignKey:UserID"`
	Planet Planet `gorm:"foreignKey:PlanetID"`
}

func (FavoritePlanet) TableName() string {
	return "favorite_planet"
}

type FavoritePlanetView struct {
	ID       uint `json:"id"`
	UserID   uint `json:"user_id"`
	PlanetID uint `json:"planet_id"`
}

func (f FavoritePlanet) Serialize() FavoritePlanetView {
	return FavoritePlanetView{
		ID:       f.ID,
		UserID:   f.UserID,
		PlanetID: f.PlanetID,
	}
}
