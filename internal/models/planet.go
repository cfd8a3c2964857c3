package models

// Planet is a world from the saga.
type Planet struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(120);uniqueIndex;not null"`
	Diameter int    `gorm:"not null"`
	Climate  string `gorm:"not null"`
	Terrain  string `gorm:"not null"`

	FavoritePlanets []FavoritePlanet `gorm:"foreignKey:PlanetID"`
}

func (Planet) TableName() string {
	return "planet"
}

// PlanetView is the JSON shape of a Planet.
type PlanetView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Diameter int    `json:"diameter"`
	Climate  string `json:"climate"`
	Terrain  string `json:"terrain"`
}

func (p Planet) Serialize() PlanetView {
	return PlanetView{
		ID:       p.ID,
		Name:     p.Name,
		Diameter: p.Diameter,
		Climate:  p.Climate,
		Terrain:  p.Terrain,
	}
}
