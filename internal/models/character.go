package models

// Character is a person from the saga.
type Character struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(120);uniqueIndex;not null"`
	Height    int    `gorm:"not null"`
	Gender    string `gorm:"not null"`
	EyesColor string `gorm:"not null"`

	FavoriteCharacters []FavoriteCharacter `gorm:"foreignKey:CharacterID"`
}

func (Character) TableName() string {
	return "character"
}

// CharacterView is the JSON shape of a Character.
type CharacterView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Height    int    `json:"height"`
	Gender    string `json:"gender"`
	EyesColor string `json:"eyes_color"`
}

func (c Character) Serialize() CharacterView {
	return CharacterView{
		ID:        c.ID,
		Name:      c.Name,
		Height:    c.Height,
		Gender:    c.Gender,
		EyesColor: c.EyesColor,
	}
}
