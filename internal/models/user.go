package models

// User represents an account that can mark characters and planets as favorites.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"type:varchar(120);uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt hash, never serialized
	IsActive bool   `gorm:"not null"`

	FavoriteCharacters []FavoriteCharacter `gorm:"foreignKey:UserID"`
	FavoritePlanets    []FavoritePlanet    `gorm:"foreignKey:UserID"`
}

// TableName keeps the singular table name used by the existing schema.
func (User) TableName() string {
	return "user"
}

// UserView is the public representation of a User.
type UserView struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// Serialize returns the public fields of the user. The password and the active flag are
// never included.
func (u User) Serialize() UserView {
	return UserView{
		ID:    u.ID,
		Email: u.Email,
	}
}
