package model

const (
	RoleConsumer = "consumer"
	RoleCreator  = "creator"
)

type User struct {
	BaseModel
	// Email is stored lowercased so uniqueness is case-insensitive.
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	DisplayName  string `gorm:"not null" json:"display_name"`
	Role         string `gorm:"not null;default:consumer" json:"role"`
}

func (User) TableName() string {
	return "users"
}
