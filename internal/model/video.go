package model

type Video struct {
	BaseModel
	Title     string `gorm:"not null" json:"title"`
	Publisher string `json:"publisher"`
	Producer  string `json:"producer"`
	Genre     string `json:"genre"`
	AgeRating string `json:"age_rating"`
	// Filepath is the public web path (/uploads/videos/<name>), not the
	// on-disk location. The seed loader relies on its uniqueness.
	Filepath string `gorm:"uniqueIndex;not null" json:"filepath"`
	UserID   uint64 `gorm:"not null;index" json:"user_id"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Video) TableName() string {
	return "videos"
}
