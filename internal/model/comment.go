package model

// Comment rows are append-only; there is no editing or threading.
type Comment struct {
	BaseModel
	UserID  uint64 `gorm:"not null;index" json:"user_id"`
	VideoID uint64 `gorm:"not null;index" json:"video_id"`
	Text    string `gorm:"type:text;not null" json:"text"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
