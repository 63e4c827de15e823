package model

// Rating has upsert semantics: one row per (user, video), a second
// rating overwrites Stars and UpdatedAt.
type Rating struct {
	BaseModel
	UserID  uint64 `gorm:"not null;uniqueIndex:idx_rating_user_video" json:"user_id"`
	VideoID uint64 `gorm:"not null;uniqueIndex:idx_rating_user_video" json:"video_id"`
	Stars   int    `gorm:"not null" json:"stars"`
}

func (Rating) TableName() string {
	return "ratings"
}
