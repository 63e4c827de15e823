package model

// Like existence means "liked". The composite unique index lets the
// database reject duplicate likes so concurrent requests need no
// coordination beyond ON CONFLICT DO NOTHING.
type Like struct {
	BaseModel
	UserID  uint64 `gorm:"not null;uniqueIndex:idx_like_user_video" json:"user_id"`
	VideoID uint64 `gorm:"not null;uniqueIndex:idx_like_user_video" json:"video_id"`
}

func (Like) TableName() string {
	return "likes"
}
