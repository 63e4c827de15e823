package model

import "time"

// BaseModel stands in for gorm.Model so IDs are uint64 everywhere and
// there is no DeletedAt column: likes are physically deleted and
// re-created under a composite unique index, which soft deletes would
// break.
type BaseModel struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
