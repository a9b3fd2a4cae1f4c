package models

import (
	"time"
)

// Option 表示房間內的一個候選選項
type Option struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RoomID      uint      `gorm:"index;not null" json:"roomId"`
	Text        string    `gorm:"not null" json:"text"`
	CreatedByID uint      `gorm:"not null" json:"createdById"`
	CreatedAt   time.Time `json:"createdAt"`
}
