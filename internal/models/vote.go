package models

import (
	"time"
)

// Vote 表示一位用戶在一個房間內的一票
// 唯一索引保證每個 (房間, 用戶) 最多只有一票
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"not null;uniqueIndex:idx_vote_room_user" json:"roomId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_vote_room_user" json:"userId"`
	OptionID  uint      `gorm:"not null" json:"optionId"`
	CreatedAt time.Time `json:"createdAt"`
}
