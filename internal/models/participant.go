package models

import (
	"time"
)

// Participant 表示用戶與房間之間的成員關係
type Participant struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	RoomID   uint      `gorm:"not null;uniqueIndex:idx_participant_room_user" json:"roomId"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_participant_room_user" json:"userId"`
	JoinedAt time.Time `json:"joinedAt"`
}
