package models

import (
	"gorm.io/gorm"
)

// Room 表示一個決策房間
type Room struct {
	gorm.Model
	Title                         string     `gorm:"not null"`
	Description                   string
	Code                          string     `gorm:"uniqueIndex;not null"` // 房間邀請碼，6 碼
	OwnerID                       uint       `gorm:"not null"`
	MaxParticipants               *int       // nil 表示不限制人數
	AllowParticipantsToAddOptions bool       `gorm:"not null;default:true"`
	Status                        RoomStatus `gorm:"not null;default:'waiting'"`
	IsCompleted                   bool       `gorm:"not null;default:false"`
	WinningOptionID               *uint      // 決策完成前為 nil
	TiebreakerUsed                *string    // 沒有平手時為 nil
}

// RoomStatus 定義房間狀態的類型
type RoomStatus string

const (
	RoomStatusWaiting   RoomStatus = "waiting"   // 收集選項中
	RoomStatusVoting    RoomStatus = "voting"    // 投票中
	RoomStatusResults   RoomStatus = "results"   // 投票已截止，等待房主定案
	RoomStatusCompleted RoomStatus = "completed" // 已定案，不可再變更
)

// TiebreakerMethod 定義平手時的決勝方式
type TiebreakerMethod string

const (
	TiebreakerRandom  TiebreakerMethod = "random"  // 任意數量的平手選項
	TiebreakerDice    TiebreakerMethod = "dice"    // 最多 6 個平手選項，對應骰子 1~6 點
	TiebreakerCoin    TiebreakerMethod = "coin"    // 僅限 2 個平手選項
	TiebreakerSpinner TiebreakerMethod = "spinner" // 任意數量的平手選項
)
