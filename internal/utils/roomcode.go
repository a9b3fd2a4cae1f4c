package utils

import (
	"math/rand"
)

// 排除 0/O、1/I 這類容易看錯的字元
const roomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RoomCodeLength 是房間邀請碼的長度
const RoomCodeLength = 6

// GenerateRoomCode 產生一組隨機的房間邀請碼
// 碰撞由呼叫端負責處理（查詢後重新產生）
func GenerateRoomCode() string {
	code := make([]byte, RoomCodeLength)
	for i := range code {
		code[i] = roomCodeChars[rand.Intn(len(roomCodeChars))]
	}
	return string(code)
}
