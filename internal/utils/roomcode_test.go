package utils

import (
	"strings"
	"testing"
)

func TestGenerateRoomCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateRoomCode()
		if len(code) != RoomCodeLength {
			t.Fatalf("code %q length = %d, want %d", code, len(code), RoomCodeLength)
		}
		for _, ch := range code {
			if !strings.ContainsRune(roomCodeChars, ch) {
				t.Fatalf("code %q contains invalid character %q", code, ch)
			}
		}
		// 容易混淆的字元不該出現
		if strings.ContainsAny(code, "0O1I") {
			t.Fatalf("code %q contains ambiguous character", code)
		}
	}
}
