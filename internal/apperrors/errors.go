package apperrors

import (
	"errors"
)

// Kind 表示錯誤的分類，供 API 層對應到 HTTP 狀態碼
type Kind int

const (
	KindUnknown          Kind = iota
	KindNotFound              // 房間、選項或用戶不存在
	KindPermissionDenied      // 非房主執行房主限定操作，或非參與者執行參與者限定操作
	KindInvalidState          // 房間目前的狀態不允許此操作
	KindValidation            // 請求內容不合法
	KindCapacityExceeded      // 房間人數已滿
)

// Error 是服務層統一回傳的錯誤類型
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func PermissionDenied(message string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: message}
}

func InvalidState(message string) *Error {
	return &Error{Kind: KindInvalidState, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func CapacityExceeded(message string) *Error {
	return &Error{Kind: KindCapacityExceeded, Message: message}
}

// KindOf 取出錯誤的分類，不是 *Error 時回傳 KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
