package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dicey_decisions/internal/apperrors"
)

// respondError 將服務層的錯誤分類對應到 HTTP 狀態碼
func respondError(c *gin.Context, err error) {
	var status int
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindPermissionDenied:
		status = http.StatusForbidden
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	case apperrors.KindInvalidState:
		status = http.StatusConflict
	case apperrors.KindCapacityExceeded:
		status = http.StatusConflict
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "伺服器內部錯誤"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// currentUserID 取出 AuthMiddleware 放進上下文的用戶 ID
func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	return userID.(uint)
}

// parseIDParam 解析路徑中的數字 ID，失敗時直接回應 400
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的 " + name})
		return 0, false
	}
	return uint(id), true
}
