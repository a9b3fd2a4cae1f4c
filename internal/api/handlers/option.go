package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dicey_decisions/internal/service"
)

// OptionHandler 處理房間選項相關的請求
type OptionHandler struct {
	optionService *service.OptionService
}

// NewOptionHandler 創建一個新的 OptionHandler 實例
func NewOptionHandler(optionService *service.OptionService) *OptionHandler {
	return &OptionHandler{optionService: optionService}
}

// AddOption 在房間內新增候選選項
func (h *OptionHandler) AddOption(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	option, err := h.optionService.AddOption(roomID, input.Text, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, option)
}

// ListOptions 列出房間內的所有選項
func (h *OptionHandler) ListOptions(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	options, err := h.optionService.ListOptions(roomID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, options)
}
