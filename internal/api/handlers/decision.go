package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dicey_decisions/internal/models"
	"dicey_decisions/internal/service"
)

// DecisionHandler 處理投票與定案相關的請求
type DecisionHandler struct {
	decisionService *service.DecisionService
}

// NewDecisionHandler 創建一個新的 DecisionHandler 實例
func NewDecisionHandler(decisionService *service.DecisionService) *DecisionHandler {
	return &DecisionHandler{decisionService: decisionService}
}

// OpenVoting 由房主開始投票
func (h *DecisionHandler) OpenVoting(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.decisionService.OpenVoting(roomID, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "投票開始"})
}

// CloseVoting 由房主結束投票
func (h *DecisionHandler) CloseVoting(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.decisionService.CloseVoting(roomID, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "投票結束"})
}

// CastVote 投下或改投一票
func (h *DecisionHandler) CastVote(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		OptionID uint `json:"optionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vote, err := h.decisionService.CastVote(roomID, input.OptionID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vote)
}

// GetTally 取得房間目前的計票結果
func (h *DecisionHandler) GetTally(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tally, err := h.decisionService.GetTally(roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tally)
}

// CompleteDecision 由房主定案，必要時指定平手的決勝方式
func (h *DecisionHandler) CompleteDecision(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Tiebreaker string `json:"tiebreaker"`
	}
	// 請求體是可選的，沒有內容時使用預設決勝方式
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	room, err := h.decisionService.CompleteDecision(roomID, currentUserID(c), models.TiebreakerMethod(input.Tiebreaker))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}
