package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dicey_decisions/internal/api/handlers"
	"dicey_decisions/internal/middleware"
	"dicey_decisions/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.User)
	roomHandler := handlers.NewRoomHandler(services.Room)
	optionHandler := handlers.NewOptionHandler(services.Option)
	decisionHandler := handlers.NewDecisionHandler(services.Decision)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 用戶認證相關
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware())
	{
		// 決策房間相關
		rooms := authorized.Group("/rooms")
		{
			// 基本操作
			rooms.GET("", roomHandler.ListRooms)                 // 獲取用戶參與的房間列表
			rooms.POST("", roomHandler.CreateRoom)               // 創建房間
			rooms.POST("/join", roomHandler.JoinRoom)            // 以邀請碼加入房間
			rooms.GET("/code/:code", roomHandler.GetRoomByCode)  // 以邀請碼預覽房間
			rooms.GET("/:id", roomHandler.GetRoom)               // 獲取房間信息
			rooms.DELETE("/:id", roomHandler.DeleteRoom)         // 刪除房間

			// 選項
			rooms.POST("/:id/options", optionHandler.AddOption)  // 新增選項
			rooms.GET("/:id/options", optionHandler.ListOptions) // 列出選項

			// 投票與定案
			rooms.POST("/:id/open", decisionHandler.OpenVoting)          // 開始投票
			rooms.POST("/:id/close", decisionHandler.CloseVoting)        // 結束投票
			rooms.POST("/:id/votes", decisionHandler.CastVote)           // 投票或改投
			rooms.GET("/:id/tally", decisionHandler.GetTally)            // 計票結果
			rooms.POST("/:id/complete", decisionHandler.CompleteDecision) // 定案
		}
	}
}
