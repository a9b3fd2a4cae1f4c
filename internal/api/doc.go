// Package api 處理 HTTP 請求路由和處理。
//
// 這個包包含了所有決策房間相關的 HTTP 處理器（handlers）。
// 它負責將 HTTP 請求轉換為適當的服務調用，並把服務層的錯誤分類
// 對應成 HTTP 狀態碼回應給客戶端。
package api
