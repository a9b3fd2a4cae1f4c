// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前只有身份驗證中間件：解析 Bearer token 並把用戶 ID
// 放進請求上下文，供後續的處理器取用。
package middleware
