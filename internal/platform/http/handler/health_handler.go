// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import "github.com/gin-gonic/gin"

// Health はサービス死活監視用の /healthz エンドポイントを処理します。
// メソッドに応じてレスポンスし、中間キャッシュを防止します。
func Health(c *gin.Context) {
	// ヘルス応答はキャッシュさせない
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
