package router

import (
	lastsearchhandler "github.com/MeckMan2025/Meckman-Finance/internal/feature/lastsearch/transport/handler"
	quotehandler "github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/transport/handler"
	symbollisthandler "github.com/MeckMan2025/Meckman-Finance/internal/feature/symbollist/transport/handler"
	"github.com/MeckMan2025/Meckman-Finance/internal/platform/http/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(quote *quotehandler.QuoteHandler, symbol *symbollisthandler.SymbolHandler,
	last *lastsearchhandler.LastSearchHandler) *gin.Engine {
	r := gin.Default()

	// ローカルのフロントエンドからの呼び出しを許可
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		// 銘柄検索（プロフィール・四半期業績・株価）
		api.GET("/quote/:symbol", quote.GetQuote)
		// 対応銘柄一覧
		api.GET("/symbols", symbol.List)
		// 最後に検索した銘柄
		api.GET("/last-search", last.Get)
	}

	return r
}
