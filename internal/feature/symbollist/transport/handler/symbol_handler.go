package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/symbollist/domain/entity"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/symbollist/transport/http/dto"
)

// SymbolUsecase は許可リストに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListSupportedSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolHandler はサポート銘柄一覧のHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List はサポート対象銘柄の一覧を取得するAPIです。
// UIの銘柄ピッカーがこの一覧から選択肢を構築します。
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListSupportedSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.SymbolItem{Code: s.Code, Name: s.Name})
	}
	c.JSON(http.StatusOK, out)
}
