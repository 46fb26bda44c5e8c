package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/lastsearch/transport/http/dto"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/lastsearch/usecase"
)

// LastSearchUsecase は最後に検索された銘柄の読み書きを提供します。
type LastSearchUsecase interface {
	Get(ctx context.Context) (string, error)
}

// LastSearchHandler は最終検索銘柄APIのHTTPハンドラです。
type LastSearchHandler struct {
	usecase LastSearchUsecase
}

// NewLastSearchHandler はLastSearchHandlerを生成します。
func NewLastSearchHandler(u LastSearchUsecase) *LastSearchHandler {
	return &LastSearchHandler{usecase: u}
}

// Get は最後に検索された銘柄を返します。未記録の場合は204を返します。
func (h *LastSearchHandler) Get(c *gin.Context) {
	symbol, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load the last searched symbol"})
		return
	}

	c.JSON(http.StatusOK, dto.LastSearchResponse{Symbol: symbol})
}
