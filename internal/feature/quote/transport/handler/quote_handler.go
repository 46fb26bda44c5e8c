// Package handler はquoteフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/transport/http/dto"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/usecase"
)

// QuoteUsecase は銘柄検索のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	Search(ctx context.Context, symbol string) (*usecase.SearchResult, error)
}

// QuoteHandler は銘柄検索のHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuote はティッカーシンボルを受け取り、チャート描画に必要なデータ一式をJSONで返します。
//
// エンドポイント例:
// GET /api/quote/AAPL
//
// 失敗時は部分的なデータを返さず、単一のユーザー向けメッセージだけを返します。
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	symbol := c.Param("symbol")

	result, err := h.uc.Search(c.Request.Context(), symbol)
	if err != nil {
		status, msg := mapSearchError(err)
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}

	// データをフォーマット
	quarters := make([]dto.QuarterResponse, 0, len(result.Quarters))
	for _, q := range result.Quarters {
		quarters = append(quarters, dto.QuarterResponse{
			Label:    q.Label,
			Revenue:  q.RevenueB,
			Expenses: q.ExpensesB,
			Profit:   q.ProfitB,
			PE:       q.PE,
			ROE:      q.ROE,
		})
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{
		Company: dto.CompanyResponse{
			Symbol:   result.Company.Symbol,
			Name:     result.Company.Name,
			Exchange: result.Company.Exchange,
			Currency: result.Company.Currency,
		},
		Quarters: quarters,
		Prices: dto.PriceSeriesResponse{
			Dates:  result.Prices.Dates,
			Prices: result.Prices.Prices,
		},
	})
}

// mapSearchError はドメインエラーをHTTPステータスと単一のユーザー向けメッセージに変換します。
func mapSearchError(err error) (int, string) {
	var statusErr *domain.StatusError
	switch {
	case errors.Is(err, domain.ErrUnsupportedSymbol):
		return http.StatusBadRequest, "This symbol is not in the supported set"
	case errors.Is(err, domain.ErrInvalidTicker):
		return http.StatusNotFound, "Company not found. Check the ticker symbol"
	case errors.Is(err, domain.ErrNoData):
		return http.StatusNotFound, "No financial data available for this company"
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "Data provider rate limit reached. Try again later"
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusBadGateway, "The data provider rejected the request authorization"
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, fmt.Sprintf("The data provider returned an error (status %d)", statusErr.Code)
	default:
		return http.StatusBadGateway, "Network error while contacting the data provider"
	}
}
