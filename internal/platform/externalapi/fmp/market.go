package fmp

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain/entity"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/usecase"
	"github.com/MeckMan2025/Meckman-Finance/internal/platform/externalapi/fmp/dto"
)

// ClientがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*Client)(nil)

// SearchProfile はシンボル検索エンドポイントを照会し、完全一致した企業の
// プロフィールを返します。完全一致が見つからない場合はErrInvalidTickerを返します。
func (c *Client) SearchProfile(ctx context.Context, symbol string) (entity.CompanyProfile, error) {
	q := url.Values{}
	q.Set("query", symbol)
	q.Set("limit", "10")

	var body []dto.SearchItem
	if err := c.get(ctx, "/search", q, &body); err != nil {
		return entity.CompanyProfile{}, err
	}

	for _, it := range body {
		if it.Symbol != symbol {
			continue
		}
		exchange := it.ExchangeShortName
		if exchange == "" {
			exchange = it.StockExchange
		}
		return entity.CompanyProfile{
			Symbol:   it.Symbol,
			Name:     it.Name,
			Exchange: exchange,
			Currency: it.Currency,
		}, nil
	}
	return entity.CompanyProfile{}, domain.ErrInvalidTicker
}

// QuarterlyIncome は四半期損益計算書を取得します。
// プロバイダの並び順（新しい順）をそのまま保持して返します。
func (c *Client) QuarterlyIncome(ctx context.Context, symbol string) ([]entity.QuarterlyRecord, error) {
	q := url.Values{}
	q.Set("period", "quarter")
	q.Set("limit", "20")

	var body []dto.IncomeStatement
	if err := c.get(ctx, "/income-statement/"+url.PathEscape(symbol), q, &body); err != nil {
		return nil, err
	}

	records := make([]entity.QuarterlyRecord, 0, len(body))
	for _, v := range body {
		// 報告日をパース
		d, err := time.Parse("2006-01-02", v.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: parse date %q: %v", domain.ErrNetwork, v.Date, err)
		}
		records = append(records, entity.QuarterlyRecord{
			Date:              d,
			Period:            v.Period,
			CalendarYear:      v.CalendarYear,
			Revenue:           v.Revenue,
			NetIncome:         v.NetIncome,
			CostOfRevenue:     v.CostOfRevenue,
			OperatingExpenses: v.OperatingExpenses,
			EPS:               v.EPS,
		})
	}
	return records, nil
}

// DailyPrices は直近365営業日分の日足終値を取得します。
// プロバイダの並び順（新しい順）をそのまま保持して返します。
func (c *Client) DailyPrices(ctx context.Context, symbol string) ([]entity.PricePoint, error) {
	q := url.Values{}
	q.Set("timeseries", "365")

	var body dto.HistoricalPriceResponse
	if err := c.get(ctx, "/historical-price-full/"+url.PathEscape(symbol), q, &body); err != nil {
		return nil, err
	}

	points := make([]entity.PricePoint, 0, len(body.Historical))
	for _, v := range body.Historical {
		// 取引日をパース
		d, err := time.Parse("2006-01-02", v.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: parse date %q: %v", domain.ErrNetwork, v.Date, err)
		}
		points = append(points, entity.PricePoint{Date: d, Close: v.Close})
	}
	return points, nil
}
