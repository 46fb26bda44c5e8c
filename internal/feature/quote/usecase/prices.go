package usecase

import (
	"sort"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain/entity"
)

// MaxPricePoints は価格チャートに表示する最大観測数（約1年分の営業日）です。
const MaxPricePoints = 365

// NormalizePrices は新しい順で届いた日足価格から直近最大365件を選び、
// 日付の昇順に並べ替えたうえで日付列と価格列の並行シーケンスに射影します。
// 入力が空の場合はErrNoDataを返します。
func NormalizePrices(points []entity.PricePoint) (entity.PriceSeries, error) {
	if len(points) == 0 {
		return entity.PriceSeries{}, domain.ErrNoData
	}

	n := MaxPricePoints
	if len(points) < n {
		n = len(points)
	}

	// 入力は読み取り専用のためコピーしてから並べ替える
	selected := make([]entity.PricePoint, n)
	copy(selected, points[:n])
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Date.Before(selected[j].Date)
	})

	series := entity.PriceSeries{
		Dates:  make([]string, 0, n),
		Prices: make([]float64, 0, n),
	}
	for _, p := range selected {
		series.Dates = append(series.Dates, p.Date.Format("2006-01-02"))
		series.Prices = append(series.Prices, p.Close)
	}
	return series, nil
}
