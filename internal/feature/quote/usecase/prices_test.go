package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain/entity"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/usecase"
)

// newestFirstPoints はbaseから1日ずつ遡るn件の価格観測を新しい順で生成します。
// 価格は古いものほど小さくなるように設定します。
func newestFirstPoints(base time.Time, n int) []entity.PricePoint {
	points := make([]entity.PricePoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, entity.PricePoint{
			Date:  base.AddDate(0, 0, -i),
			Close: float64(n - i),
		})
	}
	return points
}

// TestNormalizePrices_Empty は空入力でErrNoDataが返ることを検証します。
func TestNormalizePrices_Empty(t *testing.T) {
	t.Parallel()

	_, err := usecase.NormalizePrices(nil)
	if !errors.Is(err, domain.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

// TestNormalizePrices_CapsAt365 は365件を超える入力が直近365件に切り詰められ、
// 昇順の並行シーケンスとして射影されることを検証します。
func TestNormalizePrices_CapsAt365(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	points := newestFirstPoints(base, 400)

	series, err := usecase.NormalizePrices(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series.Dates) != 365 {
		t.Fatalf("expected 365 dates, got %d", len(series.Dates))
	}
	if len(series.Prices) != 365 {
		t.Fatalf("expected 365 prices, got %d", len(series.Prices))
	}

	// 末尾は最新の観測
	if series.Dates[364] != "2025-06-30" {
		t.Errorf("expected last date 2025-06-30, got %s", series.Dates[364])
	}
	// 先頭は入力のうち365番目に新しい観測（base - 364日）
	wantFirst := base.AddDate(0, 0, -364).Format("2006-01-02")
	if series.Dates[0] != wantFirst {
		t.Errorf("expected first date %s, got %s", wantFirst, series.Dates[0])
	}

	// 昇順であることを検証
	for i := 1; i < len(series.Dates); i++ {
		if series.Dates[i] <= series.Dates[i-1] {
			t.Fatalf("dates not ascending at position %d: %s then %s", i, series.Dates[i-1], series.Dates[i])
		}
	}
	for i := 1; i < len(series.Prices); i++ {
		if series.Prices[i] <= series.Prices[i-1] {
			t.Fatalf("prices out of expected order at position %d", i)
		}
	}
}

// TestNormalizePrices_ShortInput は365件未満の入力がそのまま全件使われることを検証します。
func TestNormalizePrices_ShortInput(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	series, err := usecase.NormalizePrices(newestFirstPoints(base, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series.Dates) != 5 || len(series.Prices) != 5 {
		t.Fatalf("expected 5 entries, got %d dates and %d prices", len(series.Dates), len(series.Prices))
	}
	if series.Dates[0] != "2025-01-06" || series.Dates[4] != "2025-01-10" {
		t.Errorf("unexpected date range: %s .. %s", series.Dates[0], series.Dates[4])
	}
	if series.Prices[0] != 1 || series.Prices[4] != 5 {
		t.Errorf("unexpected prices: first %f, last %f", series.Prices[0], series.Prices[4])
	}
}
