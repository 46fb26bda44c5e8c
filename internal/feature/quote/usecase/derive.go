package usecase

import (
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain/entity"
)

const billion = 1e9

// DeriveMetrics は選択済みの各四半期から表示用メトリクスを独立に導出します。
// 金額は10億単位に換算し、欠損フィールドはゼロとして扱います。
// 入力が空の場合はErrNoDataを返します。
func DeriveMetrics(quarters []entity.QuarterlyRecord, approx Approximator) ([]entity.QuarterMetrics, error) {
	if len(quarters) == 0 {
		return nil, domain.ErrNoData
	}

	out := make([]entity.QuarterMetrics, 0, len(quarters))
	for _, q := range quarters {
		m := entity.QuarterMetrics{
			Label:     q.Period + " " + q.CalendarYear,
			RevenueB:  q.Revenue / billion,
			ExpensesB: (q.CostOfRevenue + q.OperatingExpenses) / billion,
			ProfitB:   q.NetIncome / billion,
		}

		// EPSが正の場合のみP/Eが定義される（ゼロではなく欠損）
		if q.EPS > 0 {
			pe := approx.PriceEarnings(q.EPS)
			m.PE = &pe
		}

		// 売上高と純利益が共に正の場合のみROEが定義される
		if q.Revenue > 0 && q.NetIncome > 0 {
			roe := approx.ReturnOnEquity(q.Revenue, q.NetIncome)
			m.ROE = &roe
		}

		out = append(out, m)
	}
	return out, nil
}
