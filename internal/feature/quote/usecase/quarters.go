package usecase

import (
	"sort"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain/entity"
)

// MaxQuarters はチャートに表示する四半期数です。
const MaxQuarters = 4

// SelectRecentQuarters は直近に報告された最大4四半期を選び、
// 報告日の昇順に並べ替えて返します。入力が空の場合はErrNoDataを返します。
//
// プロバイダの「新しい順」の並びを信頼しており、暦四半期でのフィルタは
// 行いません。報告サイクルが不規則な場合、連続しない期間が混ざることがあります。
func SelectRecentQuarters(records []entity.QuarterlyRecord) ([]entity.QuarterlyRecord, error) {
	if len(records) == 0 {
		return nil, domain.ErrNoData
	}

	n := MaxQuarters
	if len(records) < n {
		n = len(records)
	}

	// 入力は読み取り専用のためコピーしてから並べ替える
	selected := make([]entity.QuarterlyRecord, n)
	copy(selected, records[:n])
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Date.Before(selected[j].Date)
	})
	return selected, nil
}
