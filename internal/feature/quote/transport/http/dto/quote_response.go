// Package dto defines data transfer objects for the quote HTTP API.
package dto

// QuoteResponse は1回の検索が成功したときのレスポンスDTOです。
// 失敗時にはこの構造は一切返されず、ErrorResponseのみが返ります（部分描画なし）。
type QuoteResponse struct {
	Company  CompanyResponse     `json:"company"`
	Quarters []QuarterResponse   `json:"quarters"`
	Prices   PriceSeriesResponse `json:"prices"`
}

// CompanyResponse は企業プロフィールのレスポンスDTOです。
type CompanyResponse struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
}

// QuarterResponse は1四半期分の表示用メトリクスのレスポンスDTOです。
// peとroeは入力が非正の場合nullになります（ゼロではなく欠損）。
type QuarterResponse struct {
	Label    string   `json:"label"`    // 期間ラベル（例: "Q1 2024"）
	Revenue  float64  `json:"revenue"`  // 売上高（10億単位）
	Expenses float64  `json:"expenses"` // 費用（10億単位）
	Profit   float64  `json:"profit"`   // 純利益（10億単位）
	PE       *float64 `json:"pe"`       // 近似P/E
	ROE      *float64 `json:"roe"`      // 近似ROE
}

// PriceSeriesResponse は日付昇順の並行シーケンスとしての株価履歴DTOです。
type PriceSeriesResponse struct {
	Dates  []string  `json:"dates"`
	Prices []float64 `json:"prices"`
}

// ErrorResponse はエラー時の統一レスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
