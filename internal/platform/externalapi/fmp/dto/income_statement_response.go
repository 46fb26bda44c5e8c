package dto

// IncomeStatement represents one quarterly entry of the /income-statement
// endpoint response. The provider delivers entries newest first.
type IncomeStatement struct {
	Date              string  `json:"date"`
	Symbol            string  `json:"symbol"`
	Period            string  `json:"period"`
	CalendarYear      string  `json:"calendarYear"`
	Revenue           float64 `json:"revenue"`
	NetIncome         float64 `json:"netIncome"`
	CostOfRevenue     float64 `json:"costOfRevenue"`
	OperatingExpenses float64 `json:"operatingExpenses"`
	EPS               float64 `json:"eps"`
}
