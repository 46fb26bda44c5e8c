package entity

// QuarterMetrics holds the display metrics derived from one selected
// quarter. PE and ROE are nil when their inputs are non-positive; the chart
// layer renders a gap, not a zero.
type QuarterMetrics struct {
	Label     string   // Period label, e.g. "Q1 2024"
	RevenueB  float64  // Revenue in billions
	ExpensesB float64  // Cost of revenue + operating expenses in billions
	ProfitB   float64  // Net income in billions
	PE        *float64 // Approximate price-to-earnings; nil unless EPS > 0
	ROE       *float64 // Approximate return on equity; nil unless revenue and net income > 0
}

// PriceSeries is the chart-ready projection of the daily price history:
// parallel date and price sequences, ascending by date, at most 365 entries.
type PriceSeries struct {
	Dates  []string  // Trading days formatted as "2006-01-02"
	Prices []float64 // Closing prices, parallel to Dates
}
