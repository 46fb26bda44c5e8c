package entity

import "time"

// QuarterlyRecord is one reported fiscal quarter of a company's income
// statement, carried verbatim from the provider. The pipeline does not
// validate internal consistency (e.g. revenue >= 0).
type QuarterlyRecord struct {
	Date              time.Time // Reporting date of the quarter
	Period            string    // Fiscal period label (e.g., "Q1")
	CalendarYear      string    // Calendar year as reported (e.g., "2024")
	Revenue           float64   // Total revenue
	NetIncome         float64   // Net income
	CostOfRevenue     float64   // Cost of revenue
	OperatingExpenses float64   // Operating expenses
	EPS               float64   // Earnings per share
}
