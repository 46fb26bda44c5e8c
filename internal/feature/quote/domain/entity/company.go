// Package entity defines the domain models for the quote feature.
package entity

// CompanyProfile is an immutable snapshot of a listed company,
// fetched once per search from the provider's symbol lookup.
type CompanyProfile struct {
	Symbol   string // Ticker symbol (e.g., "AAPL")
	Name     string // Display name (e.g., "Apple Inc.")
	Exchange string // Exchange the symbol trades on (e.g., "NASDAQ")
	Currency string // Quote currency (e.g., "USD")
}
